package types

// Element is the unit of the model: a class, a slot, or a permissible
// value of an enumeration. Classes, slots, and enum values share one flat
// namespace for lookup purposes; Kind disambiguates where it matters.
type Element struct {
	// Name is the canonical sentence-case identifier, e.g. "named thing"
	// or "related to".
	Name string

	// Kind tells whether this element is a class, slot, or enum value.
	Kind ElementKind

	// Description is the free-text definition carried by the model.
	Description string

	// Aliases are alternate names resolving to this element.
	Aliases []string

	// IsA names the single primary parent. Empty only for roots.
	IsA string

	// Mixins are additional parents contributing ancestors without being
	// the primary lineage. Order follows the model declaration.
	Mixins []string

	// Abstract marks elements that participate in the hierarchy but are
	// not concrete usable values.
	Abstract bool

	// Mixin marks elements intended only for use as mixin parents.
	Mixin bool

	// Deprecated carries the deprecation notice, if any.
	Deprecated string

	// Symmetric marks predicate slots whose inverse is themselves.
	Symmetric bool

	// Inverse names the inverse slot, if one is declared.
	Inverse string

	// Domain and Range apply to slots only.
	Domain string
	Range  string

	// Multivalued applies to slots only.
	Multivalued bool

	// EnumName is the owning enumeration for enum values, and ValueParent
	// the permissible-value parent within that enumeration.
	EnumName    string
	ValueParent string

	// IDPrefixes lists the URI/CURIE prefixes this element is canonical
	// for, in declaration order.
	IDPrefixes []string

	// InSubset lists the named subsets this element belongs to.
	InSubset []string

	// Mappings are the external identifier correspondences, bucketed by
	// specificity.
	Mappings MappingSet

	// Annotations carries model annotation tags such as
	// "canonical_predicate" or "denormalized".
	Annotations map[string]string
}

// MappingSet holds external identifiers by descending specificity, plus
// the unqualified related bucket.
type MappingSet struct {
	Exact   []string
	Close   []string
	Narrow  []string
	Broad   []string
	Related []string
}

// Bucket returns the identifier list for a single specificity.
// SpecificityAny has no single bucket and returns nil.
func (m MappingSet) Bucket(specificity MappingSpecificity) []string {
	switch specificity {
	case SpecificityExact:
		return m.Exact
	case SpecificityClose:
		return m.Close
	case SpecificityNarrow:
		return m.Narrow
	case SpecificityBroad:
		return m.Broad
	case SpecificityRelated:
		return m.Related
	default:
		return nil
	}
}

// SchemaDefinition is the fully deserialized model graph consumed by the
// index builder. Elements preserves the enumeration order of the external
// representation: classes first, then slots, then enum values, each in
// document order.
type SchemaDefinition struct {
	ID            string
	Name          string
	Version       string
	License       string
	DefaultPrefix string
	Prefixes      map[string]string
	Elements      []Element
}

// RootNames designates the top-level branch elements that drive root
// classification. The defaults match the published biolink names, but a
// renamed model can override any of them; the core never hard-codes the
// literals.
type RootNames struct {
	Category        string `mapstructure:"category" yaml:"category"`
	Predicate       string `mapstructure:"predicate" yaml:"predicate"`
	NodeProperty    string `mapstructure:"node_property" yaml:"node_property"`
	AssociationSlot string `mapstructure:"association_slot" yaml:"association_slot"`
	Association     string `mapstructure:"association" yaml:"association"`
}

// DefaultRootNames returns the branch roots of the published biolink model.
func DefaultRootNames() RootNames {
	return RootNames{
		Category:        "named thing",
		Predicate:       "related to",
		NodeProperty:    "node property",
		AssociationSlot: "association slot",
		Association:     "association",
	}
}

// PredicateMappingRow is one entry of the predicate mapping table that
// accompanies the model, relating an external predicate phrasing to the
// model predicate plus qualifiers.
type PredicateMappingRow struct {
	MappedPredicate string
	Fields          map[string]string
}
