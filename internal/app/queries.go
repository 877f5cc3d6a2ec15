package app

import (
	"github.com/biolink/biolink-model-toolkit/internal/core"
	"github.com/biolink/biolink-model-toolkit/internal/types"
)

// Ancestors returns the ancestor names of an element, primary lineage
// first.
func (t *Toolkit) Ancestors(name string, includeMixins bool, reflexive bool) ([]string, error) {
	return t.index.Ancestors(name, core.AncestorOptions{
		IncludeMixins: includeMixins,
		Reflexive:     reflexive,
	})
}

// Descendants returns every element reachable downward from name.
func (t *Toolkit) Descendants(name string) ([]string, error) {
	return t.index.Descendants(name)
}

// Parent returns the direct is_a parent, empty for roots.
func (t *Toolkit) Parent(name string) (string, error) {
	return t.index.Parent(name)
}

// Children returns the direct children via both edge kinds.
func (t *Toolkit) Children(name string) ([]string, error) {
	return t.index.Children(name)
}

// Depth returns the element's is_a chain length.
func (t *Toolkit) Depth(name string) (int, error) {
	return t.index.Depth(name)
}

// GetElement returns the full element record, or an unknown-element
// error.
func (t *Toolkit) GetElement(name string) (ElementView, error) {
	element, err := t.index.Element(name)
	if err != nil {
		return ElementView{}, err
	}
	return ElementView{
		Name:        element.Name,
		CURIE:       t.index.FormatName(element.Name),
		Kind:        element.Kind,
		Description: element.Description,
		Aliases:     element.Aliases,
		IsA:         element.IsA,
		Mixins:      element.Mixins,
		Abstract:    element.Abstract,
		Mixin:       element.Mixin,
		Deprecated:  element.Deprecated,
		Symmetric:   element.Symmetric,
		Inverse:     element.Inverse,
		Domain:      element.Domain,
		Range:       element.Range,
		Multivalued: element.Multivalued,
		EnumName:    element.EnumName,
		IDPrefixes:  element.IDPrefixes,
		InSubset:    element.InSubset,
		Mappings:    element.Mappings,
		Annotations: element.Annotations,
	}, nil
}

// Classifier predicates. All are total over arbitrary strings.

func (t *Toolkit) IsCategory(name string) bool        { return t.index.IsCategory(name) }
func (t *Toolkit) IsPredicate(name string) bool       { return t.index.IsPredicate(name) }
func (t *Toolkit) IsNodeProperty(name string) bool    { return t.index.IsNodeProperty(name) }
func (t *Toolkit) IsAssociationSlot(name string) bool { return t.index.IsAssociationSlot(name) }
func (t *Toolkit) IsAssociation(name string) bool     { return t.index.IsAssociation(name) }
func (t *Toolkit) IsMixin(name string) bool           { return t.index.IsMixin(name) }
func (t *Toolkit) IsEnumValue(name string) bool       { return t.index.IsEnumValue(name) }
func (t *Toolkit) IsSymmetric(name string) bool       { return t.index.IsSymmetric(name) }
func (t *Toolkit) HasInverse(name string) bool        { return t.index.HasInverse(name) }

// IsCanonicalPredicate reports whether a predicate is annotated as the
// canonical direction of its inverse pair.
func (t *Toolkit) IsCanonicalPredicate(name string) bool {
	return t.index.IsCanonicalPredicate(name)
}

// InSubset reports subset membership.
func (t *Toolkit) InSubset(name string, subset string) bool {
	return t.index.InSubset(name, subset)
}

// InversePredicate returns the inverse of a predicate, falling back to
// the predicate itself when it is symmetric.
func (t *Toolkit) InversePredicate(name string) string {
	return t.index.Inverse(name)
}

// Classify runs every predicate for one name. An unresolvable name still
// produces an all-false verdict, with an unknown-element warning
// recorded for the session.
func (t *Toolkit) Classify(name string) Classification {
	_, err := t.index.Element(name)
	if err != nil {
		t.index.Warnings().Append(types.WarningUnknownElement, "classify",
			"'"+name+"' is not an element of this schema")
	}
	return Classification{
		Name:              name,
		Known:             err == nil,
		IsCategory:        t.index.IsCategory(name),
		IsPredicate:       t.index.IsPredicate(name),
		IsNodeProperty:    t.index.IsNodeProperty(name),
		IsAssociationSlot: t.index.IsAssociationSlot(name),
		IsAssociation:     t.index.IsAssociation(name),
		IsMixin:           t.index.IsMixin(name),
		IsEnumValue:       t.index.IsEnumValue(name),
	}
}

// ResolveByMapping resolves an external identifier to owning element
// names, most specific bucket first.
func (t *Toolkit) ResolveByMapping(identifier string, specificity types.MappingSpecificity) []string {
	return t.index.ResolveByMapping(identifier, specificity)
}

// ResolveByPrefix resolves a URI/CURIE prefix to owning element names.
func (t *Toolkit) ResolveByPrefix(prefix string) []string {
	return t.index.ResolveByPrefix(prefix)
}

// CommonMappedAncestor resolves an identifier to the single element the
// mapped set descends from.
func (t *Toolkit) CommonMappedAncestor(identifier string) string {
	return t.index.CommonMappedAncestor(identifier, types.SpecificityAny)
}

// Listings over the fixed branches.

// AllElements returns every element name in schema enumeration order.
func (t *Toolkit) AllElements() []string {
	return t.index.Names()
}

// AllClasses returns every class name.
func (t *Toolkit) AllClasses() []string {
	return t.index.Names(types.ElementKindClass)
}

// AllSlots returns every slot name.
func (t *Toolkit) AllSlots() []string {
	return t.index.Names(types.ElementKindSlot)
}

// AllEnumValues returns every permissible value name.
func (t *Toolkit) AllEnumValues() []string {
	return t.index.Names(types.ElementKindEnumValue)
}

// AllMultivaluedSlots returns the slots declared multivalued.
func (t *Toolkit) AllMultivaluedSlots() []string {
	return t.index.MultivaluedSlots()
}

// AllEntities returns the category branch: the category root and its
// descendants.
func (t *Toolkit) AllEntities() []string {
	return t.branch(t.index.Roots().Category)
}

// AllAssociations returns the association branch.
func (t *Toolkit) AllAssociations() []string {
	return t.branch(t.index.Roots().Association)
}

// AllNodeProperties returns the node-property branch.
func (t *Toolkit) AllNodeProperties() []string {
	return t.branch(t.index.Roots().NodeProperty)
}

// AllEdgeProperties returns the association-slot branch.
func (t *Toolkit) AllEdgeProperties() []string {
	return t.branch(t.index.Roots().AssociationSlot)
}

// AllPredicates returns the predicate branch.
func (t *Toolkit) AllPredicates() []string {
	return t.branch(t.index.Roots().Predicate)
}

func (t *Toolkit) branch(root string) []string {
	if root == "" {
		return []string{}
	}
	descendants, err := t.index.Descendants(root)
	if err != nil {
		return []string{}
	}
	return append([]string{root}, descendants...)
}

// SubsetMembers lists the elements belonging to a named subset.
func (t *Toolkit) SubsetMembers(subset string) []string {
	return t.index.SubsetMembers(subset)
}

// MostSpecificCategory picks the deepest valid category from candidates,
// falling back to the category root.
func (t *Toolkit) MostSpecificCategory(candidates []string) string {
	return t.index.MostSpecific(candidates, t.index.IsCategory, t.index.Roots().Category)
}

// MostSpecificAssociation picks the deepest valid association from
// candidates, falling back to the association root.
func (t *Toolkit) MostSpecificAssociation(candidates []string) string {
	return t.index.MostSpecific(candidates, t.index.IsAssociation, t.index.Roots().Association)
}

// PredicateMappingsFor returns the predicate-mapping rows whose mapped
// predicate matches.
func (t *Toolkit) PredicateMappingsFor(mappedPredicate string) []types.PredicateMappingRow {
	var out []types.PredicateMappingRow
	for _, row := range t.predicateMap {
		if row.MappedPredicate == mappedPredicate {
			out = append(out, row)
		}
	}
	return out
}

// FormatAll renders names as CURIEs under the schema's prefix.
func (t *Toolkit) FormatAll(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = t.index.FormatName(name)
	}
	return out
}

// DumpWarnings renders the accumulated warning log without clearing it.
func (t *Toolkit) DumpWarnings() string {
	return t.index.Warnings().Dump()
}

// ClearWarnings empties the warning log.
func (t *Toolkit) ClearWarnings() {
	t.index.Warnings().Clear()
}
