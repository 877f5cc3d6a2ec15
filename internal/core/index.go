package core

import (
	"context"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"github.com/biolink/biolink-model-toolkit/internal/types"
)

const defaultCuriePrefix = "biolink"

// Index holds the flat lookup structures built from one schema snapshot.
// It is immutable after construction: every build produces a fresh value,
// all resolver operations are pure reads, and result slices are always
// newly allocated. The only mutable member is the warning log, which
// serializes its own access.
type Index struct {
	schema   types.SchemaDefinition
	prefix   string
	byName   map[string]types.Element
	names    []string
	byAlias  map[string]string
	byMap    map[types.MappingSpecificity]map[string][]string
	byPrefix map[string][]string
	bySubset map[string][]string
	children map[string][]string
	roots    resolvedRoots
	warnings *WarningLog
}

// resolvedRoots caches the canonical names of the branch roots, resolved
// once from the index at build time. An empty entry means the configured
// root is absent from this schema and the matching classifier predicate
// is always false.
type resolvedRoots struct {
	category        string
	predicate       string
	nodeProperty    string
	associationSlot string
	association     string
}

// BuildIndex makes a single pass over the schema elements in enumeration
// order, registering names, aliases, mappings, prefixes, subset members,
// and the reverse child edges used for descendant walks. It fails with a
// schema load error on missing name fields; deeper structural validation
// is not its job. Ambiguous aliases and mappings are recorded as-is, the
// mapping resolver applies most-specific-wins later.
func BuildIndex(ctx context.Context, schema types.SchemaDefinition, roots types.RootNames, warnings *WarningLog) (*Index, error) {
	assert.NotEmpty(ctx, roots.Category, "category root name must be configured")
	assert.NotEmpty(ctx, roots.Predicate, "predicate root name must be configured")
	if warnings == nil {
		warnings = NewWarningLog()
	}

	prefix := strings.TrimSpace(schema.DefaultPrefix)
	if prefix == "" {
		prefix = defaultCuriePrefix
	}

	idx := &Index{
		schema:   schema,
		prefix:   prefix,
		byName:   make(map[string]types.Element, len(schema.Elements)),
		byAlias:  map[string]string{},
		byMap:    map[types.MappingSpecificity]map[string][]string{},
		byPrefix: map[string][]string{},
		bySubset: map[string][]string{},
		children: map[string][]string{},
		warnings: warnings,
	}
	for _, specificity := range []types.MappingSpecificity{
		types.SpecificityExact,
		types.SpecificityClose,
		types.SpecificityNarrow,
		types.SpecificityBroad,
		types.SpecificityRelated,
	} {
		idx.byMap[specificity] = map[string][]string{}
	}

	for _, element := range schema.Elements {
		name := strings.TrimSpace(element.Name)
		if name == "" {
			return nil, NewSchemaLoadError("element record without a name", nil)
		}
		if _, exists := idx.byName[name]; exists {
			log.Ctx(ctx).Warn().Str("element", name).Msg("duplicate element name ignored")
			continue
		}
		element.Name = name
		idx.byName[name] = element
		idx.names = append(idx.names, name)
		idx.byAlias[Normalize(name)] = name

		for _, alias := range element.Aliases {
			key := Normalize(alias)
			if key == "" {
				continue
			}
			if existing, ok := idx.byAlias[key]; ok && existing != name {
				log.Ctx(ctx).Debug().
					Str("alias", alias).
					Str("kept", existing).
					Str("also", name).
					Msg("alias claimed by multiple elements")
				continue
			}
			idx.byAlias[key] = name
		}

		for _, specificity := range []types.MappingSpecificity{
			types.SpecificityExact,
			types.SpecificityClose,
			types.SpecificityNarrow,
			types.SpecificityBroad,
			types.SpecificityRelated,
		} {
			for _, identifier := range element.Mappings.Bucket(specificity) {
				id := strings.TrimSpace(identifier)
				if id == "" {
					continue
				}
				idx.byMap[specificity][id] = append(idx.byMap[specificity][id], name)
			}
		}

		for _, idPrefix := range element.IDPrefixes {
			p := strings.TrimSpace(idPrefix)
			if p == "" {
				continue
			}
			idx.byPrefix[p] = append(idx.byPrefix[p], name)
		}

		for _, subset := range element.InSubset {
			s := strings.TrimSpace(subset)
			if s == "" {
				continue
			}
			idx.bySubset[s] = append(idx.bySubset[s], name)
		}
	}

	// Reverse edges for descendant walks: both edge kinds, with the
	// child order following schema enumeration order so walks stay
	// deterministic.
	for _, name := range idx.names {
		element := idx.byName[name]
		if element.IsA != "" {
			idx.children[element.IsA] = append(idx.children[element.IsA], name)
		}
		for _, mixin := range element.Mixins {
			if mixin == "" || mixin == element.IsA {
				continue
			}
			idx.children[mixin] = append(idx.children[mixin], name)
		}
	}

	idx.roots = resolvedRoots{
		category:        idx.resolveRoot(ctx, roots.Category),
		predicate:       idx.resolveRoot(ctx, roots.Predicate),
		nodeProperty:    idx.resolveRoot(ctx, roots.NodeProperty),
		associationSlot: idx.resolveRoot(ctx, roots.AssociationSlot),
		association:     idx.resolveRoot(ctx, roots.Association),
	}

	log.Ctx(ctx).Debug().
		Int("elements", len(idx.names)).
		Str("version", schema.Version).
		Msg("schema index built")
	return idx, nil
}

func (idx *Index) resolveRoot(ctx context.Context, name string) string {
	if strings.TrimSpace(name) == "" {
		return ""
	}
	canonical, ok := idx.Resolve(name)
	if !ok {
		idx.warnings.Append(types.WarningMissingRoot, "build-index",
			"configured root '"+name+"' is not present in this schema")
		log.Ctx(ctx).Warn().Str("root", name).Msg("configured root not found in schema")
		return ""
	}
	return canonical
}

// Resolve maps any accepted spelling (canonical name, alias, CamelCase,
// snake_case, or CURIE) to the canonical element name.
func (idx *Index) Resolve(name string) (string, bool) {
	if _, ok := idx.byName[name]; ok {
		return name, true
	}
	parsed := ParseName(name)
	if _, ok := idx.byName[parsed]; ok {
		return parsed, true
	}
	if canonical, ok := idx.byAlias[Normalize(name)]; ok {
		return canonical, true
	}
	if canonical, ok := idx.byAlias[Normalize(parsed)]; ok {
		return canonical, true
	}
	return "", false
}

// Element returns the full element record for a name or alias. Unknown
// names yield an unknown-element error, never an empty record.
func (idx *Index) Element(name string) (types.Element, error) {
	canonical, ok := idx.Resolve(name)
	if !ok {
		return types.Element{}, NewUnknownElementError(name)
	}
	return idx.byName[canonical], nil
}

// Names returns all canonical element names in schema enumeration order,
// optionally filtered to one kind.
func (idx *Index) Names(kinds ...types.ElementKind) []string {
	if len(kinds) == 0 {
		out := make([]string, len(idx.names))
		copy(out, idx.names)
		return out
	}
	var out []string
	for _, name := range idx.names {
		element := idx.byName[name]
		for _, kind := range kinds {
			if element.Kind == kind {
				out = append(out, name)
				break
			}
		}
	}
	return out
}

// SubsetMembers returns the names belonging to a named subset, in
// enumeration order.
func (idx *Index) SubsetMembers(subset string) []string {
	members := idx.bySubset[strings.TrimSpace(subset)]
	out := make([]string, len(members))
	copy(out, members)
	return out
}

// MultivaluedSlots returns the slot names declared multivalued, in
// enumeration order.
func (idx *Index) MultivaluedSlots() []string {
	var out []string
	for _, name := range idx.names {
		element := idx.byName[name]
		if element.Kind == types.ElementKindSlot && element.Multivalued {
			out = append(out, name)
		}
	}
	return out
}

// Subsets returns the subset names with at least one member.
func (idx *Index) Subsets() []string {
	out := make([]string, 0, len(idx.bySubset))
	for subset := range idx.bySubset {
		out = append(out, subset)
	}
	return out
}

// Version returns the schema's declared version string.
func (idx *Index) Version() string {
	return idx.schema.Version
}

// SchemaName returns the schema's declared name.
func (idx *Index) SchemaName() string {
	return idx.schema.Name
}

// CuriePrefix returns the prefix used when formatting element CURIEs.
func (idx *Index) CuriePrefix() string {
	return idx.prefix
}

// Roots returns the canonical names of the resolved branch roots. An
// empty field means the schema has no such branch.
func (idx *Index) Roots() types.RootNames {
	return types.RootNames{
		Category:        idx.roots.category,
		Predicate:       idx.roots.predicate,
		NodeProperty:    idx.roots.nodeProperty,
		AssociationSlot: idx.roots.associationSlot,
		Association:     idx.roots.association,
	}
}

// Warnings exposes the log owned by this index.
func (idx *Index) Warnings() *WarningLog {
	return idx.warnings
}

// FormatName renders a canonical name as a CURIE, resolving aliases
// first. Unresolvable names are returned unchanged.
func (idx *Index) FormatName(name string) string {
	element, err := idx.Element(name)
	if err != nil {
		return name
	}
	return FormatElement(idx.prefix, element)
}
