package core

import (
	"sort"
	"strings"

	"github.com/biolink/biolink-model-toolkit/internal/types"
)

// ResolveByMapping looks up the element(s) declaring identifier as an
// external mapping. SpecificityAny searches exact, close, narrow, then
// broad, returning the first bucket with a hit: exact mappings are
// curated 1:1 correspondences while broader buckets are intentionally
// lossy fallbacks. A specific bucket (including related) may be requested
// instead.
//
// Ambiguity - more than one distinct owner in the winning bucket - yields
// the full set plus a warning, never an arbitrary pick. No hit yields an
// empty result plus a missing-mapping warning. Mapping lookups face messy
// real-world identifiers and must degrade gracefully rather than error.
func (idx *Index) ResolveByMapping(identifier string, specificity types.MappingSpecificity) []string {
	id := strings.TrimSpace(identifier)
	if id == "" {
		idx.warnings.Append(types.WarningMissingMapping, "resolve-by-mapping",
			"empty identifier")
		return []string{}
	}

	buckets := []types.MappingSpecificity{specificity}
	if specificity == types.SpecificityAny || specificity == "" {
		buckets = types.SpecificityOrder
	}

	for _, bucket := range buckets {
		owners := idx.byMap[bucket][id]
		if len(owners) == 0 {
			continue
		}
		distinct := dedupeNames(owners)
		if len(distinct) > 1 {
			idx.warnings.Append(types.WarningAmbiguousMapping, "resolve-by-mapping",
				"'"+id+"' is a "+string(bucket)+" mapping of multiple elements: "+strings.Join(distinct, ", "))
		}
		return distinct
	}

	idx.warnings.Append(types.WarningMissingMapping, "resolve-by-mapping",
		"'"+id+"' does not map to any element in this schema")
	return []string{}
}

// ResolveByPrefix returns the elements canonical for a URI/CURIE prefix.
// A full CURIE may be passed; everything after the first colon is
// ignored. Zero owners yields an empty result plus a warning; multiple
// owners are returned in full with an ambiguity warning.
func (idx *Index) ResolveByPrefix(prefix string) []string {
	p := strings.TrimSpace(prefix)
	if i := strings.Index(p, ":"); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		idx.warnings.Append(types.WarningMissingPrefix, "resolve-by-prefix",
			"empty prefix")
		return []string{}
	}

	owners := dedupeNames(idx.byPrefix[p])
	switch {
	case len(owners) == 0:
		idx.warnings.Append(types.WarningMissingPrefix, "resolve-by-prefix",
			"no element declares id_prefix '"+p+"'")
	case len(owners) > 1:
		idx.warnings.Append(types.WarningAmbiguousMapping, "resolve-by-prefix",
			"prefix '"+p+"' is declared by multiple elements: "+strings.Join(owners, ", "))
	}
	return owners
}

// CommonMappedAncestor resolves an identifier and, when it maps to
// several related elements, picks the one all others descend from. The
// result is empty when the identifier is unknown or the owners share no
// ancestry among themselves.
func (idx *Index) CommonMappedAncestor(identifier string, specificity types.MappingSpecificity) string {
	owners := idx.ResolveByMapping(identifier, specificity)
	if len(owners) == 0 {
		return ""
	}
	if len(owners) == 1 {
		return owners[0]
	}

	ownerSet := make(map[string]bool, len(owners))
	for _, owner := range owners {
		ownerSet[owner] = true
	}
	// For each owner, keep its reflexive ancestors restricted to the
	// owner set, root-first; the shallowest member shared by every chain
	// is the common ancestor.
	var chains [][]string
	for _, owner := range owners {
		ancestors, err := idx.Ancestors(owner, AncestorOptions{IncludeMixins: true, Reflexive: true})
		if err != nil {
			continue
		}
		var restricted []string
		for i := len(ancestors) - 1; i >= 0; i-- {
			if ownerSet[ancestors[i]] {
				restricted = append(restricted, ancestors[i])
			}
		}
		if len(restricted) > 0 {
			chains = append(chains, restricted)
		}
	}
	if len(chains) == 0 {
		return ""
	}
	shared := map[string]int{}
	for _, chain := range chains {
		for _, name := range chain {
			shared[name]++
		}
	}
	for _, name := range chains[0] {
		if shared[name] == len(chains) {
			return name
		}
	}
	return ""
}

// MappingsOf returns the external identifiers an element declares at one
// specificity, or across all buckets for SpecificityAny, most specific
// first.
func (idx *Index) MappingsOf(name string, specificity types.MappingSpecificity) ([]string, error) {
	element, err := idx.Element(name)
	if err != nil {
		return nil, err
	}
	if specificity != types.SpecificityAny && specificity != "" {
		bucket := element.Mappings.Bucket(specificity)
		out := make([]string, len(bucket))
		copy(out, bucket)
		return out, nil
	}
	var out []string
	for _, bucket := range append(types.SpecificityOrder, types.SpecificityRelated) {
		out = append(out, element.Mappings.Bucket(bucket)...)
	}
	return out, nil
}

// dedupeNames drops repeats while keeping first-seen order.
func dedupeNames(values []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, value := range values {
		if seen[value] {
			continue
		}
		seen[value] = true
		out = append(out, value)
	}
	return out
}

// SortedPrefixes returns every registered id_prefix, sorted, mainly for
// inspection commands.
func (idx *Index) SortedPrefixes() []string {
	out := make([]string, 0, len(idx.byPrefix))
	for prefix := range idx.byPrefix {
		out = append(out, prefix)
	}
	sort.Strings(out)
	return out
}
