package core

import (
	"sort"

	"github.com/biolink/biolink-model-toolkit/internal/types"
)

// AncestorOptions controls a hierarchy walk. The zero value walks both
// edge kinds and excludes the start element.
type AncestorOptions struct {
	// IncludeMixins walks mixin edges in addition to the is_a chain.
	IncludeMixins bool

	// Reflexive prepends the start element itself.
	Reflexive bool
}

// DefaultAncestorOptions matches the common query: mixin edges included,
// start element excluded.
func DefaultAncestorOptions() AncestorOptions {
	return AncestorOptions{IncludeMixins: true}
}

// Ancestors walks the inheritance graph upward from name, breadth-first,
// with the is_a parent enqueued ahead of mixin parents so the primary
// lineage wins discovery-order ties. Each ancestor appears exactly once,
// in first-discovery order. A visited set makes revisits via converging
// mixin paths (or a malformed cycle) dead ends rather than hangs.
func (idx *Index) Ancestors(name string, opts AncestorOptions) ([]string, error) {
	start, ok := idx.Resolve(name)
	if !ok {
		return nil, NewUnknownElementError(name)
	}

	var out []string
	visited := map[string]bool{start: true}
	if opts.Reflexive {
		out = append(out, start)
	}

	queue := []string{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		element, found := idx.byName[current]
		if !found {
			// Dangling parent reference; the schema is assumed closed
			// but a broken edge should not abort the walk.
			continue
		}
		parents := []string{}
		if element.IsA != "" {
			parents = append(parents, element.IsA)
		}
		if opts.IncludeMixins {
			parents = append(parents, element.Mixins...)
		}
		for _, parent := range parents {
			if parent == "" || visited[parent] {
				continue
			}
			visited[parent] = true
			out = append(out, parent)
			queue = append(queue, parent)
		}
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

// Descendants walks the reverse child index breadth-first from name,
// covering both is_a and mixin edges, and returns descendants in
// insertion order of discovery. The start element is excluded.
func (idx *Index) Descendants(name string) ([]string, error) {
	start, ok := idx.Resolve(name)
	if !ok {
		return nil, NewUnknownElementError(name)
	}

	out := []string{}
	visited := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, child := range idx.children[current] {
			if visited[child] {
				continue
			}
			visited[child] = true
			out = append(out, child)
			queue = append(queue, child)
		}
	}
	return out, nil
}

// Parent returns the direct is_a parent, or empty for roots.
func (idx *Index) Parent(name string) (string, error) {
	element, err := idx.Element(name)
	if err != nil {
		return "", err
	}
	return element.IsA, nil
}

// Children returns the direct children via both edge kinds, in schema
// enumeration order.
func (idx *Index) Children(name string) ([]string, error) {
	canonical, ok := idx.Resolve(name)
	if !ok {
		return nil, NewUnknownElementError(name)
	}
	direct := idx.children[canonical]
	out := make([]string, len(direct))
	copy(out, direct)
	return out, nil
}

// Depth returns the length of the is_a chain above the element. Roots
// have depth zero. The walk is bounded by the number of elements, so a
// malformed cyclic chain terminates instead of spinning.
func (idx *Index) Depth(name string) (int, error) {
	canonical, ok := idx.Resolve(name)
	if !ok {
		return 0, NewUnknownElementError(name)
	}
	depth := 0
	limit := len(idx.names)
	for current := canonical; depth <= limit; {
		element, found := idx.byName[current]
		if !found || element.IsA == "" {
			break
		}
		current = element.IsA
		depth++
	}
	return depth, nil
}

// RankBySpecificity orders names by descending is_a depth, so the most
// specific element comes first. Unresolvable names sink to the end. The
// sort is stable: equal depths keep their input order.
func (idx *Index) RankBySpecificity(names []string) []string {
	ranked := make([]string, len(names))
	copy(ranked, names)
	depthOf := func(name string) int {
		depth, err := idx.Depth(name)
		if err != nil {
			return -1
		}
		return depth
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return depthOf(ranked[i]) > depthOf(ranked[j])
	})
	return ranked
}

// MostSpecific returns the deepest name from the candidates passing the
// filter, or fallback when none qualify. A nil filter accepts everything.
func (idx *Index) MostSpecific(names []string, filter func(string) bool, fallback string) string {
	var candidates []string
	for _, name := range names {
		if filter == nil || filter(name) {
			candidates = append(candidates, name)
		}
	}
	if len(candidates) == 0 {
		return fallback
	}
	return idx.RankBySpecificity(candidates)[0]
}

// ancestorSet computes the reflexive ancestor membership set used by the
// root classifier predicates.
func (idx *Index) ancestorSet(name string) (map[string]bool, types.Element, bool) {
	element, err := idx.Element(name)
	if err != nil {
		return nil, types.Element{}, false
	}
	ancestors, err := idx.Ancestors(element.Name, AncestorOptions{IncludeMixins: true, Reflexive: true})
	if err != nil {
		return nil, types.Element{}, false
	}
	set := make(map[string]bool, len(ancestors))
	for _, ancestor := range ancestors {
		set[ancestor] = true
	}
	return set, element, true
}
