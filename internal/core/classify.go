package core

import (
	"github.com/biolink/biolink-model-toolkit/internal/types"
)

// The classifier predicates are total functions over all strings: an
// unresolvable name is false, never an error. Each predicate resolves the
// canonical name, computes the reflexive ancestor set, and tests for the
// cached branch root. Predicates meaning "concrete usable value" also
// require the element not be abstract or mixin-flagged.

// IsCategory reports whether name is a concrete node category: a class
// descending from the category root, neither abstract nor a mixin.
func (idx *Index) IsCategory(name string) bool {
	return idx.concreteUnderRoot(name, idx.roots.category, types.ElementKindClass)
}

// IsPredicate reports whether name is a concrete predicate: a slot
// descending from the predicate root, neither abstract nor a mixin.
func (idx *Index) IsPredicate(name string) bool {
	return idx.concreteUnderRoot(name, idx.roots.predicate, types.ElementKindSlot)
}

// IsNodeProperty reports whether name is a slot descending from the
// node-property root.
func (idx *Index) IsNodeProperty(name string) bool {
	return idx.underRoot(name, idx.roots.nodeProperty, types.ElementKindSlot)
}

// IsAssociationSlot reports whether name is a slot descending from the
// association-slot root.
func (idx *Index) IsAssociationSlot(name string) bool {
	return idx.underRoot(name, idx.roots.associationSlot, types.ElementKindSlot)
}

// IsAssociation reports whether name is a class descending from the
// association root.
func (idx *Index) IsAssociation(name string) bool {
	return idx.underRoot(name, idx.roots.association, types.ElementKindClass)
}

// IsMixin tests the mixin flag directly, not ancestry.
func (idx *Index) IsMixin(name string) bool {
	element, err := idx.Element(name)
	return err == nil && element.Mixin
}

// IsEnumValue reports whether name is a permissible value of some
// enumeration.
func (idx *Index) IsEnumValue(name string) bool {
	element, err := idx.Element(name)
	return err == nil && element.Kind == types.ElementKindEnumValue
}

// InSubset reports whether the element belongs to the named subset.
func (idx *Index) InSubset(name string, subset string) bool {
	element, err := idx.Element(name)
	if err != nil {
		return false
	}
	for _, s := range element.InSubset {
		if s == subset {
			return true
		}
	}
	return false
}

// IsSymmetric reports whether name is a slot flagged symmetric.
func (idx *Index) IsSymmetric(name string) bool {
	element, err := idx.Element(name)
	return err == nil && element.Kind == types.ElementKindSlot && element.Symmetric
}

// HasInverse reports whether name is a slot with a declared inverse.
func (idx *Index) HasInverse(name string) bool {
	element, err := idx.Element(name)
	return err == nil && element.Kind == types.ElementKindSlot && element.Inverse != ""
}

// Inverse returns the canonical inverse predicate for name. Symmetric
// predicates without a declared inverse are their own inverse. The empty
// string means no inverse exists or the name is not a predicate.
func (idx *Index) Inverse(name string) string {
	if !idx.IsPredicate(name) {
		return ""
	}
	element, err := idx.Element(name)
	if err != nil {
		return ""
	}
	if element.Inverse != "" {
		if canonical, ok := idx.Resolve(element.Inverse); ok {
			return canonical
		}
		return element.Inverse
	}
	if element.Symmetric {
		return element.Name
	}
	return ""
}

// IsCanonicalPredicate reports whether name is a predicate annotated as
// the canonical direction of its inverse pair.
func (idx *Index) IsCanonicalPredicate(name string) bool {
	if !idx.IsPredicate(name) {
		return false
	}
	element, err := idx.Element(name)
	return err == nil && element.Annotations["canonical_predicate"] == "true"
}

// underRoot tests root ancestry and kind only.
func (idx *Index) underRoot(name string, root string, kind types.ElementKind) bool {
	if root == "" {
		return false
	}
	ancestors, element, ok := idx.ancestorSet(name)
	if !ok || element.Kind != kind {
		return false
	}
	return ancestors[root]
}

// concreteUnderRoot additionally excludes abstract and mixin-flagged
// elements.
func (idx *Index) concreteUnderRoot(name string, root string, kind types.ElementKind) bool {
	if root == "" {
		return false
	}
	ancestors, element, ok := idx.ancestorSet(name)
	if !ok || element.Kind != kind {
		return false
	}
	if element.Abstract || element.Mixin {
		return false
	}
	return ancestors[root]
}
