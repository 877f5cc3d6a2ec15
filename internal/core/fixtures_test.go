package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biolink/biolink-model-toolkit/internal/types"
)

// testSchema builds a miniature model exercising both inheritance
// relations, aliases, mappings of every specificity, prefixes, subsets,
// and enum values.
func testSchema() types.SchemaDefinition {
	classes := []types.Element{
		{Name: "named thing", Kind: types.ElementKindClass, Abstract: false},
		{Name: "biological entity", Kind: types.ElementKindClass, IsA: "named thing", Abstract: true},
		{Name: "molecular entity", Kind: types.ElementKindClass, IsA: "biological entity"},
		{Name: "genomic entity", Kind: types.ElementKindClass, IsA: "molecular entity", Mixin: true},
		{Name: "macromolecular machine", Kind: types.ElementKindClass, IsA: "genomic entity"},
		{
			Name:   "gene or gene product",
			Kind:   types.ElementKindClass,
			IsA:    "macromolecular machine",
			Mixins: []string{"genomic entity"},
			Mixin:  true,
		},
		{
			Name:       "gene",
			Kind:       types.ElementKindClass,
			IsA:        "gene or gene product",
			Aliases:    []string{"locus"},
			IDPrefixes: []string{"NCBIGene", "ENSEMBL", "HGNC"},
			InSubset:   []string{"model_organism_database"},
			Mappings:   types.MappingSet{Exact: []string{"SO:0000704"}},
		},
		{Name: "ontology class", Kind: types.ElementKindClass, Mixin: true},
		{
			Name:       "disease",
			Kind:       types.ElementKindClass,
			IsA:        "biological entity",
			Mixins:     []string{"ontology class"},
			Aliases:    []string{"condition"},
			IDPrefixes: []string{"MONDO", "DOID"},
		},
		{Name: "association", Kind: types.ElementKindClass},
		{Name: "gene to disease association", Kind: types.ElementKindClass, IsA: "association"},
	}
	slots := []types.Element{
		{Name: "related to", Kind: types.ElementKindSlot},
		{
			Name:        "causes",
			Kind:        types.ElementKindSlot,
			IsA:         "related to",
			Inverse:     "caused by",
			InSubset:    []string{"translator_minimal"},
			Annotations: map[string]string{"canonical_predicate": "true"},
			Mappings: types.MappingSet{
				Exact:  []string{"RO:0002410"},
				Narrow: []string{"SEMMEDDB:CAUSES"},
			},
		},
		{Name: "caused by", Kind: types.ElementKindSlot, IsA: "related to", Inverse: "causes"},
		{
			Name:      "treats",
			Kind:      types.ElementKindSlot,
			IsA:       "related to",
			Mappings:  types.MappingSet{Exact: []string{"RO:0002606"}},
			InSubset:  []string{"translator_minimal"},
			Symmetric: false,
		},
		{
			Name:     "ameliorates",
			Kind:     types.ElementKindSlot,
			IsA:      "related to",
			Mappings: types.MappingSet{Exact: []string{"RO:0002606"}, Broad: []string{"SEMMEDDB:CAUSES"}},
		},
		{Name: "interacts with", Kind: types.ElementKindSlot, IsA: "related to", Symmetric: true},
		{Name: "abstract predicate", Kind: types.ElementKindSlot, IsA: "related to", Abstract: true},
		{Name: "node property", Kind: types.ElementKindSlot},
		{Name: "symbol", Kind: types.ElementKindSlot, IsA: "node property", Domain: "gene", Range: "string"},
		{Name: "synonym", Kind: types.ElementKindSlot, IsA: "node property", Multivalued: true},
		{Name: "association slot", Kind: types.ElementKindSlot},
		{Name: "negated", Kind: types.ElementKindSlot, IsA: "association slot", Range: "boolean"},
	}
	enums := []types.Element{
		{Name: "increased", Kind: types.ElementKindEnumValue, EnumName: "direction qualifier enum"},
		{
			Name:        "upregulated",
			Kind:        types.ElementKindEnumValue,
			EnumName:    "direction qualifier enum",
			IsA:         "increased",
			ValueParent: "increased",
		},
	}

	schema := types.SchemaDefinition{
		ID:            "https://example.org/test-model",
		Name:          "test-model",
		Version:       "4.3.7",
		DefaultPrefix: "biolink",
	}
	schema.Elements = append(schema.Elements, classes...)
	schema.Elements = append(schema.Elements, slots...)
	schema.Elements = append(schema.Elements, enums...)
	return schema
}

func buildTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := BuildIndex(context.Background(), testSchema(), types.DefaultRootNames(), NewWarningLog())
	require.NoError(t, err)
	return idx
}
