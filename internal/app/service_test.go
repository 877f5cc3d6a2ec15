package app

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/biolink/biolink-model-toolkit/internal/types"
)

type fixtureSource struct {
	schema types.SchemaDefinition
	err    error
}

func (s fixtureSource) Load(context.Context) (types.SchemaDefinition, error) {
	return s.schema, s.err
}

func (s fixtureSource) Describe() string { return "fixture" }

type fixturePredicateMap struct {
	rows []types.PredicateMappingRow
	err  error
}

func (p fixturePredicateMap) Load(context.Context) ([]types.PredicateMappingRow, error) {
	return p.rows, p.err
}

func fixtureSchema() types.SchemaDefinition {
	schema := types.SchemaDefinition{
		ID:            "https://example.org/test-model",
		Name:          "test-model",
		Version:       "4.3.7",
		DefaultPrefix: "biolink",
	}
	schema.Elements = []types.Element{
		{Name: "named thing", Kind: types.ElementKindClass},
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
		{Name: "gene", Kind: types.ElementKindClass, IsA: "gene or gene product"},
		{Name: "disease", Kind: types.ElementKindClass, IsA: "biological entity"},
		{Name: "association", Kind: types.ElementKindClass},
		{Name: "gene to disease association", Kind: types.ElementKindClass, IsA: "association"},
		{Name: "related to", Kind: types.ElementKindSlot},
		{
			Name:        "causes",
			Kind:        types.ElementKindSlot,
			IsA:         "related to",
			Annotations: map[string]string{"canonical_predicate": "true"},
			Mappings:    types.MappingSet{Exact: []string{"RO:0002410"}},
		},
		{Name: "treats", Kind: types.ElementKindSlot, IsA: "related to"},
		{Name: "node property", Kind: types.ElementKindSlot},
		{Name: "synonym", Kind: types.ElementKindSlot, IsA: "node property", Multivalued: true},
		{Name: "association slot", Kind: types.ElementKindSlot},
	}
	return schema
}

func newFixtureToolkit(t *testing.T) *Toolkit {
	t.Helper()
	toolkit, err := NewFromSources(context.Background(),
		fixtureSource{schema: fixtureSchema()}, nil, types.RootNames{})
	require.NoError(t, err)
	return toolkit
}

func TestNewFromSources(t *testing.T) {
	toolkit := newFixtureToolkit(t)

	require.Equal(t, "fixture", toolkit.Source())
	require.Equal(t, "4.3.7", toolkit.ModelVersion())
}

func TestNewFromSourcesSourceFailure(t *testing.T) {
	_, err := NewFromSources(context.Background(),
		fixtureSource{err: errors.New("unreachable")}, nil, types.RootNames{})
	require.Error(t, err)
}

// A failing predicate map degrades the session instead of aborting it.
func TestNewFromSourcesPredicateMapFailure(t *testing.T) {
	toolkit, err := NewFromSources(context.Background(),
		fixtureSource{schema: fixtureSchema()},
		fixturePredicateMap{err: errors.New("unreachable")},
		types.RootNames{})
	require.NoError(t, err)
	require.Empty(t, toolkit.PredicateMappingsFor("causes"))
}

func TestToolkitEndToEnd(t *testing.T) {
	toolkit := newFixtureToolkit(t)

	ancestors, err := toolkit.Ancestors("gene", true, false)
	require.NoError(t, err)
	want := []string{
		"gene or gene product",
		"macromolecular machine",
		"genomic entity",
		"molecular entity",
		"biological entity",
		"named thing",
	}
	if diff := cmp.Diff(want, ancestors); diff != "" {
		t.Fatalf("unexpected ancestors (-want +got):\n%s", diff)
	}

	require.True(t, toolkit.IsCategory("gene"))
	require.False(t, toolkit.IsCategory("treats"))
	require.True(t, toolkit.IsPredicate("treats"))

	owners := toolkit.ResolveByMapping("RO:0002410", types.SpecificityAny)
	if diff := cmp.Diff([]string{"causes"}, owners); diff != "" {
		t.Fatalf("unexpected owners (-want +got):\n%s", diff)
	}
	require.Equal(t, "", toolkit.DumpWarnings())
}

func TestToolkitBranchListings(t *testing.T) {
	toolkit := newFixtureToolkit(t)

	entities := toolkit.AllEntities()
	require.Equal(t, "named thing", entities[0])
	require.Contains(t, entities, "gene")
	require.Contains(t, entities, "disease")
	require.NotContains(t, entities, "causes")

	predicates := toolkit.AllPredicates()
	if diff := cmp.Diff([]string{"related to", "causes", "treats"}, predicates); diff != "" {
		t.Fatalf("unexpected predicates (-want +got):\n%s", diff)
	}

	associations := toolkit.AllAssociations()
	if diff := cmp.Diff([]string{"association", "gene to disease association"}, associations); diff != "" {
		t.Fatalf("unexpected associations (-want +got):\n%s", diff)
	}
}

func TestToolkitClassify(t *testing.T) {
	toolkit := newFixtureToolkit(t)

	verdict := toolkit.Classify("gene")
	require.True(t, verdict.Known)
	require.True(t, verdict.IsCategory)
	require.False(t, verdict.IsPredicate)

	verdict = toolkit.Classify("no such element")
	require.False(t, verdict.Known)
	require.False(t, verdict.IsCategory)
	require.False(t, verdict.IsPredicate)
}

// Classifying an unknown name stays total but leaves a diagnostic in the
// session log.
func TestToolkitClassifyUnknownWarns(t *testing.T) {
	toolkit := newFixtureToolkit(t)

	require.Equal(t, "", toolkit.DumpWarnings())
	toolkit.Classify("no such element")

	dump := toolkit.DumpWarnings()
	require.Contains(t, dump, "unknown-element")
	require.Contains(t, dump, "no such element")

	toolkit.Classify("gene")
	require.Equal(t, dump, toolkit.DumpWarnings())
}

func TestToolkitMultivaluedAndCanonical(t *testing.T) {
	toolkit := newFixtureToolkit(t)

	if diff := cmp.Diff([]string{"synonym"}, toolkit.AllMultivaluedSlots()); diff != "" {
		t.Fatalf("unexpected multivalued slots (-want +got):\n%s", diff)
	}

	require.True(t, toolkit.IsCanonicalPredicate("causes"))
	require.False(t, toolkit.IsCanonicalPredicate("treats"))
	require.False(t, toolkit.IsCanonicalPredicate("gene"))

	view, err := toolkit.GetElement("synonym")
	require.NoError(t, err)
	require.True(t, view.Multivalued)

	view, err = toolkit.GetElement("causes")
	require.NoError(t, err)
	require.Equal(t, "true", view.Annotations["canonical_predicate"])
}

func TestToolkitGetElement(t *testing.T) {
	toolkit := newFixtureToolkit(t)

	view, err := toolkit.GetElement("gene")
	require.NoError(t, err)
	require.Equal(t, "gene", view.Name)
	require.Equal(t, "biolink:Gene", view.CURIE)
	require.Equal(t, "gene or gene product", view.IsA)

	_, err = toolkit.GetElement("no such element")
	require.Error(t, err)
}

func TestToolkitPredicateMappings(t *testing.T) {
	rows := []types.PredicateMappingRow{
		{MappedPredicate: "causes", Fields: map[string]string{"qualified predicate": "causes"}},
		{MappedPredicate: "treats", Fields: map[string]string{"subject aspect qualifier": "therapeutic"}},
	}
	toolkit, err := NewFromSources(context.Background(),
		fixtureSource{schema: fixtureSchema()},
		fixturePredicateMap{rows: rows},
		types.RootNames{})
	require.NoError(t, err)

	matches := toolkit.PredicateMappingsFor("causes")
	require.Len(t, matches, 1)
	require.Equal(t, "causes", matches[0].Fields["qualified predicate"])
	require.Empty(t, toolkit.PredicateMappingsFor("affects"))
}

func TestToolkitMostSpecificCategory(t *testing.T) {
	toolkit := newFixtureToolkit(t)

	require.Equal(t, "gene", toolkit.MostSpecificCategory([]string{"named thing", "gene"}))
	// No valid candidate falls back to the category root.
	require.Equal(t, "named thing", toolkit.MostSpecificCategory([]string{"treats"}))
}

func TestToolkitFormatAll(t *testing.T) {
	toolkit := newFixtureToolkit(t)

	got := toolkit.FormatAll([]string{"gene", "related to"})
	if diff := cmp.Diff([]string{"biolink:Gene", "biolink:related_to"}, got); diff != "" {
		t.Fatalf("unexpected CURIEs (-want +got):\n%s", diff)
	}
}
