package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/biolink/biolink-model-toolkit/internal/types"
)

func TestResolveByMappingExact(t *testing.T) {
	idx := buildTestIndex(t)

	owners := idx.ResolveByMapping("RO:0002410", types.SpecificityAny)
	if diff := cmp.Diff([]string{"causes"}, owners); diff != "" {
		t.Fatalf("unexpected owners (-want +got):\n%s", diff)
	}
	require.Zero(t, idx.Warnings().Len(), "unambiguous hit must not warn")
}

func TestResolveByMappingAmbiguous(t *testing.T) {
	idx := buildTestIndex(t)

	// Both treats and ameliorates declare RO:0002606 as exact.
	owners := idx.ResolveByMapping("RO:0002606", types.SpecificityAny)
	if diff := cmp.Diff([]string{"treats", "ameliorates"}, owners); diff != "" {
		t.Fatalf("unexpected owners (-want +got):\n%s", diff)
	}

	entries := idx.Warnings().All()
	require.Len(t, entries, 1)
	require.Equal(t, types.WarningAmbiguousMapping, entries[0].Category)
}

func TestResolveByMappingMissing(t *testing.T) {
	idx := buildTestIndex(t)

	owners := idx.ResolveByMapping("RO:9999999", types.SpecificityAny)
	if diff := cmp.Diff([]string{}, owners); diff != "" {
		t.Fatalf("missing identifier must yield empty slice (-want +got):\n%s", diff)
	}

	entries := idx.Warnings().All()
	require.Len(t, entries, 1)
	require.Equal(t, types.WarningMissingMapping, entries[0].Category)
}

// The exact bucket of one element outranks the broad bucket of another
// for the same identifier when searching across all specificities.
func TestResolveByMappingMostSpecificWins(t *testing.T) {
	idx := buildTestIndex(t)

	// causes: narrow, ameliorates: broad.
	owners := idx.ResolveByMapping("SEMMEDDB:CAUSES", types.SpecificityAny)
	if diff := cmp.Diff([]string{"causes"}, owners); diff != "" {
		t.Fatalf("narrow must outrank broad (-want +got):\n%s", diff)
	}

	owners = idx.ResolveByMapping("SEMMEDDB:CAUSES", types.SpecificityBroad)
	if diff := cmp.Diff([]string{"ameliorates"}, owners); diff != "" {
		t.Fatalf("bucket-scoped lookup (-want +got):\n%s", diff)
	}
	require.Zero(t, idx.Warnings().Len())
}

func TestResolveByMappingEmptyIdentifier(t *testing.T) {
	idx := buildTestIndex(t)

	owners := idx.ResolveByMapping("  ", types.SpecificityAny)
	require.Empty(t, owners)
	require.Equal(t, 1, idx.Warnings().Len())
}

func TestResolveByPrefix(t *testing.T) {
	idx := buildTestIndex(t)

	owners := idx.ResolveByPrefix("NCBIGene")
	if diff := cmp.Diff([]string{"gene"}, owners); diff != "" {
		t.Fatalf("unexpected owners (-want +got):\n%s", diff)
	}

	// A full CURIE resolves via its prefix.
	owners = idx.ResolveByPrefix("MONDO:0005148")
	if diff := cmp.Diff([]string{"disease"}, owners); diff != "" {
		t.Fatalf("unexpected owners for CURIE (-want +got):\n%s", diff)
	}
	require.Zero(t, idx.Warnings().Len())

	owners = idx.ResolveByPrefix("UNREGISTERED")
	require.Empty(t, owners)
	entries := idx.Warnings().All()
	require.Len(t, entries, 1)
	require.Equal(t, types.WarningMissingPrefix, entries[0].Category)
}

func TestCommonMappedAncestor(t *testing.T) {
	idx := buildTestIndex(t)

	// Single owner: returned as-is.
	require.Equal(t, "causes", idx.CommonMappedAncestor("RO:0002410", types.SpecificityAny))

	// treats and ameliorates are siblings with no ancestry between them.
	require.Equal(t, "", idx.CommonMappedAncestor("RO:0002606", types.SpecificityAny))

	// Unknown identifier.
	require.Equal(t, "", idx.CommonMappedAncestor("RO:9999999", types.SpecificityAny))
}

func TestMappingsOf(t *testing.T) {
	idx := buildTestIndex(t)

	all, err := idx.MappingsOf("causes", types.SpecificityAny)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"RO:0002410", "SEMMEDDB:CAUSES"}, all); diff != "" {
		t.Fatalf("unexpected mappings (-want +got):\n%s", diff)
	}

	exact, err := idx.MappingsOf("causes", types.SpecificityExact)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"RO:0002410"}, exact); diff != "" {
		t.Fatalf("unexpected exact mappings (-want +got):\n%s", diff)
	}

	_, err = idx.MappingsOf("no such element", types.SpecificityAny)
	require.True(t, IsUnknownElement(err))
}

func TestSortedPrefixes(t *testing.T) {
	idx := buildTestIndex(t)

	want := []string{"DOID", "ENSEMBL", "HGNC", "MONDO", "NCBIGene"}
	if diff := cmp.Diff(want, idx.SortedPrefixes()); diff != "" {
		t.Fatalf("unexpected prefixes (-want +got):\n%s", diff)
	}
}
