package ports

import (
	"context"

	"github.com/biolink/biolink-model-toolkit/internal/types"
)

// SchemaSourcePort acquires and deserializes one schema snapshot. The
// core never performs file or network I/O itself; it consumes the fully
// structured SchemaDefinition a source produces. Acquisition is a
// one-time step per session - retry and timeout policy lives inside the
// source, not the core.
type SchemaSourcePort interface {
	// Load fetches and parses the schema document.
	Load(ctx context.Context) (types.SchemaDefinition, error)

	// Describe names the source (path or URL) for logs and errors.
	Describe() string
}

// PredicateMapPort loads the predicate mapping table published alongside
// the model.
type PredicateMapPort interface {
	Load(ctx context.Context) ([]types.PredicateMappingRow, error)
}
