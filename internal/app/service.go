package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/biolink/biolink-model-toolkit/internal/adapters"
	"github.com/biolink/biolink-model-toolkit/internal/core"
	"github.com/biolink/biolink-model-toolkit/internal/ports"
	"github.com/biolink/biolink-model-toolkit/internal/types"
)

// Toolkit is one lookup session: an immutable index over a single schema
// snapshot plus its warning log. All query methods are pure reads and
// safe for unlimited concurrent callers. Reload never mutates an
// existing session; it builds a whole new Toolkit for callers to swap to.
type Toolkit struct {
	index        *core.Index
	predicateMap []types.PredicateMappingRow
	source       string
}

// New builds a session from a LoadRequest, choosing the file or remote
// source adapter.
func New(ctx context.Context, req LoadRequest) (*Toolkit, error) {
	var source ports.SchemaSourcePort
	if strings.TrimSpace(req.Path) != "" {
		source = adapters.NewSchemaFileAdapter(req.Path)
	} else {
		source = adapters.NewSchemaRemoteAdapter(req.URL, req.HTTPTimeoutSec, req.HTTPRetries, req.HTTPRetryDelayMs)
	}

	var pmap ports.PredicateMapPort
	if !req.SkipPredicateMap {
		pmap = adapters.NewPredicateMapAdapter(
			req.PredicateMapPath,
			req.PredicateMapURL,
			req.HTTPTimeoutSec,
			req.HTTPRetries,
			req.HTTPRetryDelayMs,
		)
	}
	return NewFromSources(ctx, source, pmap, req.Roots)
}

// NewFromSources builds a session from explicit ports; tests inject
// fixture-backed sources here.
func NewFromSources(ctx context.Context, source ports.SchemaSourcePort, pmap ports.PredicateMapPort, roots types.RootNames) (*Toolkit, error) {
	if roots == (types.RootNames{}) {
		roots = types.DefaultRootNames()
	}
	schema, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}
	index, err := core.BuildIndex(ctx, schema, roots, core.NewWarningLog())
	if err != nil {
		return nil, err
	}

	toolkit := &Toolkit{
		index:  index,
		source: source.Describe(),
	}
	if pmap != nil {
		rows, err := pmap.Load(ctx)
		if err != nil {
			// The predicate map is auxiliary; a session without it still
			// answers every lookup except predicate-mapping queries.
			log.Ctx(ctx).Warn().Err(err).Msg("predicate mapping unavailable")
		} else {
			toolkit.predicateMap = rows
		}
	}
	log.Ctx(ctx).Info().
		Str("source", toolkit.source).
		Str("version", index.Version()).
		Msg("toolkit session ready")
	return toolkit, nil
}

// Reload builds a replacement session from the same kind of request.
// Callers swap the returned value in atomically; in-flight queries keep
// reading the old index.
func (t *Toolkit) Reload(ctx context.Context, req LoadRequest) (*Toolkit, error) {
	return New(ctx, req)
}

// Source names the schema origin of this session.
func (t *Toolkit) Source() string {
	return t.source
}

// ModelVersion returns the loaded schema's declared version.
func (t *Toolkit) ModelVersion() string {
	return t.index.Version()
}

// Index exposes the underlying index for advanced callers.
func (t *Toolkit) Index() *core.Index {
	return t.index
}
