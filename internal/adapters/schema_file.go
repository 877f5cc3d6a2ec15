package adapters

import (
	"context"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	"github.com/rs/zerolog/log"

	"github.com/biolink/biolink-model-toolkit/internal/ports"
	"github.com/biolink/biolink-model-toolkit/internal/types"
)

// minSupportedVersion is the oldest model release this toolkit is known
// to handle. Older schemas still load; they just get a logged warning.
const minSupportedVersion = "3.0.0"

// SchemaFileAdapter loads a schema document from local disk.
type SchemaFileAdapter struct {
	Path string
}

func NewSchemaFileAdapter(path string) SchemaFileAdapter {
	return SchemaFileAdapter{Path: path}
}

func (a SchemaFileAdapter) Load(ctx context.Context) (types.SchemaDefinition, error) {
	if strings.TrimSpace(a.Path) == "" {
		return types.SchemaDefinition{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("schema path is required")
	}
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return types.SchemaDefinition{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read schema file: " + a.Path).
			WithCause(err)
	}
	schema, err := DecodeSchema(data)
	if err != nil {
		return types.SchemaDefinition{}, err
	}
	checkVersion(ctx, schema.Version)
	log.Ctx(ctx).Debug().
		Str("path", a.Path).
		Int("elements", len(schema.Elements)).
		Msg("schema loaded from file")
	return schema, nil
}

func (a SchemaFileAdapter) Describe() string {
	return a.Path
}

// checkVersion compares the declared schema version against the minimum
// supported release. Model releases follow PEP 440-compatible numbering.
func checkVersion(ctx context.Context, version string) {
	trimmed := strings.TrimSpace(version)
	if trimmed == "" {
		log.Ctx(ctx).Warn().Msg("schema declares no version")
		return
	}
	declared, err := pep440.Parse(trimmed)
	if err != nil {
		log.Ctx(ctx).Warn().Str("version", trimmed).Msg("schema version is not parseable")
		return
	}
	minimum, err := pep440.Parse(minSupportedVersion)
	if err != nil {
		return
	}
	if declared.Compare(minimum) < 0 {
		log.Ctx(ctx).Warn().
			Str("version", trimmed).
			Str("minimum", minSupportedVersion).
			Msg("schema release predates the minimum supported version")
	}
}

var _ ports.SchemaSourcePort = SchemaFileAdapter{}
