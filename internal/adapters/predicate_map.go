package adapters

import (
	"context"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/biolink/biolink-model-toolkit/internal/ports"
	"github.com/biolink/biolink-model-toolkit/internal/types"
)

// PredicateMapAdapter loads the predicate mapping table, either from a
// local file or from the published release URL.
type PredicateMapAdapter struct {
	Path string
	URL  string
	cfg  httpRetryConfig
}

func NewPredicateMapAdapter(path string, url string, timeoutSec int, retries int, retryDelayMs int) PredicateMapAdapter {
	if strings.TrimSpace(path) == "" && strings.TrimSpace(url) == "" {
		url = DefaultPredicateMapURL(LatestRelease)
	}
	return PredicateMapAdapter{
		Path: path,
		URL:  url,
		cfg:  normalizeHTTPConfig(timeoutSec, retries, retryDelayMs),
	}
}

func (a PredicateMapAdapter) Load(ctx context.Context) ([]types.PredicateMappingRow, error) {
	var data []byte
	var err error
	switch {
	case strings.TrimSpace(a.Path) != "":
		data, err = os.ReadFile(a.Path)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("failed to read predicate mapping file: " + a.Path).
				WithCause(err)
		}
	default:
		data, err = fetchDocument(ctx, a.URL, a.cfg)
		if err != nil {
			return nil, err
		}
	}

	// The table is a map of sections, each a list of rows keyed by
	// free-text field names; "mapped predicate" identifies the row.
	var document map[string][]map[string]string
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse predicate mapping document").
			WithCause(err)
	}

	var rows []types.PredicateMappingRow
	for _, section := range document {
		for _, item := range section {
			row := types.PredicateMappingRow{
				MappedPredicate: item["mapped predicate"],
				Fields:          map[string]string{},
			}
			for field, value := range item {
				row.Fields[field] = value
			}
			rows = append(rows, row)
		}
	}
	log.Ctx(ctx).Debug().Int("rows", len(rows)).Msg("predicate mapping loaded")
	return rows, nil
}

var _ ports.PredicateMapPort = PredicateMapAdapter{}
