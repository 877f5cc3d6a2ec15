package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/biolink/biolink-model-toolkit/internal/ports"
	"github.com/biolink/biolink-model-toolkit/internal/types"
)

// LatestRelease is the model release fetched when no explicit source is
// configured.
const LatestRelease = "4.3.7"

const rawBaseURL = "https://raw.githubusercontent.com/biolink/biolink-model/v%s/"

// DefaultSchemaURL returns the published schema document URL for a
// release.
func DefaultSchemaURL(release string) string {
	return fmt.Sprintf(rawBaseURL, release) + "biolink-model.yaml"
}

// DefaultPredicateMapURL returns the published predicate mapping URL for
// a release.
func DefaultPredicateMapURL(release string) string {
	return fmt.Sprintf(rawBaseURL, release) + "predicate_mapping.yaml"
}

const defaultHTTPTimeout = 60 * time.Second
const defaultHTTPRetries = 3
const defaultHTTPRetryDelay = 200 * time.Millisecond
const maxHTTPRetryDelay = 2 * time.Second

type httpRetryConfig struct {
	timeout   time.Duration
	retries   int
	baseDelay time.Duration
}

func normalizeHTTPConfig(timeoutSec int, retries int, delayMs int) httpRetryConfig {
	timeout := time.Duration(timeoutSec) * time.Second
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	retryCount := retries
	if retryCount <= 0 {
		retryCount = defaultHTTPRetries
	}
	baseDelay := time.Duration(delayMs) * time.Millisecond
	if baseDelay <= 0 {
		baseDelay = defaultHTTPRetryDelay
	}
	return httpRetryConfig{
		timeout:   timeout,
		retries:   retryCount,
		baseDelay: baseDelay,
	}
}

// SchemaRemoteAdapter fetches a schema document over HTTP with bounded
// retries.
type SchemaRemoteAdapter struct {
	URL string
	cfg httpRetryConfig
}

func NewSchemaRemoteAdapter(url string, timeoutSec int, retries int, retryDelayMs int) SchemaRemoteAdapter {
	if strings.TrimSpace(url) == "" {
		url = DefaultSchemaURL(LatestRelease)
	}
	return SchemaRemoteAdapter{
		URL: url,
		cfg: normalizeHTTPConfig(timeoutSec, retries, retryDelayMs),
	}
}

func (a SchemaRemoteAdapter) Load(ctx context.Context) (types.SchemaDefinition, error) {
	data, err := fetchDocument(ctx, a.URL, a.cfg)
	if err != nil {
		return types.SchemaDefinition{}, err
	}
	schema, err := DecodeSchema(data)
	if err != nil {
		return types.SchemaDefinition{}, err
	}
	checkVersion(ctx, schema.Version)
	log.Ctx(ctx).Debug().
		Str("url", a.URL).
		Int("elements", len(schema.Elements)).
		Msg("schema loaded from remote")
	return schema, nil
}

func (a SchemaRemoteAdapter) Describe() string {
	return a.URL
}

func fetchDocument(ctx context.Context, url string, cfg httpRetryConfig) ([]byte, error) {
	resp, err := doRequest(ctx, url, cfg)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to fetch schema document").
			WithCause(fmt.Errorf("status=%d url=%s", resp.StatusCode, url))
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read schema document").
			WithCause(err)
	}
	return data, nil
}

func doRequest(ctx context.Context, url string, cfg httpRetryConfig) (*http.Response, error) {
	client := &http.Client{Timeout: cfg.timeout}
	var lastErr error
	for attempt := 0; attempt < cfg.retries; attempt++ {
		if ctx.Err() != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("request canceled").
				WithCause(ctx.Err())
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create request").
				WithCause(err)
		}
		resp, err := client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeInternal).
					WithMsg("request canceled").
					WithCause(ctx.Err())
			}
			lastErr = err
			if attempt < cfg.retries-1 {
				time.Sleep(httpRetryDelay(attempt, cfg))
				continue
			}
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("request failed").
				WithCause(err)
		}
		if (resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests) && attempt < cfg.retries-1 {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			time.Sleep(httpRetryDelay(attempt, cfg))
			continue
		}
		return resp, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("request failed")
	}
	return nil, errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("request failed").
		WithCause(lastErr)
}

func httpRetryDelay(attempt int, cfg httpRetryConfig) time.Duration {
	delay := cfg.baseDelay * time.Duration(1<<attempt)
	if delay > maxHTTPRetryDelay {
		delay = maxHTTPRetryDelay
	}
	jitter := time.Duration(time.Now().UnixNano() % int64(delay/2+1))
	return delay + jitter
}

var _ ports.SchemaSourcePort = SchemaRemoteAdapter{}
