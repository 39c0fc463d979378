package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mkvy/movies-gateway/metadata/pkg/model"
	"github.com/mkvy/movies-gateway/movie/internal/gateway"
	"github.com/uber-go/tally/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/mkvy/movies-gateway/movie/internal/gateway/metadata/http"

// DefaultBaseURL is the base URL of the public metadata API.
const DefaultBaseURL = "https://api.themoviedb.org/3"

// Config holds the upstream connection settings.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Gateway defines an HTTP gateway for the upstream movie metadata provider.
type Gateway struct {
	client  *http.Client
	baseURL string
	apiKey  string
	logger  *zap.Logger
	scope   tally.Scope
}

// New creates a new HTTP gateway for the upstream movie metadata provider.
func New(cfg Config, logger *zap.Logger, scope tally.Scope) *Gateway {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Gateway{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  cfg.APIKey,
		logger:  logger,
		scope:   scope,
	}
}

// Trending returns the movies trending this week.
func (g *Gateway) Trending(ctx context.Context, language string) ([]model.MovieResult, error) {
	var page model.ResultsPage
	if err := g.get(ctx, "trending", "/trending/movie/week", language, nil, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// Search returns the movies matching query. The query is forwarded as-is.
func (g *Gateway) Search(ctx context.Context, query string, language string) ([]model.MovieResult, error) {
	var page model.ResultsPage
	params := url.Values{}
	params.Add("query", query)
	if err := g.get(ctx, "search", "/search/movie", language, params, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// Movie gets movie metadata by a movie id without any appended sub-resources.
func (g *Gateway) Movie(ctx context.Context, id int, language string) (*model.Metadata, error) {
	var v *model.Metadata
	if err := g.get(ctx, "movie", "/movie/"+strconv.Itoa(id), language, nil, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// MovieDetails gets movie metadata by a movie id with credits and videos appended.
func (g *Gateway) MovieDetails(ctx context.Context, id int, language string) (*model.Metadata, error) {
	var v *model.Metadata
	params := url.Values{}
	params.Add("append_to_response", "credits,videos")
	if err := g.get(ctx, "movie_details", "/movie/"+strconv.Itoa(id), language, params, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Person gets a person by a person id.
func (g *Gateway) Person(ctx context.Context, id int, language string) (*model.Person, error) {
	var v *model.Person
	if err := g.get(ctx, "person", "/person/"+strconv.Itoa(id), language, nil, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// get issues a GET request against the upstream and decodes a 200 body into v.
func (g *Gateway) get(ctx context.Context, op string, path string, language string, params url.Values, v any) (err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "metadata."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.path", path), attribute.String("language", language)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return err
	}
	values := req.URL.Query()
	for k, vs := range params {
		for _, s := range vs {
			values.Add(k, s)
		}
	}
	values.Set("api_key", g.apiKey)
	values.Set("language", language)
	req.URL.RawQuery = values.Encode()

	g.logger.Debug("Calling metadata service", zap.String("op", op), zap.String("path", path), zap.String("language", language))
	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		g.scope.Tagged(map[string]string{"op": op, "status": "error"}).Counter("upstream_requests").Inc(1)
		return fmt.Errorf("%s %s: %w", op, path, err)
	}
	defer resp.Body.Close()
	g.scope.Tagged(map[string]string{"op": op}).Timer("upstream_latency").Record(time.Since(start))
	g.scope.Tagged(map[string]string{"op": op, "status": strconv.Itoa(resp.StatusCode)}).Counter("upstream_requests").Inc(1)
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w", op, path, gateway.ErrNotFound)
	} else if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s %s: %w: status %d", op, path, gateway.ErrUpstream, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", op, path, err)
	}
	return nil
}
