//go:generate mockgen -source=controller.go -destination=../../../../gen/mock/metadata/gateway/gateway.go -package=gateway

package movie

import (
	"context"
	"errors"
	"fmt"

	metadatamodel "github.com/mkvy/movies-gateway/metadata/pkg/model"
	"github.com/mkvy/movies-gateway/movie/internal/gateway"
	"github.com/mkvy/movies-gateway/movie/pkg/model"
	"go.uber.org/zap"
)

// ErrNotFound is returned when the requested movie or person does not exist.
var ErrNotFound = errors.New("not found")

// ErrUpstream is returned when the metadata provider could not serve a listing.
var ErrUpstream = errors.New("metadata provider unavailable")

type metadataGateway interface {
	Trending(ctx context.Context, language string) ([]metadatamodel.MovieResult, error)
	Search(ctx context.Context, query string, language string) ([]metadatamodel.MovieResult, error)
	Movie(ctx context.Context, id int, language string) (*metadatamodel.Metadata, error)
	MovieDetails(ctx context.Context, id int, language string) (*metadatamodel.Metadata, error)
	Person(ctx context.Context, id int, language string) (*metadatamodel.Person, error)
}

// Locales holds the language codes used for upstream requests. Text
// left empty in Primary is looked up once in Fallback.
type Locales struct {
	Primary  string
	Fallback string
}

// Controller defines a movie service controller.
type Controller struct {
	metadataGateway metadataGateway
	locales         Locales
	logger          *zap.Logger
}

// New creates a new movie service controller.
func New(metadataGateway metadataGateway, locales Locales, logger *zap.Logger) *Controller {
	return &Controller{metadataGateway, locales, logger}
}

// Trending returns the movies trending this week.
func (c *Controller) Trending(ctx context.Context) ([]model.MovieSummary, error) {
	results, err := c.metadataGateway.Trending(ctx, c.locales.Primary)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return model.MovieSummariesFromMetadata(results), nil
}

// Search returns the movies matching query.
func (c *Controller) Search(ctx context.Context, query string) ([]model.MovieSummary, error) {
	results, err := c.metadataGateway.Search(ctx, query, c.locales.Primary)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return model.MovieSummariesFromMetadata(results), nil
}

// MovieDetail returns the movie detail, falling back to the secondary
// locale for an empty overview.
func (c *Controller) MovieDetail(ctx context.Context, id int) (*model.MovieDetail, error) {
	m, err := c.metadataGateway.MovieDetails(ctx, id, c.locales.Primary)
	if err != nil {
		return nil, lookupError(err)
	}
	if m == nil {
		return nil, ErrNotFound
	}
	d := model.MovieDetailFromMetadata(m)
	if d.Overview == "" && c.hasFallback() {
		fallback, err := c.metadataGateway.Movie(ctx, id, c.locales.Fallback)
		if err != nil {
			c.logger.Warn("Failed to fetch fallback overview", zap.Int("movieID", id), zap.String("language", c.locales.Fallback), zap.Error(err))
		} else if fallback != nil && fallback.Overview != nil {
			d.Overview = *fallback.Overview
		}
	}
	return d, nil
}

// PersonDetail returns the person detail, falling back to the secondary
// locale for an empty biography.
func (c *Controller) PersonDetail(ctx context.Context, id int) (*model.PersonDetail, error) {
	p, err := c.metadataGateway.Person(ctx, id, c.locales.Primary)
	if err != nil {
		return nil, lookupError(err)
	}
	if p == nil {
		return nil, ErrNotFound
	}
	d := model.PersonDetailFromMetadata(p)
	if (d.Biography == nil || *d.Biography == "") && c.hasFallback() {
		fallback, err := c.metadataGateway.Person(ctx, id, c.locales.Fallback)
		if err != nil {
			c.logger.Warn("Failed to fetch fallback biography", zap.Int("personID", id), zap.String("language", c.locales.Fallback), zap.Error(err))
		} else if fallback != nil && fallback.Biography != nil && *fallback.Biography != "" {
			d.Biography = fallback.Biography
		}
	}
	return d, nil
}

// MovieExists reports whether the provider answers a plain lookup of the movie.
// Any failure counts as absence.
func (c *Controller) MovieExists(ctx context.Context, id int) bool {
	if _, err := c.metadataGateway.Movie(ctx, id, c.locales.Primary); err != nil {
		c.logger.Debug("Movie existence probe failed", zap.Int("movieID", id), zap.Error(err))
		return false
	}
	return true
}

// PersonExists reports whether the provider answers a plain lookup of the person.
// Any failure counts as absence.
func (c *Controller) PersonExists(ctx context.Context, id int) bool {
	if _, err := c.metadataGateway.Person(ctx, id, c.locales.Primary); err != nil {
		c.logger.Debug("Person existence probe failed", zap.Int("personID", id), zap.Error(err))
		return false
	}
	return true
}

func (c *Controller) hasFallback() bool {
	return c.locales.Fallback != "" && c.locales.Fallback != c.locales.Primary
}

// lookupError maps a gateway error of an id lookup. Any non-success
// status from the provider means the record is treated as missing.
func lookupError(err error) error {
	if errors.Is(err, gateway.ErrNotFound) || errors.Is(err, gateway.ErrUpstream) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}
