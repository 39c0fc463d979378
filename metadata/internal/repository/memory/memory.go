package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/mkvy/movies-gateway/metadata/internal/repository"
	"github.com/mkvy/movies-gateway/metadata/pkg/model"
)

type key struct {
	id       int
	language string
}

// Repository defines a memory movie metadata repository keyed by
// record id and language.
type Repository struct {
	sync.RWMutex
	movies   map[key]*model.Metadata
	people   map[key]*model.Person
	trending []model.MovieResult
}

// New is factory method for repository.
func New() *Repository {
	return &Repository{
		movies: map[key]*model.Metadata{},
		people: map[key]*model.Person{},
	}
}

// Get retrieves movie metadata by id and language.
func (r *Repository) Get(_ context.Context, id int, language string) (*model.Metadata, error) {
	r.RLock()
	defer r.RUnlock()
	m, ok := r.movies[key{id, language}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return m, nil
}

// Put adds movie metadata for given movie id and language.
func (r *Repository) Put(_ context.Context, language string, metadata *model.Metadata) error {
	r.Lock()
	defer r.Unlock()
	r.movies[key{metadata.ID, language}] = metadata
	return nil
}

// GetPerson retrieves a person by id and language.
func (r *Repository) GetPerson(_ context.Context, id int, language string) (*model.Person, error) {
	r.RLock()
	defer r.RUnlock()
	p, ok := r.people[key{id, language}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

// PutPerson adds a person for given language.
func (r *Repository) PutPerson(_ context.Context, language string, person *model.Person) error {
	r.Lock()
	defer r.Unlock()
	r.people[key{person.ID, language}] = person
	return nil
}

// SetTrending replaces the trending listing.
func (r *Repository) SetTrending(_ context.Context, results []model.MovieResult) error {
	r.Lock()
	defer r.Unlock()
	r.trending = results
	return nil
}

// Trending returns the trending listing.
func (r *Repository) Trending(_ context.Context) ([]model.MovieResult, error) {
	r.RLock()
	defer r.RUnlock()
	return r.trending, nil
}

// Search returns stored movies in the given language whose title
// contains query, ignoring case.
func (r *Repository) Search(_ context.Context, query string, language string) ([]model.MovieResult, error) {
	r.RLock()
	defer r.RUnlock()
	q := strings.ToLower(query)
	res := []model.MovieResult{}
	for k, m := range r.movies {
		if k.language != language || !strings.Contains(strings.ToLower(m.Title), q) {
			continue
		}
		res = append(res, model.MovieResult{
			ID:          m.ID,
			Title:       m.Title,
			PosterPath:  m.PosterPath,
			ReleaseDate: m.ReleaseDate,
			VoteAverage: m.VoteAverage,
		})
	}
	return res, nil
}
