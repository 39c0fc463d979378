package memory

import (
	"context"
	"testing"

	"github.com/mkvy/movies-gateway/metadata/internal/repository"
	"github.com/mkvy/movies-gateway/metadata/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIsKeyedByLanguage(t *testing.T) {
	r := New()
	ctx := context.Background()
	require.NoError(t, r.Put(ctx, "it-IT", &model.Metadata{ID: 1, Title: "Il film"}))

	m, err := r.Get(ctx, 1, "it-IT")
	require.NoError(t, err)
	assert.Equal(t, "Il film", m.Title)

	_, err = r.Get(ctx, 1, "en-US")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSearch(t *testing.T) {
	r := New()
	ctx := context.Background()
	require.NoError(t, r.Put(ctx, "it-IT", &model.Metadata{ID: 603, Title: "Matrix"}))
	require.NoError(t, r.Put(ctx, "it-IT", &model.Metadata{ID: 27205, Title: "Inception"}))

	res, err := r.Search(ctx, "MATRIX", "it-IT")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, 603, res[0].ID)

	res, err = r.Search(ctx, "matrix", "en-US")
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestPersonNotFound(t *testing.T) {
	_, err := New().GetPerson(context.Background(), 1, "it-IT")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
