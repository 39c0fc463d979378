package movie

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	gatewaymock "github.com/mkvy/movies-gateway/gen/mock/metadata/gateway"
	metadatamodel "github.com/mkvy/movies-gateway/metadata/pkg/model"
	"github.com/mkvy/movies-gateway/movie/internal/gateway"
	"github.com/mkvy/movies-gateway/movie/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testLocales = Locales{Primary: "it-IT", Fallback: "en-US"}

func ptr[T any](v T) *T { return &v }

func newTestController(t *testing.T) (*Controller, *gatewaymock.MockmetadataGateway) {
	ctrl := gomock.NewController(t)
	g := gatewaymock.NewMockmetadataGateway(ctrl)
	return New(g, testLocales, zap.NewNop()), g
}

func TestTrending(t *testing.T) {
	tests := []struct {
		name       string
		results    []metadatamodel.MovieResult
		gatewayErr error
		want       []model.MovieSummary
		wantErr    error
	}{
		{
			name:    "maps results",
			results: []metadatamodel.MovieResult{{ID: 1, Title: "A"}, {ID: 2, Title: "B", ReleaseDate: ptr("2024-01-01")}},
			want:    []model.MovieSummary{{ID: 1, Title: "A"}, {ID: 2, Title: "B", ReleaseDate: "2024-01-01"}},
		},
		{
			name: "empty listing",
			want: []model.MovieSummary{},
		},
		{
			name:       "upstream failure",
			gatewayErr: fmt.Errorf("trending: %w", gateway.ErrUpstream),
			wantErr:    ErrUpstream,
		},
		{
			name:       "network failure",
			gatewayErr: errors.New("connection refused"),
			wantErr:    ErrUpstream,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, g := newTestController(t)
			ctx := context.Background()
			g.EXPECT().Trending(ctx, "it-IT").Return(tt.results, tt.gatewayErr)
			got, err := c.Trending(ctx)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchForwardsEmptyQuery(t *testing.T) {
	c, g := newTestController(t)
	ctx := context.Background()
	g.EXPECT().Search(ctx, "", "it-IT").Return(nil, nil)
	got, err := c.Search(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []model.MovieSummary{}, got)
}

func TestMovieDetailNotFound(t *testing.T) {
	for _, gatewayErr := range []error{gateway.ErrNotFound, gateway.ErrUpstream} {
		c, g := newTestController(t)
		ctx := context.Background()
		g.EXPECT().MovieDetails(ctx, 7, "it-IT").Return(nil, fmt.Errorf("movie_details /movie/7: %w", gatewayErr))
		_, err := c.MovieDetail(ctx, 7)
		assert.ErrorIs(t, err, ErrNotFound)
	}
}

func TestMovieDetailNetworkFailureIsNotNotFound(t *testing.T) {
	c, g := newTestController(t)
	ctx := context.Background()
	g.EXPECT().MovieDetails(ctx, 7, "it-IT").Return(nil, errors.New("dial tcp: timeout"))
	_, err := c.MovieDetail(ctx, 7)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestMovieDetailOverviewFallback(t *testing.T) {
	tests := []struct {
		name     string
		primary  *string
		fallback *metadatamodel.Metadata
		fbErr    error
		calls    int
		want     string
	}{
		{name: "primary present", primary: ptr("Trama"), calls: 0, want: "Trama"},
		{name: "primary empty", primary: ptr(""), fallback: &metadatamodel.Metadata{Overview: ptr("Plot")}, calls: 1, want: "Plot"},
		{name: "primary null", primary: nil, fallback: &metadatamodel.Metadata{Overview: ptr("Plot")}, calls: 1, want: "Plot"},
		{name: "both empty", primary: ptr(""), fallback: &metadatamodel.Metadata{Overview: ptr("")}, calls: 1, want: ""},
		{name: "fallback fails", primary: ptr(""), fbErr: gateway.ErrUpstream, calls: 1, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, g := newTestController(t)
			ctx := context.Background()
			g.EXPECT().MovieDetails(ctx, 27205, "it-IT").Return(&metadatamodel.Metadata{ID: 27205, Title: "Inception", Overview: tt.primary}, nil)
			g.EXPECT().Movie(ctx, 27205, "en-US").Return(tt.fallback, tt.fbErr).Times(tt.calls)
			got, err := c.MovieDetail(ctx, 27205)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Overview)
		})
	}
}

func TestMovieDetailNoFallbackWhenLocalesMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := gatewaymock.NewMockmetadataGateway(ctrl)
	c := New(g, Locales{Primary: "en-US", Fallback: "en-US"}, zap.NewNop())
	ctx := context.Background()
	g.EXPECT().MovieDetails(ctx, 1, "en-US").Return(&metadatamodel.Metadata{ID: 1}, nil)
	got, err := c.MovieDetail(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "", got.Overview)
}

func TestPersonDetailBiographyFallback(t *testing.T) {
	tests := []struct {
		name     string
		primary  *string
		fallback *string
		calls    int
		want     *string
	}{
		{name: "primary present", primary: ptr("Regista britannico."), calls: 0, want: ptr("Regista britannico.")},
		{name: "primary empty", primary: ptr(""), fallback: ptr("British director."), calls: 1, want: ptr("British director.")},
		{name: "primary null", primary: nil, fallback: ptr("British director."), calls: 1, want: ptr("British director.")},
		{name: "both empty", primary: ptr(""), fallback: ptr(""), calls: 1, want: ptr("")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, g := newTestController(t)
			ctx := context.Background()
			g.EXPECT().Person(ctx, 525, "it-IT").Return(&metadatamodel.Person{ID: 525, Name: "Christopher Nolan", Biography: tt.primary}, nil)
			g.EXPECT().Person(ctx, 525, "en-US").Return(&metadatamodel.Person{ID: 525, Biography: tt.fallback}, nil).Times(tt.calls)
			got, err := c.PersonDetail(ctx, 525)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Biography)
			assert.Equal(t, "Christopher Nolan", got.Name)
		})
	}
}

func TestPersonDetailNotFound(t *testing.T) {
	c, g := newTestController(t)
	ctx := context.Background()
	g.EXPECT().Person(ctx, 9, "it-IT").Return(nil, gateway.ErrNotFound)
	_, err := c.PersonDetail(ctx, 9)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExistenceProbes(t *testing.T) {
	c, g := newTestController(t)
	ctx := context.Background()
	g.EXPECT().Movie(ctx, 1, "it-IT").Return(&metadatamodel.Metadata{ID: 1}, nil)
	g.EXPECT().Movie(ctx, 2, "it-IT").Return(nil, gateway.ErrNotFound)
	g.EXPECT().Person(ctx, 3, "it-IT").Return(nil, errors.New("connection reset"))
	g.EXPECT().Person(ctx, 4, "it-IT").Return(&metadatamodel.Person{ID: 4}, nil)

	assert.True(t, c.MovieExists(ctx, 1))
	assert.False(t, c.MovieExists(ctx, 2))
	assert.False(t, c.PersonExists(ctx, 3))
	assert.True(t, c.PersonExists(ctx, 4))
}
