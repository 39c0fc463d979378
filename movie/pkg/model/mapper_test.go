package model

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	metadatamodel "github.com/mkvy/movies-gateway/metadata/pkg/model"
)

func ptr[T any](v T) *T { return &v }

func TestMovieSummaryFromMetadata(t *testing.T) {
	tests := []struct {
		name string
		in   metadatamodel.MovieResult
		want MovieSummary
	}{
		{
			name: "null release date",
			in:   metadatamodel.MovieResult{ID: 1, Title: "A", ReleaseDate: nil, VoteAverage: 7.5},
			want: MovieSummary{ID: 1, Title: "A", ReleaseDate: "", VoteAverage: 7.5},
		},
		{
			name: "all fields",
			in:   metadatamodel.MovieResult{ID: 2, Title: "B", PosterPath: ptr("/b.jpg"), ReleaseDate: ptr("2010-07-16"), VoteAverage: 8.4},
			want: MovieSummary{ID: 2, Title: "B", PosterPath: ptr("/b.jpg"), ReleaseDate: "2010-07-16", VoteAverage: 8.4},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, MovieSummaryFromMetadata(tt.in)); diff != "" {
				t.Errorf("MovieSummaryFromMetadata() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMovieSummariesFromMetadataEmpty(t *testing.T) {
	got := MovieSummariesFromMetadata(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("MovieSummariesFromMetadata(nil) = %#v, want empty non-nil slice", got)
	}
}

func TestMovieDetailFromMetadata(t *testing.T) {
	var cast []metadatamodel.CastMember
	for i := 0; i < 8; i++ {
		cast = append(cast, metadatamodel.CastMember{ID: 100 + i, Name: fmt.Sprintf("Actor %d", i), Character: ptr(fmt.Sprintf("Role %d", i)), Order: i})
	}
	in := &metadatamodel.Metadata{
		ID:          27205,
		Title:       "Inception",
		Overview:    ptr("A thief who steals corporate secrets."),
		ReleaseDate: ptr("2010-07-15"),
		Genres:      []metadatamodel.Genre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}},
		Runtime:     ptr(148),
		VoteAverage: 8.4,
		Credits: &metadatamodel.Credits{
			Cast: cast,
			Crew: []metadatamodel.CrewMember{
				{ID: 1, Name: "Hans Zimmer", Job: "Original Music Composer"},
				{ID: 525, Name: "Christopher Nolan", Job: "Director"},
				{ID: 526, Name: "Someone Else", Job: "Director"},
			},
		},
		Videos: &metadatamodel.Videos{Results: []metadatamodel.Video{
			{Key: "teaser", Site: "YouTube", Type: "Teaser"},
			{Key: "vimeo", Site: "Vimeo", Type: "Trailer"},
			{Key: "abc123", Site: "YouTube", Type: "Trailer"},
			{Key: "later", Site: "YouTube", Type: "Trailer"},
		}},
	}
	want := &MovieDetail{
		ID:          27205,
		Title:       "Inception",
		Overview:    "A thief who steals corporate secrets.",
		ReleaseDate: "2010-07-15",
		Genres:      []string{"Action", "Science Fiction"},
		Runtime:     ptr(148),
		VoteAverage: 8.4,
		Director:    "Christopher Nolan",
		DirectorID:  ptr(525),
		TrailerKey:  ptr("abc123"),
	}
	for i := 0; i < MaxCast; i++ {
		want.Cast = append(want.Cast, PersonRef{ID: 100 + i, Name: fmt.Sprintf("Actor %d", i), Character: fmt.Sprintf("Role %d", i)})
	}
	if diff := cmp.Diff(want, MovieDetailFromMetadata(in)); diff != "" {
		t.Errorf("MovieDetailFromMetadata() mismatch (-want +got):\n%s", diff)
	}
}

func TestMovieDetailFromMetadataDefaults(t *testing.T) {
	got := MovieDetailFromMetadata(&metadatamodel.Metadata{ID: 1, Title: "Bare"})
	want := &MovieDetail{
		ID:       1,
		Title:    "Bare",
		Genres:   []string{},
		Director: DirectorUnknown,
		Cast:     []PersonRef{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MovieDetailFromMetadata() mismatch (-want +got):\n%s", diff)
	}
}

func TestPersonRefFromCastNullCharacter(t *testing.T) {
	got := PersonRefFromCast(metadatamodel.CastMember{ID: 3, Name: "Extra"})
	if got.Character != "" {
		t.Errorf("Character = %q, want empty", got.Character)
	}
}
