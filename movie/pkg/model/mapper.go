package model

import metadatamodel "github.com/mkvy/movies-gateway/metadata/pkg/model"

// MovieSummaryFromMetadata converts an upstream listing entry into a MovieSummary.
func MovieSummaryFromMetadata(m metadatamodel.MovieResult) MovieSummary {
	return MovieSummary{
		ID:          m.ID,
		Title:       m.Title,
		PosterPath:  m.PosterPath,
		ReleaseDate: stringValue(m.ReleaseDate),
		VoteAverage: m.VoteAverage,
	}
}

// MovieSummariesFromMetadata converts an upstream listing, keeping its order.
// The result is never nil.
func MovieSummariesFromMetadata(results []metadatamodel.MovieResult) []MovieSummary {
	res := make([]MovieSummary, 0, len(results))
	for _, m := range results {
		res = append(res, MovieSummaryFromMetadata(m))
	}
	return res
}

// PersonRefFromCast converts an upstream cast credit into a PersonRef.
func PersonRefFromCast(c metadatamodel.CastMember) PersonRef {
	return PersonRef{
		ID:          c.ID,
		Name:        c.Name,
		Character:   stringValue(c.Character),
		ProfilePath: c.ProfilePath,
	}
}

// MovieDetailFromMetadata converts an upstream movie record, with credits
// and videos appended, into a MovieDetail.
func MovieDetailFromMetadata(m *metadatamodel.Metadata) *MovieDetail {
	d := &MovieDetail{
		ID:           m.ID,
		Title:        m.Title,
		Overview:     stringValue(m.Overview),
		PosterPath:   m.PosterPath,
		BackdropPath: m.BackdropPath,
		ReleaseDate:  stringValue(m.ReleaseDate),
		Genres:       make([]string, 0, len(m.Genres)),
		Runtime:      m.Runtime,
		VoteAverage:  m.VoteAverage,
		Director:     DirectorUnknown,
		Cast:         []PersonRef{},
	}
	for _, g := range m.Genres {
		d.Genres = append(d.Genres, g.Name)
	}
	if m.Credits != nil {
		if director := findDirector(m.Credits.Crew); director != nil {
			d.Director = director.Name
			id := director.ID
			d.DirectorID = &id
		}
		for i, c := range m.Credits.Cast {
			if i == MaxCast {
				break
			}
			d.Cast = append(d.Cast, PersonRefFromCast(c))
		}
	}
	if m.Videos != nil {
		if trailer := findTrailer(m.Videos.Results); trailer != nil {
			key := trailer.Key
			d.TrailerKey = &key
		}
	}
	return d
}

// PersonDetailFromMetadata converts an upstream person record into a PersonDetail.
func PersonDetailFromMetadata(p *metadatamodel.Person) *PersonDetail {
	return &PersonDetail{
		ID:           p.ID,
		Name:         p.Name,
		Biography:    p.Biography,
		Birthday:     p.Birthday,
		PlaceOfBirth: p.PlaceOfBirth,
		ProfilePath:  p.ProfilePath,
	}
}

func findDirector(crew []metadatamodel.CrewMember) *metadatamodel.CrewMember {
	for i := range crew {
		if crew[i].Job == "Director" {
			return &crew[i]
		}
	}
	return nil
}

func findTrailer(videos []metadatamodel.Video) *metadatamodel.Video {
	for i := range videos {
		if videos[i].Type == "Trailer" && videos[i].Site == "YouTube" {
			return &videos[i]
		}
	}
	return nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
