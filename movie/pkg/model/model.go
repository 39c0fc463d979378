package model

// DirectorUnknown is the director name reported when no crew member
// is credited as director.
const DirectorUnknown = "N/D"

// MaxCast is the number of billed cast members kept on a movie detail.
const MaxCast = 6

// MovieSummary defines a movie entry of a listing.
type MovieSummary struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	PosterPath  *string `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
}

// PersonRef defines a cast member attached to a movie.
type PersonRef struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	ProfilePath *string `json:"profile_path"`
}

// MovieDetail defines the full view of a single movie.
type MovieDetail struct {
	ID           int         `json:"id"`
	Title        string      `json:"title"`
	Overview     string      `json:"overview"`
	PosterPath   *string     `json:"poster_path"`
	BackdropPath *string     `json:"backdrop_path"`
	ReleaseDate  string      `json:"release_date"`
	Genres       []string    `json:"genres"`
	Runtime      *int        `json:"runtime"`
	VoteAverage  float64     `json:"vote_average"`
	Director     string      `json:"director"`
	DirectorID   *int        `json:"director_id"`
	TrailerKey   *string     `json:"trailer_key"`
	Cast         []PersonRef `json:"cast"`
}

// PersonDetail defines the full view of a single person.
type PersonDetail struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Biography    *string `json:"biography"`
	Birthday     *string `json:"birthday"`
	PlaceOfBirth *string `json:"place_of_birth"`
	ProfilePath  *string `json:"profile_path"`
}
