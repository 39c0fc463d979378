package model

// Metadata defines a movie record as returned by the upstream
// metadata provider. Every nullable field is a pointer; fields the
// provider omits decode to their zero value.
type Metadata struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Overview     *string  `json:"overview"`
	PosterPath   *string  `json:"poster_path"`
	BackdropPath *string  `json:"backdrop_path"`
	ReleaseDate  *string  `json:"release_date"`
	Genres       []Genre  `json:"genres"`
	Runtime      *int     `json:"runtime"`
	VoteAverage  float64  `json:"vote_average"`
	Credits      *Credits `json:"credits,omitempty"`
	Videos       *Videos  `json:"videos,omitempty"`
}

// MovieResult defines one entry of a trending or search listing.
type MovieResult struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	PosterPath  *string `json:"poster_path"`
	ReleaseDate *string `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
}

// ResultsPage is the paginated envelope of listing endpoints.
type ResultsPage struct {
	Page         int           `json:"page"`
	Results      []MovieResult `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

// Genre defines a movie genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Credits holds the cast and crew appended to a movie record.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// CastMember defines a single billed actor.
type CastMember struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Character   *string `json:"character"`
	ProfilePath *string `json:"profile_path"`
	Order       int     `json:"order"`
}

// CrewMember defines a single crew credit.
type CrewMember struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// Videos holds the videos appended to a movie record.
type Videos struct {
	Results []Video `json:"results"`
}

// Video defines a video hosted on an external site.
type Video struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// Person defines a person record as returned by the upstream provider.
type Person struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Biography    *string `json:"biography"`
	Birthday     *string `json:"birthday"`
	PlaceOfBirth *string `json:"place_of_birth"`
	ProfilePath  *string `json:"profile_path"`
}
