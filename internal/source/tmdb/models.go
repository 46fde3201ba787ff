package tmdb

// MovieDetails models the TMDB movie details response with releases and
// credits appended.
type MovieDetails struct {
	ID           int64    `json:"id"`
	Overview     string   `json:"overview"`
	BackdropPath string   `json:"backdrop_path"`
	ReleaseDate  string   `json:"release_date"`
	Popularity   float64  `json:"popularity"`
	Releases     Releases `json:"releases"`
	Credits      Credits  `json:"credits"`
}

// TVDetails models the TMDB TV details response with content ratings and
// credits appended.
type TVDetails struct {
	ID             int64          `json:"id"`
	Overview       string         `json:"overview"`
	BackdropPath   string         `json:"backdrop_path"`
	FirstAirDate   string         `json:"first_air_date"`
	Popularity     float64        `json:"popularity"`
	ContentRatings ContentRatings `json:"content_ratings"`
	Credits        Credits        `json:"credits"`
}

type Releases struct {
	Countries []CountryRelease `json:"countries"`
}

type CountryRelease struct {
	CountryCode   string `json:"iso_3166_1"`
	Certification string `json:"certification"`
}

type ContentRatings struct {
	Results []ContentRating `json:"results"`
}

type ContentRating struct {
	CountryCode string `json:"iso_3166_1"`
	Rating      string `json:"rating"`
}

type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ProfilePath string `json:"profile_path"`
	Character   string `json:"character"`
	Order       int    `json:"order"`
}

type CrewMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ProfilePath string `json:"profile_path"`
	Department  string `json:"department"`
	Job         string `json:"job"`
}
