package model

// Link holds the external IMDB/TMDB identifiers for a movie, one row
// per movie at most. Either identifier may be missing.
type Link struct {
	MovieID int64
	ImdbID  *string
	TmdbID  *int64
}
