package model

// Movie is a single catalog entry. Genres is the raw pipe-delimited
// string from the dataset and may be absent.
type Movie struct {
	MovieID int64
	Title   string
	Genres  *string
}

// MovieDetails is a movie together with everything that references it.
type MovieDetails struct {
	Movie
	Ratings []Rating
	Tags    []Tag
	Link    *Link
}
