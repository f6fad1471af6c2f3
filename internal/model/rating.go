package model

// Rating is one user's score for one movie, keyed by (UserID, MovieID).
// Timestamp is epoch seconds.
type Rating struct {
	UserID    int64
	MovieID   int64
	Rating    float64
	Timestamp int64
}
