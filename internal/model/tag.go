package model

// Tag is a free-text label a user applied to a movie. The tag text is
// part of the key, so the same user may tag the same movie with several
// distinct strings.
type Tag struct {
	UserID    int64
	MovieID   int64
	Tag       string
	Timestamp int64
}
