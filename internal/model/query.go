package model

import "fmt"

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Page is the offset/limit window applied to every listing.
type Page struct {
	Skip  int
	Limit int
}

func (p Page) Validate() error {
	if p.Skip < 0 {
		return fmt.Errorf("skip must be non-negative, got %d", p.Skip)
	}
	if p.Limit < 1 || p.Limit > MaxLimit {
		return fmt.Errorf("limit must be between 1 and %d, got %d", MaxLimit, p.Limit)
	}
	return nil
}

// MovieFilter narrows a movie listing. Title and Genre are
// case-insensitive substring matches; empty means no constraint.
type MovieFilter struct {
	Title string
	Genre string
}

// RatingFilter narrows a rating listing. Fields are pointers so that a
// legitimate zero value (movieId=0, minRating=0) still counts as a
// present filter. MinRating is an inclusive lower bound.
type RatingFilter struct {
	MovieID   *int64
	UserID    *int64
	MinRating *float64
}

// TagFilter narrows a tag listing.
type TagFilter struct {
	MovieID *int64
	UserID  *int64
}
