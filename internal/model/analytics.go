package model

// Analytics is the unfiltered row count of every table.
type Analytics struct {
	Movies  int64
	Ratings int64
	Tags    int64
	Links   int64
}
