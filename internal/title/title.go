package title

import (
	"errors"

	"movieapi/internal/genre"
)

// ErrNotFound is returned when a title is absent, or hidden by kids mode.
// Callers cannot tell the two apart.
var ErrNotFound = errors.New("title not found")

// ErrAlreadyExists is returned when creating a title with a taken show id.
var ErrAlreadyExists = errors.New("title already exists")

// Title is a catalog entry. Genres holds the per-genre indicators in
// taxonomy order.
type Title struct {
	ShowID      string
	Type        string
	Name        string
	Description string
	ImageURL    string
	ReleaseYear int
	Director    string
	Cast        string
	Duration    string
	Country     string
	Rating      string
	Genres      genre.Flags
}

// Item is the hydrated read model surfaced to clients. Genre carries the
// displayed genre: the filter value when a genre filter was applied,
// otherwise the title's primary genre.
type Item struct {
	ShowID      string `json:"showId"`
	Type        string `json:"type,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	ReleaseYear int    `json:"releaseYear,omitempty"`
	Director    string `json:"director,omitempty"`
	Cast        string `json:"cast,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Country     string `json:"country,omitempty"`
	Rating      string `json:"rating,omitempty"`
	Genre       string `json:"genre"`
}

// Query defines search, filter and pagination for listing titles.
type Query struct {
	Search   string
	Genre    string
	Page     int
	PageSize int
	KidsMode bool
}

// Filter is the repository-level form of Query with the genre label already
// resolved to a taxonomy position.
type Filter struct {
	Search   string
	GenreIdx *int
	KidsMode bool
	Limit    int
	Offset   int
}

// PageResult is one page of the filtered, ordered catalog.
type PageResult struct {
	Items      []Item `json:"movies"`
	TotalCount int    `json:"totalCount"`
	TotalPages int    `json:"totalPages"`
	Page       int    `json:"currentPage"`
	PageSize   int    `json:"pageSize"`
}

func itemOf(t Title, displayedGenre string) Item {
	return Item{
		ShowID:      t.ShowID,
		Type:        t.Type,
		Title:       t.Name,
		Description: t.Description,
		ImageURL:    t.ImageURL,
		ReleaseYear: t.ReleaseYear,
		Director:    t.Director,
		Cast:        t.Cast,
		Duration:    t.Duration,
		Country:     t.Country,
		Rating:      t.Rating,
		Genre:       displayedGenre,
	}
}
