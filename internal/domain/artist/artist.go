// Package artist provides the Artist domain entity.
package artist

import "slices"

// Artist represents a catalog artist.
type Artist struct {
	ID       string   // Catalog artist ID
	Name     string   // Display name
	Bio      string   // Short biography
	ImageURL string   // Portrait image URL
	Genres   []string // Genre IDs
}

// HasGenre reports whether the artist is tagged with the genre.
func (a Artist) HasGenre(genreID string) bool {
	return slices.Contains(a.Genres, genreID)
}
