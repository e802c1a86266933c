// Package genre provides the Genre domain entity.
package genre

// Genre represents a browsable catalog genre.
type Genre struct {
	ID          string // Catalog genre ID
	Name        string // Display name
	Description string // One-line description
	Color       string // HSL theme color, e.g. "300 100% 50%"
	ImageURL    string // Banner image URL
}
