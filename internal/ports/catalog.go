package ports

import "clubhub/internal/domain"

// Catalog supplies the content of new cards. Returned spots carry no
// identity; the caller stamps them.
type Catalog interface {
	// Batch returns one page of spots
	Batch() []domain.Spot

	// Next returns a single spot, cycling through the catalog
	Next() domain.Spot
}
