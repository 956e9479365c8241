package store

// Pagination defaults and bounds. Limit bounds are enforced at the API
// boundary; the store only applies defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

// Params contains offset pagination request parameters.
type Params struct {
	Page  int // 1-based page number (defaults to 1)
	Limit int // Number of items per page (defaults to 10, capped at 50 by the API)
}

// Normalize applies defaults for unset values.
func (p *Params) Normalize() {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
}

// Skip returns the number of records to skip before the requested page.
// The first page skips nothing; later pages skip (page-1)*limit.
func (p Params) Skip() int {
	if p.Page > 1 {
		return (p.Page - 1) * p.Limit
	}
	return 0
}

// Markers returns the first/last index markers for a page of count items
// starting at skip. An empty page yields (0, 0); a page of one item yields
// (skip, skip).
func Markers(skip, count int) (first, last int) {
	if count == 0 {
		return 0, 0
	}
	if count == 1 {
		return skip, skip
	}
	return skip, skip + count - 1
}
