package pagination

import "strconv"

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 10
	// MaxLimit caps how many rows any listing can request upstream.
	MaxLimit = 50
	// FirstPage is the lowest valid 1-based page index.
	FirstPage = 1
)

// Params holds the page-based pagination inputs used by every catalog and
// review listing.
type Params struct {
	Limit int
	Page  int
}

// Normalize clamps the params to the supported ranges.
func (p Params) Normalize() Params {
	return Params{
		Limit: NormalizeLimit(p.Limit),
		Page:  NormalizePage(p.Page),
	}
}

// QueryValues serializes limit and page the way the upstream API expects.
func (p Params) QueryValues() map[string]string {
	norm := p.Normalize()
	return map[string]string{
		"limit": strconv.Itoa(norm.Limit),
		"page":  strconv.Itoa(norm.Page),
	}
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// NormalizePage coerces non-positive page indexes to the first page.
func NormalizePage(page int) int {
	if page < FirstPage {
		return FirstPage
	}
	return page
}
