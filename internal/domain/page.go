package domain

// Page describes a window over an ordered result set. A nil *Page means the
// caller wants every matching row.
type Page struct {
	Offset int
	Limit  int
}

// NewPage builds a page window from the from/size query parameters. The
// offset is aligned to a page boundary, mirroring page-index pagination:
// from=7, size=5 lands on the page containing row 7 (offset 5).
func NewPage(from, size int) (*Page, error) {
	if from < 0 {
		return nil, NewValidationError("from must not be negative")
	}
	if size <= 0 {
		return nil, NewValidationError("size must be positive")
	}
	return &Page{Offset: (from / size) * size, Limit: size}, nil
}
