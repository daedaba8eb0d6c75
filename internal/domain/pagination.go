package domain

import "math"

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the current page (0-based).
// Formula: (Page - 1) * PageSize.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// OffsetOverflows reports whether Offset cannot be represented as an int.
// Such a page lies past the end of any collection.
func (p PaginationParams) OffsetOverflows() bool {
	return p.Page > 1 && p.PageSize > 0 && p.Page-1 > math.MaxInt/p.PageSize
}

// TotalPages returns ceiling(total / PageSize); 0 when PageSize is not positive.
func (p PaginationParams) TotalPages(total int) int {
	if p.PageSize <= 0 {
		return 0
	}
	return (total + p.PageSize - 1) / p.PageSize
}
