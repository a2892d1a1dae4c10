// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the number of members shown per page in the directory
// template views.
const PageSize = 8

// Page describes one window of a paginated result set. A Page is always
// valid: out-of-range requests are clamped to the nearest real page
// rather than failing.
type Page struct {
	Number     int   // 1-based, clamped into [1, TotalPages]
	Size       int
	Total      int64 // total matching records
	TotalPages int   // at least 1, even for an empty result set
	Offset     int64 // records to skip for this page
	HasPrev    bool
	HasNext    bool
	Prev       int // Number-1, only meaningful when HasPrev
	Next       int // Number+1, only meaningful when HasNext
}

// ParsePage extracts the "page" query parameter (1-based).
// Returns 1 if absent or invalid.
func ParsePage(r *http.Request) int {
	s := query.Get(r, "page")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Paginate computes the page window for the given total count, requested
// page number, and page size. Requests past the last page clamp to the
// last page; requests below 1 clamp to the first.
func Paginate(total int64, number, size int) Page {
	if size < 1 {
		size = PageSize
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}

	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	return Page{
		Number:     number,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
		Offset:     int64(number-1) * int64(size),
		HasPrev:    number > 1,
		HasNext:    number < totalPages,
		Prev:       number - 1,
		Next:       number + 1,
	}
}
