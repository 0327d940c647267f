package ports

import (
	"math"

	"fooddelivery/internal/pkg/errs"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	// MaxPageNumber keeps Offset within int range for every page size.
	MaxPageNumber = math.MaxInt32
)

// Page selects one page of a listing. Number starts at 1.
type Page struct {
	Number int
	Size   int
}

// NewPage validates page bounds. Zero values fall back to the first page of
// DefaultPageSize.
func NewPage(number, size int) (Page, error) {
	if number == 0 {
		number = 1
	}
	if size == 0 {
		size = DefaultPageSize
	}
	if number < 1 || number > MaxPageNumber {
		return Page{}, errs.NewValueIsOutOfRangeError("page", number, 1, MaxPageNumber)
	}
	if size < 1 || size > MaxPageSize {
		return Page{}, errs.NewValueIsOutOfRangeError("limit", size, 1, MaxPageSize)
	}
	return Page{Number: number, Size: size}, nil
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// TotalPages returns ceil(total / size).
func (p Page) TotalPages(total int64) int {
	if total <= 0 || p.Size <= 0 {
		return 0
	}
	return int((total + int64(p.Size) - 1) / int64(p.Size))
}
