package pagination

import "gorm.io/gorm"

// DefaultPageSize is the page length used by every list screen.
const DefaultPageSize = 20

// Pagination carries the requested page number.
type Pagination struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"-"`
}

// PageInfo describes the resolved page after clamping.
type PageInfo struct {
	Page       int
	PageSize   int
	TotalPages int
	TotalItems int64
}

func (p PageInfo) HasPrevious() bool { return p.Page > 1 }
func (p PageInfo) HasNext() bool     { return p.Page < p.TotalPages }
func (p PageInfo) PreviousPage() int { return p.Page - 1 }
func (p PageInfo) NextPage() int     { return p.Page + 1 }

// Resolve clamps the requested page to the nearest valid page for the
// given item count. Out-of-range or nonsense page numbers never error.
func (p Pagination) Resolve(totalItems int64) PageInfo {
	size := p.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}

	totalPages := int((totalItems + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}

	page := p.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return PageInfo{
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
		TotalItems: totalItems,
	}
}

// Apply adds the LIMIT/OFFSET clause for the resolved page.
func (info PageInfo) Apply(stmt *gorm.DB) *gorm.DB {
	return stmt.Offset((info.Page - 1) * info.PageSize).Limit(info.PageSize)
}
