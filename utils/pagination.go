package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Pagination carries the page/size pair read from the query string.
// Pages are zero-based.
type Pagination struct {
	Page int
	Size int
}

// GetPagination reads page and size from the request query, with bounds.
func GetPagination(c *gin.Context) Pagination {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}

	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(DefaultPageSize)))
	if err != nil || size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return Pagination{Page: page, Size: size}
}

// Scope applies the pagination to a GORM query. One extra row is fetched so
// the caller can tell whether a next page exists.
func (p Pagination) Scope(db *gorm.DB) *gorm.DB {
	return db.Offset(p.Page * p.Size).Limit(p.Size + 1)
}

// Slice trims the extra row and reports whether a next page exists.
// The items slice must have been fetched through Scope.
func Slice[T any](items []T, p Pagination) ([]T, bool) {
	if len(items) > p.Size {
		return items[:p.Size], true
	}
	return items, false
}

// PagedResponse is the envelope for paginated listings.
type PagedResponse struct {
	Content interface{} `json:"content"`
	Page    int         `json:"page"`
	Size    int         `json:"size"`
	HasNext bool        `json:"hasNext"`
}
