// Package pagination implements offset pagination for list endpoints.
package pagination

import "gorm.io/gorm"

const defaultPerPage = 25

// Params holds pagination parameters parsed from the query string.
type Params struct {
	Page    int `form:"page" binding:"omitempty,min=1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1,max=100"`
}

// Normalize fills in defaults for missing parameters.
func (p *Params) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = defaultPerPage
	}
}

// Page wraps one page of items with paging metadata.
type Page[T any] struct {
	Items   []T   `json:"items"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
}

// NewPage builds a Page from items and the total row count.
func NewPage[T any](items []T, params Params, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := int(total) / params.PerPage
	if int(total)%params.PerPage != 0 {
		pages++
	}
	return Page[T]{
		Items:   items,
		Page:    params.Page,
		PerPage: params.PerPage,
		Total:   total,
		Pages:   pages,
	}
}

// Apply returns a GORM scope applying the OFFSET and LIMIT for params.
func Apply(params Params) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((params.Page - 1) * params.PerPage).Limit(params.PerPage)
	}
}
