package models

// Pagination describes one page of a list response.
type Pagination struct {
	Page    int   `json:"page"`
	Pages   int   `json:"pages"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
}

// NewPagination computes the page count for a total row count.
func NewPagination(page, perPage int, total int64) Pagination {
	pages := 0
	if perPage > 0 {
		pages = int((total + int64(perPage) - 1) / int64(perPage))
	}
	return Pagination{
		Page:    page,
		Pages:   pages,
		PerPage: perPage,
		Total:   total,
	}
}
