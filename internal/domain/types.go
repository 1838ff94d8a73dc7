package domain

// ID is used across domain entities.
type ID int64

// Pagination carries paging params and totals.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total,omitempty"`
}

// Normalize clamps page and page size to sane values.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 || p.PageSize > 100 {
		p.PageSize = 20
	}
	return p
}

// Offset returns the SQL offset for the current page.
func (p Pagination) Offset() int {
	p = p.Normalize()
	return (p.Page - 1) * p.PageSize
}

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID ID     `json:"userId"`
	Role   Role   `json:"role"`
	JTI    string `json:"-"`
}
