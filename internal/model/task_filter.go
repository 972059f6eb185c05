package model

// TaskFilter is the resolved query specification for listing tasks.
// Zero values mean the filter is not applied. SortBy holds a column
// name already validated against the sortable-field allow-list, and
// SortOrder is either "asc" or "desc", so both are safe to place in
// an ORDER BY clause. The struct lives in model for reuse by the
// repository and handler layers.
type TaskFilter struct {
	Search   string
	Status   string
	Priority string

	SortBy    string
	SortOrder string

	Page  int
	Limit int
}

// Offset returns the number of rows to skip for the requested page.
func (f TaskFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
