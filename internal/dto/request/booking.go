package request

// ListQuery carries the free-text search and optional status filter of list views.
// Status "" or "all" disables the status filter.
type ListQuery struct {
	Query  string
	Status string
}

const StatusAll = "all"

// HasStatus reports whether a status filter is active
func (q ListQuery) HasStatus() bool {
	return q.Status != "" && q.Status != StatusAll
}
