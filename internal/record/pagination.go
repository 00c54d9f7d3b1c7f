package record

import "math"

// Default paging bounds used when a descriptor or caller leaves them unset.
const (
	DefaultPageSize = 10
	DefaultMaxLimit = 100
)

// Window is a resolved page request.
type Window struct {
	Page   int
	Limit  int
	Offset int
}

// Paginate clamps page and limit and computes the row offset. A page below 1
// becomes 1, a limit below 1 becomes defaultLimit, and a limit above maxLimit is
// capped. A page whose offset would overflow int is lowered to the last page
// that does not, which still reads past any real table.
func Paginate(page, limit, defaultLimit, maxLimit int) Window {
	if defaultLimit < 1 {
		defaultLimit = DefaultPageSize
	}
	if maxLimit < 1 {
		maxLimit = DefaultMaxLimit
	}
	if defaultLimit > maxLimit {
		defaultLimit = maxLimit
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if page > math.MaxInt/limit {
		page = math.MaxInt / limit
	}
	return Window{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

// TotalPages returns ceil(total/limit). An empty result has zero pages.
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
