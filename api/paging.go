package api

// pagingQueryParams is the 1-based page a client asks for
type pagingQueryParams struct {
	PageNumber int `form:"page_number"`
}

// Page is a paginated response. Results never exceed the page size.
type Page[T any] struct {
	Count       int  `json:"count"`
	PageNumber  int  `json:"page_number"`
	HasNextPage bool `json:"has_next_page"`
	Results     []T  `json:"results"`
}

// limitOffset asks the store for one extra row so that the next page can be
// detected without counting
func limitOffset(pageNumber, pageSize int) (int, int) {
	return pageSize + 1, (pageNumber - 1) * pageSize
}

func newPage[T any](results []T, pageNumber, pageSize int) Page[T] {
	hasNext := len(results) > pageSize
	if hasNext {
		results = results[:pageSize]
	}
	if results == nil {
		results = []T{}
	}

	return Page[T]{
		Count:       len(results),
		PageNumber:  pageNumber,
		HasNextPage: hasNext,
		Results:     results,
	}
}
