package services

import "strconv"

// PageSize is the fixed number of entries per listing page.
const PageSize = 20

// ParsePage interprets a raw page parameter. Absent, non-numeric, or
// negative values all mean the first page.
func ParsePage(raw string) int64 {
	page, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || page < 0 {
		return 0
	}
	return page
}

// PageWindow converts a page number to the skip/limit pair a repository
// listing expects.
func PageWindow(page int64) (skip, limit int64) {
	if page < 0 {
		page = 0
	}
	return page * PageSize, PageSize
}
