package utils

import (
	"fmt"
)

// PaginationLinks computes the navigation links for a paginated collection.
// baseURL is the collection URL without query parameters. The last page is
// ceil(total/size), clamped to 1 when the collection is empty so the link set
// is always well-formed. prev appears only past page 1, next only while the
// window has not covered the total.
func PaginationLinks(baseURL string, page, size, total int) map[string]string {
	lastPage := (total + size - 1) / size
	if lastPage < 1 {
		lastPage = 1
	}

	links := map[string]string{
		"self":  pageURL(baseURL, page, size),
		"first": pageURL(baseURL, 1, size),
		"last":  pageURL(baseURL, lastPage, size),
	}
	if page > 1 {
		links["prev"] = pageURL(baseURL, page-1, size)
	}
	if page*size < total {
		links["next"] = pageURL(baseURL, page+1, size)
	}
	return links
}

// ResourceLinks returns the action links for a single task. All three point
// at the canonical resource URL; the action is implied by the HTTP method a
// consumer pairs with each key.
func ResourceLinks(taskID uint64) map[string]string {
	url := fmt.Sprintf("/tasks/%d", taskID)
	return map[string]string{
		"self":   url,
		"update": url,
		"delete": url,
	}
}

func pageURL(baseURL string, page, size int) string {
	return fmt.Sprintf("%s?page=%d&size=%d", baseURL, page, size)
}
