package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationLinks(t *testing.T) {
	base := "http://example.com/tasks"

	tests := []struct {
		name     string
		page     int
		size     int
		total    int
		wantSelf string
		wantLast string
		wantPrev string
		wantNext string
	}{
		{
			name:     "first page of many",
			page:     1,
			size:     10,
			total:    25,
			wantSelf: "http://example.com/tasks?page=1&size=10",
			wantLast: "http://example.com/tasks?page=3&size=10",
			wantNext: "http://example.com/tasks?page=2&size=10",
		},
		{
			name:     "middle page has both neighbors",
			page:     2,
			size:     10,
			total:    25,
			wantSelf: "http://example.com/tasks?page=2&size=10",
			wantLast: "http://example.com/tasks?page=3&size=10",
			wantPrev: "http://example.com/tasks?page=1&size=10",
			wantNext: "http://example.com/tasks?page=3&size=10",
		},
		{
			name:     "last page has prev but no next",
			page:     3,
			size:     10,
			total:    25,
			wantSelf: "http://example.com/tasks?page=3&size=10",
			wantLast: "http://example.com/tasks?page=3&size=10",
			wantPrev: "http://example.com/tasks?page=2&size=10",
		},
		{
			name:     "exact multiple has no next on the boundary",
			page:     2,
			size:     10,
			total:    20,
			wantSelf: "http://example.com/tasks?page=2&size=10",
			wantLast: "http://example.com/tasks?page=2&size=10",
			wantPrev: "http://example.com/tasks?page=1&size=10",
		},
		{
			name:     "empty collection clamps last to page 1",
			page:     1,
			size:     10,
			total:    0,
			wantSelf: "http://example.com/tasks?page=1&size=10",
			wantLast: "http://example.com/tasks?page=1&size=10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links := PaginationLinks(base, tt.page, tt.size, tt.total)

			assert.Equal(t, tt.wantSelf, links["self"])
			assert.Equal(t, "http://example.com/tasks?page=1&size=10", links["first"])
			assert.Equal(t, tt.wantLast, links["last"])

			if tt.wantPrev != "" {
				assert.Equal(t, tt.wantPrev, links["prev"])
			} else {
				assert.NotContains(t, links, "prev")
			}
			if tt.wantNext != "" {
				assert.Equal(t, tt.wantNext, links["next"])
			} else {
				assert.NotContains(t, links, "next")
			}
		})
	}
}

func TestResourceLinks(t *testing.T) {
	links := ResourceLinks(42)

	assert.Equal(t, "/tasks/42", links["self"])
	assert.Equal(t, "/tasks/42", links["update"])
	assert.Equal(t, "/tasks/42", links["delete"])
}
