package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mochizukey/task-rest-api/internal/constants"
)

// PaginationParams holds the pagination window of a list request
type PaginationParams struct {
	Page   int
	Size   int
	Offset int
}

// GetPaginationParams extracts and validates pagination parameters from the request
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.MinPage)))
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(constants.DefaultPageSize)))

	if page < constants.MinPage {
		page = constants.MinPage
	}
	if size < 1 || size > constants.MaxPageSize {
		size = constants.DefaultPageSize
	}

	offset := (page - 1) * size

	return PaginationParams{
		Page:   page,
		Size:   size,
		Offset: offset,
	}
}
