package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const defaultPageSize = 20

// pageParams holds the request-scoped listing state: pagination, sorting and
// search are plain query parameters, resolved fresh on every request.
type pageParams struct {
	Page      int
	PageSize  int
	Sort      string
	Direction string
	Search    string
}

// parsePageParams reads listing parameters from the query string, clamping
// pagination and restricting the sort column to the given allow-list.
func parsePageParams(c *gin.Context, sortColumns map[string]bool, defaultSort string) pageParams {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = defaultPageSize
	}

	sort := c.DefaultQuery("sort", defaultSort)
	if !sortColumns[sort] {
		sort = defaultSort
	}

	direction := c.DefaultQuery("direction", "desc")
	if direction != "asc" {
		direction = "desc"
	}

	return pageParams{
		Page:      page,
		PageSize:  pageSize,
		Sort:      sort,
		Direction: direction,
		Search:    strings.TrimSpace(c.Query("search")),
	}
}

func (p pageParams) order() string {
	return p.Sort + " " + p.Direction
}

// applyNameSearch narrows q to rows whose first or last name contains the
// needle, case-insensitively.
func applyNameSearch(q *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return q
	}
	pattern := "%" + strings.ToLower(search) + "%"
	return q.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", pattern, pattern)
}
