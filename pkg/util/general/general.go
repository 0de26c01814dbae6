package general

import (
	"strconv"
	"strings"
	"time"

	"taskestimate/internal/abstraction"
)

// Now ...
func Now() *time.Time {
	now := time.Now()
	return &now
}

// NowUTC ...
func NowUTC() *time.Time {
	now := time.Now().UTC()
	return &now
}

// ProcessLimitOffset ...
func ProcessLimitOffset(ctx *abstraction.Context, noPaging bool) (limit, offset int) {
	if noPaging {
		return -1, -1
	}
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(ctx.QueryParam("page_size"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return pageSize, (page - 1) * pageSize
}

// ProcessOrder builds an order clause from query params, restricted to plain
// column identifiers so nothing user-controlled reaches the SQL as-is.
func ProcessOrder(ctx *abstraction.Context) string {
	orderBy := ctx.QueryParam("order_by")
	for _, r := range orderBy {
		if (r < 'a' || r > 'z') && r != '_' {
			orderBy = ""
			break
		}
	}
	if orderBy == "" {
		orderBy = "id"
	}
	direction := "asc"
	if strings.EqualFold(ctx.QueryParam("order"), "desc") {
		direction = "desc"
	}
	return orderBy + " " + direction
}

func StringInSlice(text string, data []string) bool {
	for _, row := range data {
		if row == text {
			return true
		}
	}
	return false
}

// TruncateSheetName ...
func TruncateSheetName(name string) string {
	if len(name) > 31 {
		return name[:31]
	}
	return name
}
