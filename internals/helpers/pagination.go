package helper

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 25
	MaxPerPage     = 200
)

type PageParams struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string // asc|desc
}

// ParsePage reads page/per_page/sort_by/sort_order from the query string with
// sane clamps.
func ParsePage(c *fiber.Ctx, defaultSortBy string) PageParams {
	page := atoiDefault(c.Query("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}
	per := atoiDefault(c.Query("per_page"), DefaultPerPage)
	if per < 1 {
		per = DefaultPerPage
	}
	if per > MaxPerPage {
		per = MaxPerPage
	}

	sortBy := strings.TrimSpace(c.Query("sort_by"))
	if sortBy == "" {
		sortBy = defaultSortBy
	}
	sortOrder := strings.ToLower(strings.TrimSpace(c.Query("sort_order")))
	if sortOrder != "asc" {
		sortOrder = "desc"
	}

	return PageParams{Page: page, PerPage: per, SortBy: sortBy, SortOrder: sortOrder}
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// SafeOrderClause maps the requested sort key through a column whitelist.
// sort_by comes straight from the query string, so it must never reach the
// ORDER BY as-is; unknown keys fall back to defaultKey.
func (p PageParams) SafeOrderClause(allowed map[string]string, defaultKey string) (string, error) {
	key := p.SortBy
	if key == "" {
		key = defaultKey
	}
	col, ok := allowed[key]
	if !ok {
		col, ok = allowed[defaultKey]
		if !ok {
			return "", fmt.Errorf("no valid default sort key")
		}
	}
	dir := "DESC"
	if strings.ToLower(p.SortOrder) == "asc" {
		dir = "ASC"
	}
	return col + " " + dir, nil
}

// Meta is the envelope controllers attach beside the row slice.
func (p PageParams) Meta(total int64) fiber.Map {
	pages := int(math.Ceil(float64(total) / float64(p.PerPage)))
	if pages < 1 {
		pages = 1
	}
	return fiber.Map{
		"page":        p.Page,
		"per_page":    p.PerPage,
		"total":       total,
		"total_pages": pages,
	}
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}
