// Package pagination windows any countable, fetchable query into pages and
// builds first/prev/next/last navigation links for them.
package pagination

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/acl-api/lib/requestctx"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Source is anything able to count and window a filtered, sorted row set
type Source[T any] interface {
	Count(ctx context.Context) (int64, error)
	Fetch(ctx context.Context, offset, limit int) ([]T, error)
}

// Options controls the requested window. Zero or negative values fall back
// to the defaults. An empty Route falls back to the URL of the current
// request found in the context.
type Options struct {
	Page  int
	Limit int
	Route string
}

// Meta describes the returned window
type Meta struct {
	ItemCount    int   `json:"itemCount"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	TotalPages   int   `json:"totalPages"`
	CurrentPage  int   `json:"currentPage"`
}

// Links are the navigation URLs; nil entries render as JSON null
type Links struct {
	First *string `json:"first"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
	Last  *string `json:"last"`
}

// Result is one page of rows plus its metadata
type Result[T any] struct {
	Data  []T   `json:"data"`
	Meta  Meta  `json:"meta"`
	Links Links `json:"links"`
}

// ParseNumber converts a raw query value, returning 0 for anything that is
// not an integer so Paginate applies its default.
func ParseNumber(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

// Paginate counts the rows of src, clamps the requested page into range and
// fetches that window. Out of range pages return the nearest valid page.
// The only errors returned are the ones produced by src.
func Paginate[T any](ctx context.Context, src Source[T], opts Options) (Result[T], error) {
	page := opts.Page
	if page <= 0 {
		page = DefaultPage
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	route := opts.Route
	if route == "" {
		route = requestctx.URL(ctx)
	}

	totalItems, err := src.Count(ctx)
	if err != nil {
		return Result[T]{}, fmt.Errorf("count rows: %w", err)
	}

	totalPages := int((totalItems + int64(limit) - 1) / int64(limit))
	page = min(page, max(totalPages, 1))

	items, err := src.Fetch(ctx, (page-1)*limit, limit)
	if err != nil {
		return Result[T]{}, fmt.Errorf("fetch rows: %w", err)
	}
	if items == nil {
		items = []T{}
	}

	link := linkBuilder(route, limit)
	links := Links{}
	if totalItems > 0 {
		links.First = link(1)
		links.Last = link(totalPages)
	}
	if page > 1 {
		links.Prev = link(page - 1)
	}
	if page < totalPages {
		links.Next = link(page + 1)
	}

	return Result[T]{
		Data: items,
		Meta: Meta{
			ItemCount:    len(items),
			TotalItems:   totalItems,
			ItemsPerPage: limit,
			TotalPages:   totalPages,
			CurrentPage:  page,
		},
		Links: links,
	}, nil
}

// Map converts the rows of r while keeping its metadata and links
func Map[T, R any](r Result[T], fn func(T) R) Result[R] {
	data := make([]R, 0, len(r.Data))
	for _, item := range r.Data {
		data = append(data, fn(item))
	}
	return Result[R]{Data: data, Meta: r.Meta, Links: r.Links}
}

func linkBuilder(route string, limit int) func(page int) *string {
	sep := "?"
	if strings.Contains(route, "?") {
		sep = "&"
	}
	return func(page int) *string {
		if route == "" {
			return nil
		}
		link := fmt.Sprintf("%s%spage=%d&limit=%d", route, sep, page, limit)
		return &link
	}
}
