package pagination

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/acl-api/lib/requestctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceSource struct {
	rows     []int
	countErr error
	offsets  []int
}

func (s *sliceSource) Count(context.Context) (int64, error) {
	return int64(len(s.rows)), s.countErr
}

func (s *sliceSource) Fetch(_ context.Context, offset, limit int) ([]int, error) {
	s.offsets = append(s.offsets, offset)
	if offset >= len(s.rows) {
		return nil, nil
	}
	end := min(offset+limit, len(s.rows))
	return s.rows[offset:end], nil
}

func rowsOf(n int) *sliceSource {
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i + 1
	}
	return &sliceSource{rows: rows}
}

const route = "http://localhost/api/v1/users"

func TestPaginateMiddlePage(t *testing.T) {
	res, err := Paginate[int](context.Background(), rowsOf(25), Options{Page: 2, Limit: 10, Route: route})
	require.NoError(t, err)

	assert.Len(t, res.Data, 10)
	assert.Equal(t, 11, res.Data[0])
	assert.Equal(t, Meta{ItemCount: 10, TotalItems: 25, ItemsPerPage: 10, TotalPages: 3, CurrentPage: 2}, res.Meta)
	require.NotNil(t, res.Links.Prev)
	require.NotNil(t, res.Links.Next)
	assert.Equal(t, route+"?page=1&limit=10", *res.Links.Prev)
	assert.Equal(t, route+"?page=3&limit=10", *res.Links.Next)
	assert.Equal(t, route+"?page=1&limit=10", *res.Links.First)
	assert.Equal(t, route+"?page=3&limit=10", *res.Links.Last)
}

func TestPaginateTailPage(t *testing.T) {
	res, err := Paginate[int](context.Background(), rowsOf(25), Options{Page: 3, Limit: 10, Route: route})
	require.NoError(t, err)

	assert.Equal(t, []int{21, 22, 23, 24, 25}, res.Data)
	assert.Equal(t, 5, res.Meta.ItemCount)
	assert.Nil(t, res.Links.Next)
	assert.NotNil(t, res.Links.Prev)
}

func TestPaginateClampsPage(t *testing.T) {
	tests := []struct {
		name string
		page int
		want int
	}{
		{"negative", -5, 1},
		{"zero", 0, 1},
		{"beyond last", 9999, 3},
		{"last", 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := rowsOf(25)
			res, err := Paginate[int](context.Background(), src, Options{Page: tt.page, Limit: 10, Route: route})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Meta.CurrentPage)
			assert.Equal(t, []int{(tt.want - 1) * 10}, src.offsets)
		})
	}
}

func TestPaginateDefaults(t *testing.T) {
	res, err := Paginate[int](context.Background(), rowsOf(15), Options{Page: -1, Limit: -3, Route: route})
	require.NoError(t, err)

	assert.Equal(t, DefaultLimit, res.Meta.ItemsPerPage)
	assert.Equal(t, DefaultPage, res.Meta.CurrentPage)
	assert.Equal(t, 2, res.Meta.TotalPages)
}

func TestPaginateEmpty(t *testing.T) {
	res, err := Paginate[int](context.Background(), rowsOf(0), Options{Page: 4, Limit: 10, Route: route})
	require.NoError(t, err)

	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
	assert.Equal(t, 0, res.Meta.TotalPages)
	assert.Equal(t, 1, res.Meta.CurrentPage)
	assert.Equal(t, Links{}, res.Links)
}

func TestPaginateTotalPagesProperty(t *testing.T) {
	for total := 0; total <= 31; total++ {
		for limit := 1; limit <= 7; limit++ {
			for _, page := range []int{-2, 1, 2, 50} {
				res, err := Paginate[int](context.Background(), rowsOf(total), Options{Page: page, Limit: limit, Route: route})
				require.NoError(t, err)

				wantPages := (total + limit - 1) / limit
				name := fmt.Sprintf("total=%d limit=%d page=%d", total, limit, page)
				assert.Equal(t, wantPages, res.Meta.TotalPages, name)
				assert.GreaterOrEqual(t, res.Meta.CurrentPage, 1, name)
				assert.LessOrEqual(t, res.Meta.CurrentPage, max(wantPages, 1), name)
				assert.Equal(t, total == 0, res.Links.First == nil, name)
				assert.Equal(t, total == 0, res.Links.Last == nil, name)
				assert.Equal(t, res.Meta.CurrentPage == 1, res.Links.Prev == nil, name)
				assert.Equal(t, res.Meta.CurrentPage >= wantPages, res.Links.Next == nil, name)
			}
		}
	}
}

func TestPaginateRouteWithQuery(t *testing.T) {
	res, err := Paginate[int](context.Background(), rowsOf(3), Options{Limit: 2, Route: route + "?search=jo"})
	require.NoError(t, err)
	assert.Equal(t, route+"?search=jo&page=2&limit=2", *res.Links.Next)
}

func TestPaginateRouteFromContext(t *testing.T) {
	ctx := requestctx.WithURL(context.Background(), "http://ctx.local/api/v1/roles")
	res, err := Paginate[int](ctx, rowsOf(3), Options{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, "http://ctx.local/api/v1/roles?page=1&limit=2", *res.Links.First)
}

func TestPaginateWithoutRoute(t *testing.T) {
	res, err := Paginate[int](context.Background(), rowsOf(30), Options{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, Links{}, res.Links)
	assert.Len(t, res.Data, 10)
}

func TestPaginateSourceError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Paginate[int](context.Background(), &sliceSource{countErr: boom}, Options{})
	assert.ErrorIs(t, err, boom)
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 3, ParseNumber("3"))
	assert.Equal(t, 0, ParseNumber("abc"))
	assert.Equal(t, 0, ParseNumber(""))
	assert.Equal(t, -5, ParseNumber(" -5 "))
}

func TestMapKeepsMeta(t *testing.T) {
	res, err := Paginate[int](context.Background(), rowsOf(5), Options{Limit: 2, Route: route})
	require.NoError(t, err)

	mapped := Map(res, func(i int) string { return fmt.Sprint(i * 10) })
	assert.Equal(t, []string{"10", "20"}, mapped.Data)
	assert.Equal(t, res.Meta, mapped.Meta)
	assert.Equal(t, res.Links, mapped.Links)
}
