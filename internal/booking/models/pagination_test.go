package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestNewPageRequest(t *testing.T) {
	cases := []struct {
		name       string
		page, size int
		wantPage   int
		wantSize   int
		wantOffset int
	}{
		{"defaults stay", 1, 10, 1, 10, 0},
		{"zero page clamps to one", 0, 10, 1, 10, 0},
		{"negative page clamps to one", -4, 20, 1, 20, 0},
		{"small size clamps to ten", 2, 3, 2, 10, 10},
		{"no ceiling on size", 1, 5000, 1, 5000, 0},
		{"third page", 3, 10, 3, 10, 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := NewPageRequest(tc.page, tc.size)
			assert.Equal(t, tc.wantPage, req.Page)
			assert.Equal(t, tc.wantSize, req.PageSize)
			assert.Equal(t, tc.wantOffset, req.Offset())
			assert.Equal(t, tc.wantSize, req.Limit())
		})
	}
}

// Floor division is deliberate: 25 rows at size 10 report two pages even though
// a third page holds the remaining five rows.
func TestTotalPagesFloors(t *testing.T) {
	assert.Equal(t, 2, TotalPages(25, 10))
	assert.Equal(t, 2, TotalPages(20, 10))
	assert.Equal(t, 0, TotalPages(9, 10))
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 0, TotalPages(5, 0))
}

func TestPagingOverTwentyFiveRows(t *testing.T) {
	rows := make([]int, 25)
	for i := range rows {
		rows[i] = i
	}
	slice := func(req PageRequest) []int {
		start := min(req.Offset(), len(rows))
		end := min(start+req.Limit(), len(rows))
		return rows[start:end]
	}

	third := NewPageRequest(3, 10)
	page3 := NewPaginatedResult(third, len(rows), slice(third))
	assert.Equal(t, 3, page3.PageNum)
	assert.Equal(t, 2, page3.AllPages)
	assert.Len(t, page3.Data, 5)

	fourth := NewPageRequest(4, 10)
	page4 := NewPaginatedResult(fourth, len(rows), slice(fourth))
	assert.Equal(t, 4, page4.PageNum)
	assert.NotNil(t, page4.Data)
	assert.Empty(t, page4.Data)
}

func TestPageRequestProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		page := rapid.IntRange(-1000, 1000).Draw(t, "page")
		size := rapid.IntRange(-100, 10000).Draw(t, "size")

		req := NewPageRequest(page, size)

		if req.Page < 1 {
			t.Fatalf("page %d below 1", req.Page)
		}
		if req.PageSize < MinPageSize {
			t.Fatalf("page size %d below minimum", req.PageSize)
		}
		if page >= 1 && req.Page != page {
			t.Fatalf("valid page %d changed to %d", page, req.Page)
		}
		if size >= MinPageSize && req.PageSize != size {
			t.Fatalf("valid size %d changed to %d", size, req.PageSize)
		}
		if req.Offset() != (req.Page-1)*req.PageSize {
			t.Fatalf("offset %d for page %d size %d", req.Offset(), req.Page, req.PageSize)
		}
	})
}

func TestTotalPagesProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		total := rapid.IntRange(0, 100000).Draw(t, "total")
		size := rapid.IntRange(MinPageSize, 500).Draw(t, "size")

		pages := TotalPages(total, size)

		if pages*size > total {
			t.Fatalf("%d pages of %d exceed %d rows", pages, size, total)
		}
		if total-pages*size >= size {
			t.Fatalf("a full page is missing from the count: total=%d size=%d pages=%d", total, size, pages)
		}
	})
}
