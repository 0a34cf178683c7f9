package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripapp/internal/booking/models"
)

func samplePage(pageNum int) *models.PaginatedResult[models.TripSummary] {
	return &models.PaginatedResult[models.TripSummary]{
		PageNum:  pageNum,
		PageSize: 10,
		AllPages: 2,
		Data:     []models.TripSummary{{Name: "Fjord Cruise"}},
	}
}

func TestMemory(t *testing.T) {
	ctx := context.Background()

	t.Run("miss on empty cache", func(t *testing.T) {
		c := NewMemory(time.Minute)
		_, _, ok := c.Get(ctx, "page=1:size=10")
		assert.False(t, ok)
	})

	t.Run("set then get", func(t *testing.T) {
		c := NewMemory(time.Minute)
		_, gen, _ := c.Get(ctx, "page=1:size=10")
		c.Set(ctx, gen, "page=1:size=10", samplePage(1))

		got, _, ok := c.Get(ctx, "page=1:size=10")
		require.True(t, ok)
		assert.Equal(t, "Fjord Cruise", got.Data[0].Name)
	})

	t.Run("invalidate drops every page", func(t *testing.T) {
		c := NewMemory(time.Minute)
		c.Set(ctx, 0, "page=1:size=10", samplePage(1))
		c.Set(ctx, 0, "page=2:size=10", samplePage(2))

		c.Invalidate(ctx)

		_, _, ok := c.Get(ctx, "page=1:size=10")
		assert.False(t, ok)
		_, _, ok = c.Get(ctx, "page=2:size=10")
		assert.False(t, ok)
	})

	t.Run("write from an older generation is dropped", func(t *testing.T) {
		c := NewMemory(time.Minute)
		_, gen, ok := c.Get(ctx, "page=1:size=10")
		require.False(t, ok)

		c.Invalidate(ctx)
		c.Set(ctx, gen, "page=1:size=10", samplePage(1))

		_, current, ok := c.Get(ctx, "page=1:size=10")
		assert.False(t, ok)
		assert.Equal(t, gen+1, current)
	})

	t.Run("entries expire", func(t *testing.T) {
		c := NewMemory(20 * time.Millisecond)
		c.Set(ctx, 0, "k", samplePage(1))
		time.Sleep(40 * time.Millisecond)

		_, _, ok := c.Get(ctx, "k")
		assert.False(t, ok)
	})
}
