package attrs

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestExtractString(t *testing.T) {
	id := uuid.MustParse("5b8f7a3e-2c1d-4e5f-9a0b-1c2d3e4f5a6b")
	attributes := []any{
		"client_id", 42,
		"trip_id", int64(7),
		"request_id", "req-1",
		"event_id", id,
		"ratio", 0.5,
		99, "non-string key",
	}

	assert.Equal(t, "42", ExtractString(attributes, "client_id"))
	assert.Equal(t, "7", ExtractString(attributes, "trip_id"))
	assert.Equal(t, "req-1", ExtractString(attributes, "request_id"))
	assert.Equal(t, id.String(), ExtractString(attributes, "event_id"))
	assert.Empty(t, ExtractString(attributes, "ratio"))
	assert.Empty(t, ExtractString(attributes, "missing"))
}

func TestLookupIgnoresDanglingKey(t *testing.T) {
	_, ok := Lookup([]any{"client_id"}, "client_id")
	assert.False(t, ok)
}
