package audit

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_StampsEvents(t *testing.T) {
	store := NewMemoryStore()
	pub := NewPublisher(store)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pub.now = func() time.Time { return fixed }

	err := pub.Emit(context.Background(), Event{
		Action:   string(ActionClientRegistered),
		ClientID: "7",
		TripID:   "3",
	})
	require.NoError(t, err)

	events, err := store.ListByClient(context.Background(), "7")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.NotEqual(t, uuid.Nil, events[0].ID)
	assert.Equal(t, fixed, events[0].Timestamp)
	assert.Equal(t, "3", events[0].TripID)
}

func TestPublisher_KeepsCallerStamp(t *testing.T) {
	store := NewMemoryStore()
	pub := NewPublisher(store)
	id := uuid.New()
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, pub.Emit(context.Background(), Event{ID: id, Timestamp: at, ClientID: "1"}))

	events, err := store.ListByClient(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, id, events[0].ID)
	assert.Equal(t, at, events[0].Timestamp)
}

func TestMemoryStore_ListReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Append(context.Background(), Event{ClientID: "1", Action: "a"}))

	events, err := store.ListByClient(context.Background(), "1")
	require.NoError(t, err)
	events[0].Action = "mutated"

	again, err := store.ListByClient(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "a", again[0].Action)
}
