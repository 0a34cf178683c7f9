//go:build integration

package audit_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"tripapp/internal/audit"
	"tripapp/pkg/testutil/containers"
)

type KafkaStoreSuite struct {
	suite.Suite
	brokers []string
	store   *audit.KafkaStore
}

func TestKafkaStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KafkaStoreSuite))
}

func (s *KafkaStoreSuite) SetupSuite() {
	rp := containers.GetManager().GetRedpanda(s.T())
	s.brokers = []string{rp.SeedBroker}

	store, err := audit.NewKafkaStore(s.brokers, "tripapp.audit.test")
	s.Require().NoError(err)
	s.Require().NoError(store.EnsureTopic(context.Background(), 1, 1))
	s.store = store
}

func (s *KafkaStoreSuite) TearDownSuite() {
	if s.store != nil {
		s.store.Close()
	}
}

func (s *KafkaStoreSuite) TestEnsureTopicIsIdempotent() {
	s.NoError(s.store.EnsureTopic(context.Background(), 1, 1))
}

func (s *KafkaStoreSuite) TestAppendProducesKeyedJSONRecord() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := audit.NewPublisher(s.store).Emit(ctx, audit.Event{
		Action:    string(audit.ActionClientRegistered),
		ClientID:  "42",
		TripID:    "7",
		RequestID: "req-1",
	})
	s.Require().NoError(err)

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.brokers...),
		kgo.ConsumeTopics("tripapp.audit.test"),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	var got *kgo.Record
	for got == nil {
		fetches := consumer.PollFetches(ctx)
		s.Require().NoError(ctx.Err())
		fetches.EachRecord(func(r *kgo.Record) {
			if string(r.Key) == "42" {
				got = r
			}
		})
	}

	var event audit.Event
	s.Require().NoError(json.Unmarshal(got.Value, &event))
	s.Equal(string(audit.ActionClientRegistered), event.Action)
	s.Equal("7", event.TripID)
	s.Equal("req-1", event.RequestID)
}
