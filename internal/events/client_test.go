package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

func TestChangeMessageRoundTrip(t *testing.T) {
	msg := NewChangeMessage(EntityExpense, OpCreated, 42)
	if msg.Timestamp.IsZero() {
		t.Fatal("timestamp must be set")
	}

	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	decoded, err := ChangeMessageFromJSON(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Entity != EntityExpense || decoded.Op != OpCreated || decoded.ID != 42 {
		t.Fatalf("decoded message = %+v", decoded)
	}
	if !decoded.Timestamp.Equal(msg.Timestamp.Truncate(time.Nanosecond)) {
		t.Fatalf("timestamp changed: %v vs %v", decoded.Timestamp, msg.Timestamp)
	}
}

func TestChangeMessageFromInvalidJSON(t *testing.T) {
	if _, err := ChangeMessageFromJSON([]byte(`{not json`)); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

// fakeAcknowledger records ack/nack outcomes per delivery tag.
type fakeAcknowledger struct {
	acked   []uint64
	nacked  []uint64
	requeue map[uint64]bool
}

func newFakeAcknowledger() *fakeAcknowledger {
	return &fakeAcknowledger{requeue: make(map[uint64]bool)}
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.acked = append(f.acked, tag)
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	f.nacked = append(f.nacked, tag)
	f.requeue[tag] = requeue
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return f.Nack(tag, false, requeue)
}

func TestConsumeLoopDispatchesMessages(t *testing.T) {
	ack := newFakeAcknowledger()
	body, _ := NewChangeMessage(EntityExpense, OpCreated, 7).ToJSON()

	deliveries := make(chan amqp091.Delivery, 1)
	deliveries <- amqp091.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: body}
	close(deliveries)

	var got []*ChangeMessage
	err := consumeLoop(context.Background(), deliveries, func(msg *ChangeMessage) error {
		got = append(got, msg)
		return nil
	})
	if err == nil {
		t.Fatal("expected channel-closed error")
	}
	if len(got) != 1 || got[0].Entity != EntityExpense || got[0].ID != 7 {
		t.Fatalf("handled messages = %+v", got)
	}
	if len(ack.acked) != 1 || ack.acked[0] != 1 {
		t.Fatalf("acked tags = %v", ack.acked)
	}
}

func TestConsumeLoopDropsUndecodableMessages(t *testing.T) {
	ack := newFakeAcknowledger()

	deliveries := make(chan amqp091.Delivery, 1)
	deliveries <- amqp091.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: []byte(`{not json`)}
	close(deliveries)

	handled := 0
	_ = consumeLoop(context.Background(), deliveries, func(msg *ChangeMessage) error {
		handled++
		return nil
	})
	if handled != 0 {
		t.Fatal("undecodable message reached the handler")
	}
	if len(ack.nacked) != 1 || ack.requeue[1] {
		t.Fatalf("expected nack without requeue, nacked=%v requeue=%v", ack.nacked, ack.requeue)
	}
}

func TestConsumeLoopRequeuesOnHandlerError(t *testing.T) {
	ack := newFakeAcknowledger()
	body, _ := NewChangeMessage(EntityPerson, OpDeleted, 3).ToJSON()

	deliveries := make(chan amqp091.Delivery, 1)
	deliveries <- amqp091.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: body}
	close(deliveries)

	_ = consumeLoop(context.Background(), deliveries, func(msg *ChangeMessage) error {
		return errors.New("handler failed")
	})
	if len(ack.nacked) != 1 || !ack.requeue[1] {
		t.Fatalf("expected nack with requeue, nacked=%v requeue=%v", ack.nacked, ack.requeue)
	}
	if len(ack.acked) != 0 {
		t.Fatalf("failed message was acked: %v", ack.acked)
	}
}

func TestConsumeLoopStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := consumeLoop(ctx, make(chan amqp091.Delivery), func(msg *ChangeMessage) error {
		t.Fatal("handler must not run")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestNilClientPublishesNothing(t *testing.T) {
	var c *Client
	if err := c.PublishChange(context.Background(), EntityPerson, OpDeleted, 1); err != nil {
		t.Fatalf("nil client publish must be a no-op, got %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("nil client close must be a no-op, got %v", err)
	}
}
