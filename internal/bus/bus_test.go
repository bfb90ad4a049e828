package bus

import "testing"

func TestPublishReachesAllSubscribers(t *testing.T) {
	b := New(4)
	a := b.Subscribe("g1")
	c := b.Subscribe("g1")

	b.Publish("g1", EventBidPlaced, map[string]any{"amount": 10})

	for _, sub := range []chan Event{a, c} {
		ev := <-sub
		if ev.GameID != "g1" || ev.Name != EventBidPlaced {
			t.Fatalf("event = %+v", ev)
		}
	}
}

func TestEventsDeliveredInPublishOrder(t *testing.T) {
	b := New(8)
	sub := b.Subscribe("g1")

	for i := 0; i < 5; i++ {
		b.Publish("g1", EventTimerTick, i)
	}
	for i := 0; i < 5; i++ {
		ev := <-sub
		if ev.Data != i {
			t.Fatalf("event %d carries %v", i, ev.Data)
		}
	}
}

func TestTopicsAreIsolated(t *testing.T) {
	b := New(4)
	g1 := b.Subscribe("g1")
	g2 := b.Subscribe("g2")

	b.Publish("g1", EventPlayerJoined, nil)

	if ev := <-g1; ev.GameID != "g1" {
		t.Fatalf("g1 subscriber got %+v", ev)
	}
	select {
	case ev := <-g2:
		t.Fatalf("g2 subscriber got %+v", ev)
	default:
	}
}

func TestLaggingSubscriberShedsOldest(t *testing.T) {
	b := New(2)
	sub := b.Subscribe("g1")

	// Third publish overflows the buffer; the oldest event goes.
	for i := 0; i < 3; i++ {
		b.Publish("g1", EventTimerTick, i)
	}

	if ev := <-sub; ev.Data != 1 {
		t.Fatalf("first queued event carries %v, want 1", ev.Data)
	}
	if ev := <-sub; ev.Data != 2 {
		t.Fatalf("second queued event carries %v, want 2", ev.Data)
	}
	select {
	case ev := <-sub:
		t.Fatalf("unexpected extra event %+v", ev)
	default:
	}
}

func TestSubscribeBeforeGameExists(t *testing.T) {
	b := New(4)
	sub := b.Subscribe("not-yet-created")
	b.Publish("not-yet-created", EventGameStarted, nil)
	if ev := <-sub; ev.Name != EventGameStarted {
		t.Fatalf("event = %+v", ev)
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := New(4)
	sub := b.Subscribe("g1")
	b.Unsubscribe("g1", sub)

	if _, ok := <-sub; ok {
		t.Fatal("channel still open after Unsubscribe")
	}
	// Publishing afterwards must not panic on the closed channel.
	b.Publish("g1", EventBidPlaced, nil)
	// Double unsubscribe is a no-op.
	b.Unsubscribe("g1", sub)
}

func TestPublishWithoutSubscribersIsSilent(t *testing.T) {
	b := New(4)
	b.Publish("g1", EventRoundResolved, nil)
}
