package notify

import "testing"

func TestQueueDrainReturnsEventsInOrder(t *testing.T) {
	q := &Queue{}
	q.Notify(Event{Kind: KindCorrect, Title: "first"})
	q.Notify(Event{Kind: KindIncorrect, Title: "second"})

	events := q.Drain()
	if len(events) != 2 {
		t.Fatalf("drained %d events, want 2", len(events))
	}
	if events[0].Title != "first" || events[1].Title != "second" {
		t.Errorf("events out of order: %v", events)
	}

	if again := q.Drain(); again != nil {
		t.Errorf("second drain should be empty, got %v", again)
	}
}

func TestRecorderKeepsLast(t *testing.T) {
	r := &Recorder{}
	r.Notify(Event{Kind: KindNoSelection})
	r.Notify(Event{Kind: KindComplete, Title: "done"})

	if got := r.Last(); got.Title != "done" {
		t.Errorf("Last() = %+v, want the most recent event", got)
	}
}

func TestDiscardIsSafe(t *testing.T) {
	Discard.Notify(Event{Kind: KindCorrect})
}
