// Package notify defines the events the scenario engine emits for the UI
// to surface (toasts). The engine owns what is said; rendering is the
// consumer's problem.
package notify

// Kind classifies a notification.
type Kind int

const (
	// KindNoSelection blocks a submit attempted without a chosen option.
	KindNoSelection Kind = iota
	// KindCorrect affirms a correct submission.
	KindCorrect
	// KindIncorrect reports a wrong submission and carries the correct
	// option's text as guidance.
	KindIncorrect
	// KindComplete reports a finished scenario with its score.
	KindComplete
)

// Event is a single notification with a short title and description.
type Event struct {
	Kind        Kind
	Title       string
	Description string
}

// Notifier receives events from the scenario engine.
type Notifier interface {
	Notify(Event)
}

// Func adapts a function to the Notifier interface.
type Func func(Event)

func (f Func) Notify(e Event) { f(e) }

// Discard is a Notifier that drops every event.
var Discard Notifier = Func(func(Event) {})

// Queue is a Notifier that buffers events until the UI drains them.
// The engine and the UI run on the same goroutine, so a drain directly
// after an engine call observes everything that call emitted.
type Queue struct {
	events []Event
}

func (q *Queue) Notify(e Event) {
	q.events = append(q.events, e)
}

// Drain returns the buffered events and empties the queue.
func (q *Queue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Recorder is a Notifier that stores events in order, for tests.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Notify(e Event) {
	r.Events = append(r.Events, e)
}

// Last returns the most recent event, or a zero Event if none.
func (r *Recorder) Last() Event {
	if len(r.Events) == 0 {
		return Event{}
	}
	return r.Events[len(r.Events)-1]
}
