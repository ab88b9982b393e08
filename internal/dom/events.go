package dom

import "golang.org/x/net/html"

type Event struct {
	Type          string
	Target        *html.Node
	CurrentTarget *html.Node
}

type Listener func(Event)

func (d *Document) AddEventListener(n *html.Node, eventType string, fn Listener) {
	if n == nil || fn == nil {
		return
	}
	byType, ok := d.listeners[n]
	if !ok {
		byType = make(map[string][]Listener)
		d.listeners[n] = byType
	}
	byType[eventType] = append(byType[eventType], fn)
}

// Dispatch fires eventType at target and bubbles it up through every ancestor.
// Listeners added while dispatching are not called for this event.
func (d *Document) Dispatch(target *html.Node, eventType string) {
	if target == nil {
		return
	}
	for n := target; n != nil; n = n.Parent {
		fns := d.listeners[n][eventType]
		if len(fns) == 0 {
			continue
		}
		snapshot := make([]Listener, len(fns))
		copy(snapshot, fns)
		for _, fn := range snapshot {
			fn(Event{Type: eventType, Target: target, CurrentTarget: n})
		}
	}
}

// Click dispatches a click event.
func (d *Document) Click(target *html.Node) {
	d.Dispatch(target, "click")
}

// ListenerCount reports how many listeners are registered on n.
func (d *Document) ListenerCount(n *html.Node) int {
	total := 0
	for _, fns := range d.listeners[n] {
		total += len(fns)
	}
	return total
}
