package table

// EventType names a pointer or touch event.
type EventType string

const (
	EventMouseDown   EventType = "mousedown"
	EventMouseMove   EventType = "mousemove"
	EventMouseUp     EventType = "mouseup"
	EventMouseLeave  EventType = "mouseleave"
	EventTouchStart  EventType = "touchstart"
	EventTouchMove   EventType = "touchmove"
	EventTouchEnd    EventType = "touchend"
	EventTouchCancel EventType = "touchcancel"
)

// IsTouch returns true for the touch event family.
func (t EventType) IsTouch() bool {
	switch t {
	case EventTouchStart, EventTouchMove, EventTouchEnd, EventTouchCancel:
		return true
	}
	return false
}

// Touch is one active touch point.
type Touch struct {
	ClientX, ClientY float64
}

// Event is a raw input event as delivered by a backend.
type Event struct {
	Type             EventType
	ClientX, ClientY float64

	// Touches are the points still on the surface; ChangedTouches are the
	// points that changed in this event (the lifted ones on touchend).
	Touches        []Touch
	ChangedTouches []Touch

	// Cancelable reports whether PreventDefault has any effect.
	Cancelable bool

	// Target is the bounding rectangle of the element the event started on.
	Target Rect

	passive            bool
	defaultPrevented   bool
	propagationStopped bool
}

// PreventDefault suppresses the default action (scrolling, for touch).
// It is ignored inside passive listeners and for non-cancelable events.
func (e *Event) PreventDefault() {
	if e.Cancelable && !e.passive {
		e.defaultPrevented = true
	}
}

// DefaultPrevented reports whether PreventDefault took effect.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation stops delivery to the remaining listeners.
func (e *Event) StopPropagation() {
	e.propagationStopped = true
}

// PropagationStopped reports whether StopPropagation was called.
func (e *Event) PropagationStopped() bool {
	return e.propagationStopped
}

// EventHandler is the type of the onMouseDown/onTouchStart resizer props.
type EventHandler func(*Event)

// Listener wraps a handler so it can be removed by identity.
// Go funcs are not comparable, so the *Listener pointer is the identity.
type Listener struct {
	handle func(*Event)
}

// NewListener wraps fn.
func NewListener(fn func(*Event)) *Listener {
	return &Listener{handle: fn}
}

// ListenerOptions mirrors the DOM addEventListener options.
type ListenerOptions struct {
	// Passive sets passive mode explicitly; nil leaves it to the target.
	// Passive listeners cannot prevent default actions.
	Passive *bool
}

// EventTarget is a document-level event target.
type EventTarget interface {
	AddEventListener(t EventType, l *Listener, opts ListenerOptions)
	RemoveEventListener(t EventType, l *Listener)
}

// PassiveSupporter is implemented by targets that understand the Passive
// listener option.
type PassiveSupporter interface {
	SupportsPassive() bool
}

// nonPassiveOptions returns options that keep listeners on t non-passive.
// The option is only set when t understands it.
func nonPassiveOptions(t EventTarget) ListenerOptions {
	if ps, ok := t.(PassiveSupporter); ok && ps.SupportsPassive() {
		passive := false
		return ListenerOptions{Passive: &passive}
	}
	return ListenerOptions{}
}
