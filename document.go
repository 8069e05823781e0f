package table

import "slices"

// Document is an in-memory, document-scoped event target and portal
// mount point. Backends feed raw input into it with Dispatch; drag
// sessions listen on it.
//
// Document is not safe for concurrent use. Call it from the UI goroutine.
type Document struct {
	// PassiveSupported mirrors browsers that understand the passive option.
	// When true, touch listeners added without an explicit Passive option
	// default to passive, as browsers do for document-level touch listeners.
	PassiveSupported bool

	listeners map[EventType][]registeredListener
	mounted   map[string]*PreviewElement
	order     []string // mount order, for rendering
}

type registeredListener struct {
	listener *Listener
	passive  bool
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		listeners: make(map[EventType][]registeredListener),
		mounted:   make(map[string]*PreviewElement),
	}
}

// SupportsPassive implements PassiveSupporter.
func (d *Document) SupportsPassive() bool {
	return d.PassiveSupported
}

// AddEventListener registers l for t. Adding the same listener twice for
// the same type is a no-op, as in the DOM.
func (d *Document) AddEventListener(t EventType, l *Listener, opts ListenerOptions) {
	if l == nil {
		return
	}
	for _, rl := range d.listeners[t] {
		if rl.listener == l {
			return
		}
	}
	passive := false
	if d.PassiveSupported {
		if opts.Passive != nil {
			passive = *opts.Passive
		} else {
			passive = t.IsTouch()
		}
	}
	d.listeners[t] = append(d.listeners[t], registeredListener{listener: l, passive: passive})
}

// RemoveEventListener unregisters l for t. Unknown listeners are ignored.
func (d *Document) RemoveEventListener(t EventType, l *Listener) {
	d.listeners[t] = slices.DeleteFunc(d.listeners[t], func(rl registeredListener) bool {
		return rl.listener == l
	})
	if len(d.listeners[t]) == 0 {
		delete(d.listeners, t)
	}
}

// Dispatch delivers ev to the listeners registered for its type.
// Listeners removed while dispatching still see this event, as in the DOM.
func (d *Document) Dispatch(ev *Event) {
	if ev == nil {
		return
	}
	snapshot := slices.Clone(d.listeners[ev.Type])
	for _, rl := range snapshot {
		ev.passive = rl.passive
		rl.listener.handle(ev)
		if ev.propagationStopped {
			break
		}
	}
	ev.passive = false
}

// ListenerCount returns the number of listeners registered for t.
func (d *Document) ListenerCount(t EventType) int {
	return len(d.listeners[t])
}

// TotalListeners returns the number of listeners across all types.
func (d *Document) TotalListeners() int {
	n := 0
	for _, ls := range d.listeners {
		n += len(ls)
	}
	return n
}

// IsPassive reports whether l is registered as passive for t.
func (d *Document) IsPassive(t EventType, l *Listener) bool {
	for _, rl := range d.listeners[t] {
		if rl.listener == l {
			return rl.passive
		}
	}
	return false
}

// Mount implements Portal. Mounting an element with an existing ID
// replaces it in place.
func (d *Document) Mount(el *PreviewElement) {
	if el == nil {
		return
	}
	if _, ok := d.mounted[el.ID]; !ok {
		d.order = append(d.order, el.ID)
	}
	d.mounted[el.ID] = el
}

// Unmount implements Portal.
func (d *Document) Unmount(id string) {
	if _, ok := d.mounted[id]; !ok {
		return
	}
	delete(d.mounted, id)
	d.order = slices.DeleteFunc(d.order, func(s string) bool { return s == id })
}

// Element returns the mounted element with id, or nil.
func (d *Document) Element(id string) *PreviewElement {
	return d.mounted[id]
}

// Elements returns mounted elements in mount order.
func (d *Document) Elements() []*PreviewElement {
	out := make([]*PreviewElement, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.mounted[id])
	}
	return out
}
