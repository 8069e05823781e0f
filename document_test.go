package table

import "testing"

func TestDocument_AddRemove(t *testing.T) {
	doc := NewDocument()
	calls := 0
	l := NewListener(func(*Event) { calls++ })

	doc.AddEventListener(EventMouseMove, l, ListenerOptions{})
	doc.AddEventListener(EventMouseMove, l, ListenerOptions{})
	if n := doc.ListenerCount(EventMouseMove); n != 1 {
		t.Fatalf("Expected duplicate add to be a no-op, got %d listeners", n)
	}

	doc.Dispatch(&Event{Type: EventMouseMove})
	doc.Dispatch(&Event{Type: EventMouseUp})
	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}

	doc.RemoveEventListener(EventMouseMove, l)
	doc.RemoveEventListener(EventMouseMove, l)
	if doc.TotalListeners() != 0 {
		t.Errorf("Expected no listeners, got %d", doc.TotalListeners())
	}
}

func TestDocument_StopPropagation(t *testing.T) {
	doc := NewDocument()
	var order []string
	first := NewListener(func(ev *Event) {
		order = append(order, "first")
		ev.StopPropagation()
	})
	second := NewListener(func(*Event) { order = append(order, "second") })

	doc.AddEventListener(EventTouchMove, first, ListenerOptions{})
	doc.AddEventListener(EventTouchMove, second, ListenerOptions{})
	doc.Dispatch(&Event{Type: EventTouchMove})

	if len(order) != 1 || order[0] != "first" {
		t.Errorf("Expected only first listener, got %v", order)
	}
}

func TestDocument_RemoveDuringDispatch(t *testing.T) {
	doc := NewDocument()
	calls := 0
	var second *Listener
	first := NewListener(func(*Event) { doc.RemoveEventListener(EventMouseUp, second) })
	second = NewListener(func(*Event) { calls++ })

	doc.AddEventListener(EventMouseUp, first, ListenerOptions{})
	doc.AddEventListener(EventMouseUp, second, ListenerOptions{})
	doc.Dispatch(&Event{Type: EventMouseUp})

	if calls != 1 {
		t.Errorf("Expected removed listener to still see the current event, got %d calls", calls)
	}
	doc.Dispatch(&Event{Type: EventMouseUp})
	if calls != 1 {
		t.Errorf("Expected removed listener to miss later events, got %d calls", calls)
	}
}

func TestDocument_Passive(t *testing.T) {
	doc := NewDocument()
	doc.PassiveSupported = true

	prevented := false
	l := NewListener(func(ev *Event) {
		ev.PreventDefault()
		prevented = ev.DefaultPrevented()
	})

	doc.AddEventListener(EventTouchMove, l, ListenerOptions{})
	if !doc.IsPassive(EventTouchMove, l) {
		t.Fatal("Expected touch listener to default to passive")
	}
	doc.Dispatch(&Event{Type: EventTouchMove, Cancelable: true})
	if prevented {
		t.Error("Expected PreventDefault to be ignored in a passive listener")
	}

	doc.RemoveEventListener(EventTouchMove, l)
	doc.AddEventListener(EventTouchMove, l, nonPassiveOptions(doc))
	if doc.IsPassive(EventTouchMove, l) {
		t.Fatal("Expected explicit non-passive listener")
	}
	doc.Dispatch(&Event{Type: EventTouchMove, Cancelable: true})
	if !prevented {
		t.Error("Expected PreventDefault to take effect")
	}
}

func TestNonPassiveOptions_Unsupported(t *testing.T) {
	doc := NewDocument()
	if opts := nonPassiveOptions(doc); opts.Passive != nil {
		t.Error("Expected no passive option when the target does not support it")
	}
	if opts := nonPassiveOptions(stubTarget{}); opts.Passive != nil {
		t.Error("Expected no passive option for a plain target")
	}
}

type stubTarget struct{}

func (stubTarget) AddEventListener(EventType, *Listener, ListenerOptions) {}
func (stubTarget) RemoveEventListener(EventType, *Listener) {}

func TestDocument_Portal(t *testing.T) {
	doc := NewDocument()
	a := newPreviewElement("a", nil)
	b := newPreviewElement("b", nil)

	doc.Mount(a)
	doc.Mount(b)
	doc.Mount(a)
	if els := doc.Elements(); len(els) != 2 || els[0] != a || els[1] != b {
		t.Fatalf("Expected a then b mounted once, got %v", els)
	}
	if doc.Element("a_resizer_preview") != a {
		t.Error("Expected lookup by preview id")
	}

	doc.Unmount(a.ID)
	if doc.Element(a.ID) != nil || len(doc.Elements()) != 1 {
		t.Error("Expected a unmounted")
	}
}

func TestPreviewElement_Props(t *testing.T) {
	el := newPreviewElement("name", nil)

	p := el.Props()
	if p["id"] != "name_resizer_preview" || p.Style()["display"] != "none" {
		t.Errorf("Expected hidden preview, got %v", p)
	}
	if _, ok := p.Style()["left"]; ok {
		t.Error("Expected no position while hidden")
	}

	el.Show(8, 100)
	el.MoveTo(130)
	s := el.Props().Style()
	if s["display"] != "block" || s["top"] != "8px" || s["left"] != "130px" {
		t.Errorf("Expected visible at 8/130, got %v", s)
	}
	if el.Style["display"] != "none" {
		t.Error("Expected Props not to modify the base style")
	}

	el.Hide()
	if el.Visible() {
		t.Error("Expected hidden after Hide")
	}
}
