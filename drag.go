package table

import (
	"log/slog"
	"math"

	"github.com/google/uuid"
)

// Modality is the input family driving a drag.
type Modality int

const (
	ModalityMouse Modality = iota
	ModalityTouch
)

func (m Modality) String() string {
	if m == ModalityTouch {
		return "touch"
	}
	return "mouse"
}

// dragEvents maps each modality to its move, end and leave/cancel events.
var dragEvents = map[Modality][3]EventType{
	ModalityMouse: {EventMouseMove, EventMouseUp, EventMouseLeave},
	ModalityTouch: {EventTouchMove, EventTouchEnd, EventTouchCancel},
}

// DragSession tracks a single resize drag from pointer down to release.
// It owns exactly three document listeners and removes them when it ends.
type DragSession struct {
	ID       string
	Modality Modality
	HeaderID string

	inst    *Instance
	target  EventTarget
	preview *PreviewElement
	logger  *slog.Logger

	events    [3]EventType
	listeners [3]*Listener

	startX float64
	lastX  float64
	active bool
}

// Active returns true until the session has ended or been cancelled.
func (s *DragSession) Active() bool {
	return s.active
}

// StartX returns the pointer X the drag started at.
func (s *DragSession) StartX() float64 {
	return s.startX
}

// StartDrag begins resizing header in response to ev, a mousedown or
// touchstart on its resizer. It returns nil, without side effects, for
// multi-touch gestures and touch events with no touch points.
//
// Any session still active on inst is cancelled first.
func StartDrag(ev *Event, header *Header, inst *Instance) *DragSession {
	if ev == nil || header == nil || inst == nil {
		return nil
	}

	modality := ModalityMouse
	clientX := ev.ClientX
	if ev.Type.IsTouch() {
		if len(ev.Touches) != 1 {
			return nil
		}
		modality = ModalityTouch
		clientX = math.Round(ev.Touches[0].ClientX)
	}

	if inst.drag != nil && inst.drag.active {
		inst.drag.Cancel()
	}

	var snapshot []HeaderIDWidth
	for _, h := range header.subtree() {
		snapshot = append(snapshot, HeaderIDWidth{ID: h.ID, Width: h.TotalWidth})
	}

	s := &DragSession{
		ID:       uuid.NewString(),
		Modality: modality,
		HeaderID: header.ID,
		inst:     inst,
		target:   inst.document,
		preview:  inst.previewElement(header.ID),
		logger:   inst.logger,
		events:   dragEvents[modality],
		startX:   clientX,
		lastX:    clientX,
		active:   true,
	}
	s.listeners = [3]*Listener{
		NewListener(s.onMove),
		NewListener(s.onEnd),
		NewListener(s.onEnd),
	}

	s.preview.Show(ev.Target.Y, clientX)

	opts := nonPassiveOptions(s.target)
	for i, t := range s.events {
		s.target.AddEventListener(t, s.listeners[i], opts)
	}
	inst.drag = s

	s.logger.Debug("drag started",
		slog.String("session_id", s.ID),
		slog.String("column_id", s.HeaderID),
		slog.String("modality", modality.String()),
		slog.Float64("client_x", clientX),
	)

	inst.Dispatch(Action{
		Type:           ActionColumnStartResizing,
		ColumnID:       header.ID,
		ColumnWidth:    header.TotalWidth,
		HeaderIDWidths: snapshot,
		ClientX:        clientX,
	})
	return s
}

func (s *DragSession) onMove(ev *Event) {
	if !s.active {
		return
	}
	clientX := ev.ClientX
	if s.Modality == ModalityTouch {
		if ev.Cancelable {
			ev.PreventDefault()
			ev.StopPropagation()
		}
		if len(ev.Touches) == 0 {
			return
		}
		clientX = ev.Touches[0].ClientX
	}
	s.lastX = clientX
	s.preview.MoveTo(clientX)
	s.inst.Dispatch(Action{Type: ActionColumnResizing, ClientX: clientX})
}

func (s *DragSession) onEnd(ev *Event) {
	if !s.active {
		return
	}
	clientX := ev.ClientX
	if s.Modality == ModalityTouch {
		switch {
		case len(ev.Touches) > 0:
			clientX = ev.Touches[0].ClientX
		case len(ev.ChangedTouches) > 0:
			clientX = ev.ChangedTouches[0].ClientX
		default:
			clientX = s.lastX
		}
	}
	s.preview.Hide()
	s.end()

	s.logger.Debug("drag ended",
		slog.String("session_id", s.ID),
		slog.String("column_id", s.HeaderID),
		slog.String("trigger", string(ev.Type)),
		slog.Float64("client_x", clientX),
	)
	s.inst.Dispatch(Action{Type: ActionColumnEndResizing, ClientX: clientX})
}

// Cancel aborts the drag without applying the final pointer position.
// Widths from earlier moves stay. Safe to call more than once.
func (s *DragSession) Cancel() {
	if !s.active {
		return
	}
	s.preview.Hide()
	s.end()
	s.logger.Debug("drag cancelled",
		slog.String("session_id", s.ID),
		slog.String("column_id", s.HeaderID),
	)
	s.inst.Dispatch(Action{Type: ActionColumnDoneResizing})
}

// release ends the session after the reducer left the resizing state
// on its own, through a reset or an outside DoneResizing dispatch. No
// further action is dispatched.
func (s *DragSession) release(action Action) {
	if !s.active {
		return
	}
	s.preview.Hide()
	s.end()
	s.logger.Debug("drag released",
		slog.String("session_id", s.ID),
		slog.String("column_id", s.HeaderID),
		slog.String("action", action.String()),
	)
}

// end removes the listeners this session added. It runs at most once.
func (s *DragSession) end() {
	if !s.active {
		return
	}
	s.active = false
	for i, t := range s.events {
		s.target.RemoveEventListener(t, s.listeners[i])
	}
	if s.inst.drag == s {
		s.inst.drag = nil
	}
}
