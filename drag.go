package blocks

import (
	"fmt"
	"strings"
)

// Point is a pointer position in host coordinates.
type Point struct {
	X, Y int
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// DragMode selects how a pointer position is resolved to a target index.
type DragMode int

const (
	// ProbeMode asks the HitTester which item lies under the pointer on
	// every move.
	ProbeMode DragMode = iota
	// HoverMode uses the index last reported through Hover.
	HoverMode
)

// String returns the mode name accepted by ParseDragMode.
func (m DragMode) String() string {
	switch m {
	case ProbeMode:
		return "probe"
	case HoverMode:
		return "hover"
	default:
		return fmt.Sprintf("DragMode(%d)", int(m))
	}
}

// ParseDragMode parses "probe" or "hover".
func ParseDragMode(s string) (DragMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "probe", "":
		return ProbeMode, nil
	case "hover":
		return HoverMode, nil
	default:
		return 0, fmt.Errorf("%q: must be \"probe\" or \"hover\": %w", s, ErrInvalidMode)
	}
}

// DragSession is the transient state of an in-progress drag gesture.
type DragSession struct {
	// DraggedIndex is the dragged item's position when the gesture started.
	DraggedIndex int
	// CurrentIndex is the dragged item's position after the latest splice.
	CurrentIndex int
	Origin       Point
	Pointer      Point
}

// Offset returns how far the pointer has travelled since the gesture
// started. It only drives presentation and never affects order.
func (s DragSession) Offset() Point {
	return s.Pointer.Sub(s.Origin)
}

// DragReorder turns a pointer trajectory into splices on an ordered
// collection. The zero value is an idle reorderer in ProbeMode with no
// HitTester, which never finds a target.
//
// State machine: Idle -> Dragging on Start, Dragging -> Idle on End or
// Cancel. A Start while Dragging is ignored.
//
// A DragReorder is a plain value: copies never share gesture state.
type DragReorder struct {
	mode    DragMode
	hit     HitTester
	session DragSession
	active  bool
	hover   int // hovered index + 1; 0 when the pointer is over no item
}

// NewDragReorder creates an idle DragReorder. hit is consulted only in
// ProbeMode and may be nil otherwise.
func NewDragReorder(mode DragMode, hit HitTester) DragReorder {
	return DragReorder{mode: mode, hit: hit}
}

// Mode returns the addressing mode.
func (r *DragReorder) Mode() DragMode { return r.mode }

// Dragging reports whether a gesture is active.
func (r *DragReorder) Dragging() bool { return r.active }

// Session returns a copy of the active session.
func (r *DragReorder) Session() (DragSession, bool) {
	if !r.active {
		return DragSession{}, false
	}
	return r.session, true
}

// Hovered returns the index last reported through Hover, or -1.
func (r *DragReorder) Hovered() int { return r.hover - 1 }

// Start begins dragging the item at index of a collection of length n with
// the pointer at p. It reports false, changing nothing, when a gesture is
// already active or index is out of range.
func (r *DragReorder) Start(index, n int, p Point) bool {
	if r.active || index < 0 || index >= n {
		return false
	}
	r.active = true
	r.session = DragSession{
		DraggedIndex: index,
		CurrentIndex: index,
		Origin:       p,
		Pointer:      p,
	}
	return true
}

// Hover records that the pointer entered the item at index. A negative
// index means the pointer is over no item.
func (r *DragReorder) Hover(index int) {
	r.hover = max(index, -1) + 1
}

// Move records a pointer move to p over a collection of length n. It
// returns the splice that brings the dragged item to the target under the
// pointer, and false when there is nothing to splice: no active gesture, no
// valid target, or the target is already the item's current index.
func (r *DragReorder) Move(p Point, n int) (Splice, bool) {
	if !r.active {
		return Splice{}, false
	}
	r.session.Pointer = p
	target, ok := r.target(p)
	if !ok || target >= n || target == r.session.CurrentIndex {
		return Splice{}, false
	}
	sp := Splice{From: r.session.CurrentIndex, To: target}
	if !sp.Valid(n) {
		return Splice{}, false
	}
	r.session.CurrentIndex = target
	return sp, true
}

// End finishes the gesture wherever the pointer is released and discards
// the session. Hover tracking outlives gestures and is left as is.
func (r *DragReorder) End() {
	r.session = DragSession{}
	r.active = false
}

// Cancel abandons the gesture. Splices already applied stay applied.
func (r *DragReorder) Cancel() {
	r.End()
}

func (r *DragReorder) target(p Point) (int, bool) {
	switch r.mode {
	case HoverMode:
		return r.hover - 1, r.hover > 0
	default:
		if r.hit == nil {
			return 0, false
		}
		i, ok := r.hit.HitTest(p.X, p.Y)
		return i, ok && i >= 0
	}
}
