package blocks

// HitTester resolves which item occupies a point on screen. ok is false
// when the point lies outside every item.
type HitTester interface {
	HitTest(x, y int) (index int, ok bool)
}

// HitTestFunc adapts a function to the HitTester interface.
type HitTestFunc func(x, y int) (int, bool)

// HitTest calls f(x, y).
func (f HitTestFunc) HitTest(x, y int) (int, bool) { return f(x, y) }

var _ HitTester = HitTestFunc(nil)
