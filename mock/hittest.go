// Package mock provides test doubles for blocks interfaces using function fields.
package mock

import "github.com/fwojciec/blocks"

// Interface compliance check.
var _ blocks.HitTester = (*HitTester)(nil)

// HitTester is a test double for blocks.HitTester.
// Set HitTestFn before calling HitTest.
type HitTester struct {
	HitTestFn func(x, y int) (int, bool)
}

// HitTest delegates to HitTestFn.
func (h *HitTester) HitTest(x, y int) (int, bool) {
	return h.HitTestFn(x, y)
}
