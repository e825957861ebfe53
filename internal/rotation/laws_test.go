package rotation

import "testing"

// composable is the slice of the Rotation contract the algebraic laws need;
// keeping it narrow lets one helper serve both dimensions.
type composable[R any, S any] interface {
	Concat(R) R
	Invert() R
	ApproxEq(R, S) bool
}

// checkLaws verifies that id is a two-sided identity and that Invert is a
// two-sided inverse, for every rotation in rs.
func checkLaws[R composable[R, S], S any](t *testing.T, id R, rs []R, eps S) {
	t.Helper()
	for i, r := range rs {
		if !r.Concat(id).ApproxEq(r, eps) {
			t.Errorf("case %d: r·1 != r", i)
		}
		if !id.Concat(r).ApproxEq(r, eps) {
			t.Errorf("case %d: 1·r != r", i)
		}
		if !r.Concat(r.Invert()).ApproxEq(id, eps) {
			t.Errorf("case %d: r·r⁻¹ != 1", i)
		}
		if !r.Invert().Concat(r).ApproxEq(id, eps) {
			t.Errorf("case %d: r⁻¹·r != 1", i)
		}
	}
}
