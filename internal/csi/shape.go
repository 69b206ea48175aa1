package csi

import "github.com/alexiusacademia/csiapi/internal/apierr"

// DOF is a six degree of freedom mask in U1, U2, U3, R1, R2, R3 order.
type DOF [6]bool

// Fixed and Pinned are common joint restraints.
var (
	Fixed  = DOF{true, true, true, true, true, true}
	Pinned = DOF{true, true, true, false, false, false}
)

func dofFrom(op string, v []bool) (DOF, error) {
	var d DOF
	if len(v) != len(d) {
		return d, apierr.Malformed(op, "expected 6 degrees of freedom, got %d", len(v))
	}
	copy(d[:], v)
	return d, nil
}

// sameLen verifies that every host array holds exactly n entries.
func sameLen(op string, n int, lens ...int) error {
	if n < 0 {
		return apierr.Malformed(op, "negative count %d", n)
	}
	for i, l := range lens {
		if l != n {
			return apierr.Malformed(op, "array %d has %d entries, count is %d", i, l, n)
		}
	}
	return nil
}

// nameList checks and returns the result of a GetNameList call.
func (m *Model) nameList(op string, n int, names []string, ret int) ([]string, error) {
	if err := m.check(op, "", ret); err != nil {
		return nil, err
	}
	if err := sameLen(op, n, len(names)); err != nil {
		return nil, err
	}
	return names, nil
}
