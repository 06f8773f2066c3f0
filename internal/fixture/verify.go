package fixture

import (
	"errors"
	"fmt"
)

// maxViolations caps how many row-level problems Verify reports.
const maxViolations = 10

// Verify checks rows against the fixture invariants: exactly want rows,
// indices 0..want-1 in order, Y of 0, a Type of 0 or 1, and X within
// [-1, 1] at no more than two decimals. All violations found are joined
// into the returned error.
func Verify(rows []Row, want int) error {
	var errs []error
	if len(rows) != want {
		errs = append(errs, fmt.Errorf("got %d rows, want %d", len(rows), want))
	}

	skipped := 0
	report := func(err error) {
		if len(errs) < maxViolations {
			errs = append(errs, err)
			return
		}
		skipped++
	}

	for i, r := range rows {
		if r.Index != i {
			report(fmt.Errorf("row %d: index %d", i, r.Index))
		}
		if r.Y != 0 {
			report(fmt.Errorf("row %d: y %v, want 0", i, r.Y))
		}
		if r.Type != 0 && r.Type != 1 {
			report(fmt.Errorf("row %d: type %d, want 0 or 1", i, r.Type))
		}
		if r.X < -1 || r.X > 1 {
			report(fmt.Errorf("row %d: x %v out of [-1, 1]", i, r.X))
		}
		if Round(r.X, 2) != r.X {
			report(fmt.Errorf("row %d: x %v has more than 2 decimals", i, r.X))
		}
	}
	if skipped > 0 {
		errs = append(errs, fmt.Errorf("%d more violations", skipped))
	}
	return errors.Join(errs...)
}
