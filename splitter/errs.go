package splitter

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateName = errors.New("duplicate unit name")
	ErrUnitLoad      = errors.New("unit load error")
	ErrUnitNotFound  = errors.New("unit not found")
	ErrBadPattern    = errors.New("bad split pattern")
)

// DuplicateNameError reports two elements matched by the same pattern
// sharing a name.
type DuplicateNameError struct {
	Path string
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s: %q under %s", ErrDuplicateName, e.Name, e.Path)
}

func (e *DuplicateNameError) Unwrap() error { return ErrDuplicateName }

// UnitLoadError reports a unit which could not be loaded by Unsplit.
type UnitLoadError struct {
	Path string
	Name string
	Err  error
}

func (e *UnitLoadError) Error() string {
	return fmt.Sprintf("%s: %q under %s: %v", ErrUnitLoad, e.Name, e.Path, e.Err)
}

func (e *UnitLoadError) Unwrap() []error {
	return []error{ErrUnitLoad, e.Err}
}

// LoadErrors returns the unit load failures recorded in an error
// returned by Unsplit.
func LoadErrors(err error) []*UnitLoadError {
	if err == nil {
		return nil
	}
	if ue, ok := err.(*UnitLoadError); ok {
		return []*UnitLoadError{ue}
	}
	var res []*UnitLoadError
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range j.Unwrap() {
			var ue *UnitLoadError
			if errors.As(e, &ue) {
				res = append(res, ue)
			}
		}
		return res
	}
	var ue *UnitLoadError
	if errors.As(err, &ue) {
		res = append(res, ue)
	}
	return res
}
