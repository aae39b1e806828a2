package setting

import (
	"errors"
	"fmt"
)

// ErrParse is wrapped by errors reporting a malformed raw value.
var ErrParse = errors.New("malformed value")

// ErrConstraint is wrapped by errors reporting a constraint violation.
var ErrConstraint = errors.New("constraint violated")

// ErrMandatory is wrapped by errors reporting a mandatory setting without a value.
var ErrMandatory = errors.New("missing mandatory setting")

// ErrCyclicInheritance is wrapped by errors reporting settings that inherit from themselves.
var ErrCyclicInheritance = errors.New("cyclic inheritance")

// InvalidSettingError is returned by every failed resolution.
// Err wraps one of ErrParse, ErrConstraint, ErrMandatory or ErrCyclicInheritance,
// possibly through the InvalidSettingError of another setting.
type InvalidSettingError struct {
	Name  string
	Value string
	Err   error
}

func (e *InvalidSettingError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid setting %q: %v", e.Name, e.Err)
	}

	return fmt.Sprintf("bad value %q for setting %q: %v", e.Value, e.Name, e.Err)
}

func (e *InvalidSettingError) Unwrap() error {
	return e.Err
}

// invalid wraps err for the named setting unless err already names it.
func invalid(name, value string, err error) error {
	var settingErr *InvalidSettingError
	if errors.As(err, &settingErr) && settingErr.Name == name {
		return err
	}

	return &InvalidSettingError{Name: name, Value: value, Err: err}
}
