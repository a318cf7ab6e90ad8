package transliterate

import (
	"errors"
	"fmt"
)

// ErrConfig is wrapped by all errors reported by New for an invalid
// configuration.
var ErrConfig = errors.New("invalid transliteration configuration")

// ErrInternal is wrapped by a PassError if a pass panicked.
var ErrInternal = errors.New("internal transliteration error")

// PassError is returned by Transliterate if a pass failed. No partial output
// is returned in this case.
type PassError struct {
	Pass string // name of the failing pass, e.g. "amount_money"
	Err  error
}

func (e *PassError) Error() string {
	return fmt.Sprintf("transliteration pass %s failed: %v", e.Pass, e.Err)
}

func (e *PassError) Unwrap() error {
	return e.Err
}

func configError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}
