package cli

import (
	"errors"
	"fmt"
)

// ErrUsage marks errors caused by missing or conflicting flags.
var ErrUsage = errors.New("usage error")

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}
