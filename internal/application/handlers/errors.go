// Package handlers contains application use case handlers.
package handlers

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// ErrInputMissing is returned when a required input file does not exist.
var ErrInputMissing = errors.New("required input missing")

// checkInputs reports every missing path in one error. Other stat
// failures are returned as they are.
func checkInputs(paths ...string) error {
	var missing []string
	for _, p := range paths {
		_, err := os.Stat(p)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			missing = append(missing, p)
		case err != nil:
			return fmt.Errorf("checking input %s: %w", p, err)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrInputMissing, strings.Join(missing, ", "))
	}
	return nil
}

func progressWriter(out io.Writer) io.Writer {
	if out == nil {
		return io.Discard
	}
	return out
}
