//go:build !tinygo && !cgo

package hal

import (
	"context"
	"fmt"
)

// RunWindow is unavailable without cgo; the headless and terminal simulators still work.
func RunWindow(context.Context, *Host, Runner) error {
	return fmt.Errorf("window simulator: %w (rebuild with CGO_ENABLED=1 or use headless/tui)", ErrNotImplemented)
}
