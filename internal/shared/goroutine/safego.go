// Package goroutine launches background goroutines with panic recovery. The
// post-commit consumers (notification fan-out, redis relay) run off the
// request path, so a panic in one of them is logged instead of taking the
// process down with it.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"traindesk/internal/shared/logger"
)

// SafeGo runs fn on its own goroutine. A panic is recovered and logged under
// the given name together with the stack trace; the caller is never unwound.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("background goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
