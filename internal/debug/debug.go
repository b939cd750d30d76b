// Package debug provides conditional decision tracing for the matching
// engine.
package debug

import (
	"fmt"
	"log"
	"time"
)

// Output logs a trace line if tracing is enabled.
func Output(enabled bool, format string, args ...any) {
	if enabled {
		message := fmt.Sprintf(format, args...)
		log.Printf("[dedupe] %s", message)
	}
}

// Timing measures and logs the duration of an operation if tracing is
// enabled. Call the returned function when the operation completes.
func Timing(enabled bool, operation string) func() {
	if !enabled {
		return func() {}
	}

	start := time.Now()
	Output(enabled, "starting: %s", operation)

	return func() {
		Output(enabled, "completed: %s (took %v)", operation, time.Since(start))
	}
}
