package debug

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Output logs a debug message if debugging is enabled
func Output(logger *zap.Logger, enabled bool, format string, args ...interface{}) {
	if enabled && logger != nil {
		logger.Debug(fmt.Sprintf(format, args...))
	}
}

// Timing measures and logs execution time if debugging is enabled.
// Call the returned func when the operation completes.
func Timing(logger *zap.Logger, enabled bool, operation string) func() {
	if !enabled || logger == nil {
		return func() {}
	}

	start := time.Now()
	logger.Debug("starting", zap.String("operation", operation))

	return func() {
		logger.Debug("completed",
			zap.String("operation", operation),
			zap.Duration("took", time.Since(start)))
	}
}
