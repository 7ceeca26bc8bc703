package simplex

import "fmt"

type Logger interface {
	Print(v ...interface{})
}

type noopLogger struct{}

func (noopLogger) Print(v ...interface{}) {}

// logf is a shorthand for formatted messages to loggers that only know
// about Print.
func logf(logger Logger, format string, v ...interface{}) {
	logger.Print(fmt.Sprintf(format, v...))
}
