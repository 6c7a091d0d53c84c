package core

// Logger receives progress and diagnostic messages from the renderer and loaders
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards everything; handy in tests and library use
type NopLogger struct{}

// Printf implements Logger
func (NopLogger) Printf(string, ...interface{}) {}
