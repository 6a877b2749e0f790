package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across cligen.
const (
	FieldComponent  = "component"
	FieldOperation  = "operation"
	FieldError      = "error"
	FieldDurationMS = "duration_ms"
	FieldCount      = "count"

	// Files and paths
	FieldFile       = "file"
	FieldDescriptor = "descriptor"
	FieldOutput     = "output"
	FieldEntry      = "entry"
	FieldModule     = "module"

	// Rendering
	FieldFunction    = "function"
	FieldPositionals = "positionals"
	FieldOptions     = "options"
	FieldMode        = "mode"
	FieldLinks       = "links"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	r := &render.Renderer{Logger: logger.ComponentLogger("render")}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
// Example:
//
//	fileLogger := logger.ChildLogger(baseLogger, logger.FieldDescriptor, path)
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
