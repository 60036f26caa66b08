// Package logging builds the zerolog loggers used across holocron.
//
// Loggers are configured from Config (level, format, output and file),
// carry a per-invocation trace ID, and travel through context.Context so
// that library code can log with zerolog.Ctx or FromContext without
// depending on global state.
package logging
