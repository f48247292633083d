// Package diag routes non-fatal engine warnings to the caller.
//
// The algebra engine is side-effect-free: it never logs, and it never
// fails on conditions that do not change a computed result. Conditions
// worth surfacing (reordered duplicate supports during simplification,
// sums of unequal length compared for equality) are reported through a
// Collector supplied by the caller. Tests use List to assert on emitted
// warnings; the CLI uses Slog to forward them to stderr.
package diag

import (
	"fmt"
	"log/slog"
)

// Code identifies a warning category.
type Code string

const (
	// CodeReorderedOps indicates two terms with the same support set but
	// different operation orderings were merged during simplification.
	CodeReorderedOps Code = "REORDERED_OPS"

	// CodeUnequalLength indicates two sums with different term counts
	// were compared for equality.
	CodeUnequalLength Code = "UNEQUAL_LENGTH"
)

// Warning is a non-fatal diagnostic emitted by the engine.
type Warning struct {
	Code    Code
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// Collector receives warnings. Implementations must not assume calls
// happen from a single goroutine unless the caller guarantees it.
type Collector interface {
	Warn(w Warning)
}

// Warnf formats and reports a warning. A nil collector discards it.
func Warnf(c Collector, code Code, format string, args ...any) {
	if c == nil {
		return
	}
	c.Warn(Warning{Code: code, Message: fmt.Sprintf(format, args...)})
}

// List accumulates warnings in order. Not safe for concurrent use.
type List struct {
	Warnings []Warning
}

// Warn implements Collector.
func (l *List) Warn(w Warning) {
	l.Warnings = append(l.Warnings, w)
}

// Codes returns the codes of the collected warnings in emission order.
func (l *List) Codes() []Code {
	codes := make([]Code, len(l.Warnings))
	for i, w := range l.Warnings {
		codes[i] = w.Code
	}
	return codes
}

// Discard is a Collector that drops all warnings.
var Discard Collector = discard{}

type discard struct{}

func (discard) Warn(Warning) {}

// Slog adapts a *slog.Logger into a Collector. Warnings are logged at
// WARN level with the code as a structured attribute.
func Slog(logger *slog.Logger) Collector {
	return slogCollector{logger: logger}
}

type slogCollector struct {
	logger *slog.Logger
}

func (c slogCollector) Warn(w Warning) {
	c.logger.Warn(w.Message, slog.String("code", string(w.Code)))
}
