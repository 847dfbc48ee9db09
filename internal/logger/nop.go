// Package logger provides the default no-op logger used when callers do not
// supply their own.
package logger

import "github.com/Sloozu/SchoolManagerCase/types"

// NopLogger discards everything. It is the default for every component so
// that nothing in the library logs unless the caller opts in.
type NopLogger struct{}

var _ types.Logger = (*NopLogger)(nil)

// NewNop returns a logger that discards all messages.
func NewNop() *NopLogger {
	return &NopLogger{}
}

func (n *NopLogger) Debug(string, ...any) {}

func (n *NopLogger) Info(string, ...any) {}

func (n *NopLogger) Warn(string, ...any) {}

func (n *NopLogger) Error(string, ...any) {}

// Fatal discards the message without exiting; terminating the process is a
// caller decision, not a default.
func (n *NopLogger) Fatal(string, ...any) {}
