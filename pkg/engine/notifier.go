package engine

// Notifier receives user-facing diagnostics from engine runs. The CLI
// implements it with styled terminal output; tests capture the lines.
// Diagnostics are advisory: emitting one never aborts the batch.
type Notifier interface {
	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// NopNotifier discards all diagnostics.
type NopNotifier struct{}

func (NopNotifier) Info(string, ...any)    {}
func (NopNotifier) Success(string, ...any) {}
func (NopNotifier) Warn(string, ...any)    {}
func (NopNotifier) Error(string, ...any)   {}
