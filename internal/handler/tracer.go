package handler

import (
	"log/slog"
)

// slogTracer surfaces parser checkpoints on the application logger at
// debug level.
type slogTracer struct{}

func newSlogTracer() slogTracer {
	return slogTracer{}
}

func (slogTracer) LocationFound(name, code string) {
	slog.Debug("parser found location", "location", name, "code", code)
}

func (slogTracer) SectionFound(role string) {
	slog.Debug("parser entered section", "role", role)
}

func (slogTracer) EmployeeAdded(name, role string, shiftCount int) {
	slog.Debug("parser added employee", "name", name, "role", role, "shifts", shiftCount)
}
