package shell

import (
	"fmt"
	"log/slog"
	"strings"
)

// FailurePolicy decides what a failed handler does to the process.
type FailurePolicy int

const (
	// FailAbort logs the failure and exits, as the shell always has.
	FailAbort FailurePolicy = iota
	// FailLog logs the failure and keeps running.
	FailLog
)

func (p FailurePolicy) String() string {
	if p == FailLog {
		return "log"
	}
	return "abort"
}

// ParseFailurePolicy accepts "abort" or "log", case-insensitively.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "abort":
		return FailAbort, nil
	case "log":
		return FailLog, nil
	default:
		return FailAbort, fmt.Errorf("unknown failure policy %q (want abort or log)", s)
	}
}

// NewFailureFunc builds the dispatcher failure hook for a policy. exit is
// called with status 1 under FailAbort.
func NewFailureFunc(policy FailurePolicy, logger *slog.Logger, exit func(code int)) FailureFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ev Event, err error) {
		logger.Error("event handler failed", "event", ev.Kind(), "policy", policy, "error", err)
		if policy == FailAbort {
			exit(1)
		}
	}
}
