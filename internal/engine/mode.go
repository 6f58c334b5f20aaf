package engine

import "fmt"

// Mode selects how a run request's target workspaces execute.
type Mode string

const (
	// ModeSequential runs targets one at a time in target-set order.
	ModeSequential Mode = "sequential"

	// ModeParallel launches every target at once and awaits all of them.
	ModeParallel Mode = "parallel"
)

// ParseMode converts a string to a Mode. An empty string is sequential.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", string(ModeSequential):
		return ModeSequential, nil
	case string(ModeParallel):
		return ModeParallel, nil
	default:
		return "", fmt.Errorf("unknown mode: %q (must be sequential or parallel)", s)
	}
}
