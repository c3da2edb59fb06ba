package executor

import "context"

// Command describes one external process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current one.
	Dir string
	// Stdin is piped to the process when non-nil.
	Stdin []byte
}

// Executor defines the interface for executing external commands
type Executor interface {
	Run(ctx context.Context, cmd Command) ([]byte, error)
}
