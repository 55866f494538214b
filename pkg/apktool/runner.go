package apktool

import (
	"context"
	"io"
)

// RunOptions controls how a single apktool process is executed.
type RunOptions struct {
	// Capture collects stdout (and stderr) as text instead of streaming it.
	Capture bool
	// AllowFailure returns the raw result instead of a ProcessFailure error on a nonzero exit.
	AllowFailure bool
	// Dir is the working directory. Empty means the current one.
	Dir string
	// Env is appended to the inherited environment.
	Env []string
	// Stdout and Stderr receive streamed output. Nil means the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Runner executes an external command with an argument vector.
//
//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE
type Runner interface {
	Run(ctx context.Context, name string, args []string, opts RunOptions) (*Result, error)
}
