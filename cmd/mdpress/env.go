package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-mdpress/internal/state"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time and the location of persisted state.
type Environment struct {
	Now       func() time.Time
	Stdout    io.Writer
	Stderr    io.Writer
	StatePath func() string
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:       time.Now,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		StatePath: state.DefaultPath,
	}
}
