package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdpress/internal/assets"
	"github.com/alnah/go-mdpress/internal/hints"
	"github.com/alnah/go-mdpress/internal/styles"
)

// defaultInitDir is where init writes the starter set without an argument.
const defaultInitDir = "templates"

// runInit writes the embedded starter template set.
func runInit(args []string, env *Environment) error {
	flags, positional, err := parseInitFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected at most one directory, got %d arguments", ErrUsage, len(positional))
	}

	dir := defaultInitDir
	if len(positional) == 1 {
		dir = positional[0]
	}

	written, err := assets.WriteStarter(dir, flags.force)
	if err != nil {
		if errors.Is(err, assets.ErrStarterExists) {
			return fmt.Errorf("%w%s", err, hints.ForStarterExists())
		}
		return err
	}

	for _, path := range written {
		fmt.Fprintf(env.Stdout, "%s %s\n", styles.SuccessStyle.Render("created"), path)
	}
	fmt.Fprintf(env.Stdout, "\nEdit the files, then run: mdpress convert -t %s -i <input> -o <output>\n", dir)
	return nil
}
