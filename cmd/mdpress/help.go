package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdpress <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert a directory of markdown files to templated HTML")
	fmt.Fprintln(w, "  init       Write a starter template set")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdpress help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdpress convert [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert every .md/.markdown file in a directory to HTML wrapped in")
	fmt.Fprintln(w, "top.html and bottom.html. Level-2 headings use the h2.html wrapper.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Input directory (same as --input)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -i, --input <dir>          Input directory of markdown files")
	fmt.Fprintln(w, "  -o, --output <dir>         Output directory (created if missing)")
	fmt.Fprintln(w, "      --ext <.ext>           Output file extension (default: .txt)")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w, "      --env-file <path>      Load MDPRESS_* variables (default: .env)")
	fmt.Fprintln(w, "  -w, --workers <n>          Parallel workers (default: 1, 0 = auto)")
	fmt.Fprintln(w, "      --no-state             Do not remember directories between runs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Templates:")
	fmt.Fprintln(w, "  -t, --templates <dir>      Template directory")
	fmt.Fprintln(w, "      --search-subdirs       Use the first complete subdirectory")
	fmt.Fprintln(w, "      --bold-color <color>   Override boldcolor.txt")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --highlight-style <s>  Code highlight style (default: github)")
	fmt.Fprintln(w, "      --image-base-url <u>   Resolve relative image sources against URL")
	fmt.Fprintln(w, "      --hard-wraps           Newlines in paragraphs become line breaks")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
	fmt.Fprintln(w, "  -v, --verbose              Show debug logs and timing")
	fmt.Fprintln(w, "      --log-level <level>    debug, info, warn, error (default: warn)")
	fmt.Fprintln(w, "      --log-file <path>      Also append logs to a file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Precedence: flags > MDPRESS_* environment > config file > last run > defaults.")
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdpress init [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write top.html, bottom.html, h2.html and boldcolor.txt into dir")
	fmt.Fprintln(w, "(default: templates).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --force    Overwrite existing files")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdpress version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdpress help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
