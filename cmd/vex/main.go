// Package main provides the CLI tool for the .vex template compiler.
//
// Usage:
//
//	vex generate [path...]    Generate Go code from .vex files
//	vex check [path...]       Check .vex files without generating
//	vex fmt [path...]         Format .vex files
//	vex help                  Show help
//
// Examples:
//
//	vex generate ./...        Recursively find and compile all .vex files
//	vex generate ./views      Process a specific directory
//	vex generate header.vex   Process a specific file
//	vex check header.vex      Check syntax without generating
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `vex - template compiler for vex view trees

Usage:
  vex <command> [options] [path...]

Commands:
  generate    Generate Go code from .vex files
  check       Check .vex files without generating code
  fmt         Format .vex files
  version     Print version information
  help        Show this help message

Options:
  -v          Verbose output

Examples:
  vex generate ./...              Recursively process all .vex files
  vex generate ./views            Process files in a directory
  vex generate header.vex         Process a specific file
  vex generate -v ./...           Verbose output during generation
  vex check header.vex            Check syntax without generating
  vex fmt ./...                   Format all .vex files recursively
  vex fmt --check ./...           Check formatting without modifying
  vex fmt --stdout file.vex       Print formatted output to stdout

Configuration is read from vex.yaml in each processed directory, when
present: generated package name, output suffix, and handler prefix.

For more information, see https://github.com/vexlang/vex
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate":
		if err := runGenerate(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if err := runCheck(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "fmt":
		if err := runFmt(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("vex version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
