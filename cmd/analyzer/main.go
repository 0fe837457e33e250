package main

import (
	"fmt"
	"os"
)

func main() {
	if err := execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

func execute(args []string) error {
	if len(args) < 1 {
		printUsage()
		return nil
	}

	switch args[0] {
	case "run":
		return cmdRun(args[1:])
	case "watch":
		return cmdWatch(args[1:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage()
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `analyzer - Turn videos into transcripts, screenshots and study notes

Usage:
  analyzer <command> [options]

Commands:
  run      Read one JSON request from stdin and print the JSON response
  watch    Analyze every new video dropped into the watch directory

Options:
  -config  Path to a YAML config file (optional; env vars and config.env override)`)
}
