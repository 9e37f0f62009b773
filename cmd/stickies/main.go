package main

import (
	"fmt"
	"os"
)

const usageText = `stickies is a sticky-notes board for the terminal.

Usage:
  stickies [command] [flags]

Commands:
  board    open the interactive board (default)
  add      append a note to the store
  ls       list persisted notes
  rm       remove a note by index
  path     print the resolved store path
  help     show help

Flags:
  -h, --help   show help

Examples:
  stickies
  stickies add "buy milk"
  stickies add -at 10,4 -size 30x10 "standup notes"
  stickies ls
  stickies rm 2
`

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]

	wiring := defaultCommandWiring(os.Stdout, os.Stderr)
	commands := buildCommands(wiring)

	if len(args) == 0 {
		exitOnErr("board", commands["board"].Run(nil), wiring.stderr)
		return
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return
	}

	runner, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
	exitOnErr(args[0], runner.Run(args[1:]), wiring.stderr)
}
