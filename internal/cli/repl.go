package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for REPL-level output.
var printlnFn = fmt.Println

type handler func(ctx context.Context, args []string) error

// command is one REPL command. names[0] is shown in help, the rest are
// aliases.
type command struct {
	names []string
	usage string
	help  string
	run   handler
}

// runREPL reads commands from reader until EOF, "exit" or "quit", or until
// ctx is cancelled. The first token selects the command and the rest are
// passed as arguments. Handler errors are printed and the loop continues.
func runREPL(ctx context.Context, cmds []command, statusFn func() string, reader *bufio.Reader) {
	index := make(map[string]command, len(cmds))
	for _, c := range cmds {
		for _, n := range c.names {
			index[n] = c
		}
	}

	for ctx.Err() == nil {
		printlnFn(fmt.Sprintf("jk %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		last := err != nil

		parts := strings.Fields(line)
		if len(parts) == 0 {
			if last {
				return
			}
			continue
		}

		name, args := strings.ToLower(parts[0]), parts[1:]
		switch name {
		case "help", "?":
			printHelp(cmds)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			c, ok := index[name]
			if !ok {
				printlnFn("Unknown command:", name, "(type 'help' for commands)")
				break
			}
			if err := c.run(ctx, args); err != nil {
				printlnFn("Error:", err)
			}
		}

		if last {
			return
		}
	}
}

func printHelp(cmds []command) {
	printlnFn("Available commands:")
	for _, c := range cmds {
		printlnFn(fmt.Sprintf("  %-28s %s", c.usage, c.help))
	}
	printlnFn(fmt.Sprintf("  %-28s %s", "help", "show this list"))
	printlnFn(fmt.Sprintf("  %-28s %s", "exit | quit", "leave the program"))
}
