// Package repl is an interactive synthesis console over one loaded
// architecture: each line is a command (set/copy/graph/help/quit)
// dispatched against a running program.Program, using a plain
// bufio.Scanner-driven read-eval-print loop.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"lime/internal/arch"
	"lime/internal/copygraph"
	"lime/internal/program"
	"lime/internal/synth"
)

const prompt = "lime> "

// Run starts the console for a, reading commands from in and writing
// output and prompts to out, until in is exhausted or "quit"/"exit" is
// entered.
func Run(a *arch.Architecture, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	p := program.New(a, nil)

	fmt.Fprintf(out, "lime synthesis console — architecture %q (%d cell type(s), %d operation(s))\n", a.Name, len(a.CellTypes), len(a.Operations))
	fmt.Fprintln(out, `type "help" for commands, "quit" to exit`)

	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "quit", "exit":
			return nil
		case "help":
			printHelp(out)
		case "set":
			runSet(p, fields[1:], out)
		case "copy":
			runCopy(p, fields[1:], out)
		case "graph":
			runGraph(a, out)
		case "program":
			printProgram(p, out)
		default:
			fmt.Fprintf(out, "unrecognized command %q; type \"help\" for a list\n", fields[0])
		}
	}
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "commands:")
	fmt.Fprintln(out, "  set <type> <index> <true|false>             synthesize and append a set")
	fmt.Fprintln(out, "  copy <fromType> <fromIdx> <toType> <toIdx> [!]   synthesize and append a copy")
	fmt.Fprintln(out, "  graph                                       build and summarize the copy graph")
	fmt.Fprintln(out, "  program                                     print emitted instructions and cost")
	fmt.Fprintln(out, "  quit | exit                                 leave the console")
}

func runSet(p *program.Program, args []string, out io.Writer) {
	if len(args) != 3 {
		fmt.Fprintln(out, "usage: set <type> <index> <true|false>")
		return
	}
	cell, err := resolveCell(p.Arch, args[0], args[1])
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	value, err := strconv.ParseBool(args[2])
	if err != nil {
		fmt.Fprintf(out, "invalid value %q\n", args[2])
		return
	}

	versions := program.NewVersions(p)
	synth.SetVersions(versions, cell, value)
	ops := versions.Finish()
	if len(ops) == 0 {
		fmt.Fprintf(out, "no way to set %s to %v\n", cell, value)
		return
	}
	for _, op := range ops {
		fmt.Fprintln(out, op.String())
	}
}

func runCopy(p *program.Program, args []string, out io.Writer) {
	if len(args) < 4 {
		fmt.Fprintln(out, "usage: copy <fromType> <fromIdx> <toType> <toIdx> [!]")
		return
	}
	from, err := resolveCell(p.Arch, args[0], args[1])
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	to, err := resolveCell(p.Arch, args[2], args[3])
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	inverted := len(args) > 4 && args[4] == "!"

	versions := program.NewVersions(p)
	synth.Copy(versions, from, arch.Operand{Cell: to, Inverted: inverted})
	ops := versions.Finish()
	if len(ops) == 0 {
		fmt.Fprintf(out, "no way to copy %s into %s\n", from, to)
		return
	}
	for _, op := range ops {
		fmt.Fprintln(out, op.String())
	}
}

func runGraph(a *arch.Architecture, out io.Writer) {
	copygraph.Build(a, nil)
	fmt.Fprintf(out, "built copy graph for %s\n", a.Name)
}

func printProgram(p *program.Program, out io.Writer) {
	for _, op := range p.Instructions {
		fmt.Fprintln(out, op.String())
	}
	fmt.Fprintf(out, "total cost: %v\n", p.TotalCost())
}

func resolveCell(a *arch.Architecture, typeName, indexStr string) (arch.Cell, error) {
	index, err := strconv.Atoi(indexStr)
	if err != nil {
		return arch.Cell{}, fmt.Errorf("invalid index %q", indexStr)
	}
	if typeName == arch.ConstantType.Name {
		return arch.NewCell(arch.ConstantType, index), nil
	}
	for _, t := range a.CellTypes {
		if t.Name == typeName {
			return arch.NewCell(t, index), nil
		}
	}
	return arch.Cell{}, fmt.Errorf("unknown cell type %q", typeName)
}
