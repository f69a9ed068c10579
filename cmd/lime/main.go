package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"

	"lime/internal/arch"
	"lime/internal/archdsl"
	"lime/internal/archlib"
	"lime/internal/copygraph"
	"lime/internal/diagnostics"
	"lime/internal/program"
	"lime/internal/synth"
	"lime/repl"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "parse":
		err = cmdParse(os.Args[2:])
	case "graph":
		err = cmdGraph(os.Args[2:])
	case "set":
		err = cmdSet(os.Args[2:])
	case "copy":
		err = cmdCopy(os.Args[2:])
	case "repl":
		err = cmdRepl(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		color.Red("lime: %s", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage: lime <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  parse <file.lime|archname>        validate an architecture description")
	fmt.Println("  graph <file.lime|archname>         build and summarize the copy graph")
	fmt.Println("  set   <file.lime|archname> <cellType> <index> <true|false>")
	fmt.Println("  copy  <file.lime|archname> <fromType> <fromIdx> <toType> <toIdx> [!]")
	fmt.Println("  repl  <file.lime|archname>          interactive synthesis console")
}

// loadArchitecture loads a named bundled architecture (ambit, imply,
// plim, felix) if path matches one of archlib.Names(), otherwise
// parses and validates it as a `.lime` source file, reporting any
// diagnostics caret-style against the file's own source.
func loadArchitecture(path string) (*arch.Architecture, error) {
	if a, err := archlib.Load(path); err == nil {
		return a, nil
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	result, loadErr := archdsl.LoadString(path, string(source))
	if len(result.Diagnostics) > 0 {
		reporter := diagnostics.NewReporter(path, string(source))
		for _, d := range result.Diagnostics {
			fmt.Fprint(os.Stderr, reporter.Format(d))
		}
	}
	if loadErr != nil {
		return nil, fmt.Errorf("failed to load %s", path)
	}
	return result.Architecture, nil
}

func cmdParse(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: lime parse <file.lime|archname>")
	}
	a, err := loadArchitecture(args[0])
	if err != nil {
		return err
	}
	color.Green("ok: %s (%d cell type(s), %d operation(s))", a.Name, len(a.CellTypes), len(a.Operations))
	return nil
}

func cmdGraph(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: lime graph <file.lime|archname>")
	}
	a, err := loadArchitecture(args[0])
	if err != nil {
		return err
	}
	copygraph.Build(a, nil)
	color.Green("built copy graph for %s", a.Name)
	return nil
}

func cmdSet(args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: lime set <file.lime|archname> <cellType> <index> <true|false>")
	}
	a, err := loadArchitecture(args[0])
	if err != nil {
		return err
	}
	cell, err := resolveCell(a, args[1], args[2])
	if err != nil {
		return err
	}
	value, err := strconv.ParseBool(args[3])
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[3], err)
	}

	p := program.New(a, nil)
	versions := program.NewVersions(p)
	synth.SetVersions(versions, cell, value)
	ops := versions.Finish()
	if len(ops) == 0 {
		return fmt.Errorf("no way to set %s to %v on %s", cell, value, a.Name)
	}
	for _, op := range ops {
		fmt.Println(op.String())
	}
	return nil
}

func cmdCopy(args []string) error {
	if len(args) < 5 {
		return fmt.Errorf("usage: lime copy <file.lime|archname> <fromType> <fromIdx> <toType> <toIdx> [!]")
	}
	a, err := loadArchitecture(args[0])
	if err != nil {
		return err
	}
	from, err := resolveCell(a, args[1], args[2])
	if err != nil {
		return err
	}
	to, err := resolveCell(a, args[3], args[4])
	if err != nil {
		return err
	}
	inverted := len(args) > 5 && args[5] == "!"

	p := program.New(a, nil)
	versions := program.NewVersions(p)
	synth.Copy(versions, from, arch.Operand{Cell: to, Inverted: inverted})
	ops := versions.Finish()
	if len(ops) == 0 {
		return fmt.Errorf("no way to copy %s into %s on %s", from, to, a.Name)
	}
	for _, op := range ops {
		fmt.Println(op.String())
	}
	return nil
}

func cmdRepl(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: lime repl <file.lime|archname>")
	}
	a, err := loadArchitecture(args[0])
	if err != nil {
		return err
	}
	return repl.Run(a, os.Stdin, os.Stdout)
}

// resolveCell finds typeName among a's declared cell types (or the
// built-in constant pseudo-type "bool") and builds the concrete cell
// at index.
func resolveCell(a *arch.Architecture, typeName, indexStr string) (arch.Cell, error) {
	index, err := strconv.Atoi(indexStr)
	if err != nil {
		return arch.Cell{}, fmt.Errorf("invalid index %q: %w", indexStr, err)
	}
	if typeName == arch.ConstantType.Name {
		return arch.NewCell(arch.ConstantType, index), nil
	}
	for _, t := range a.CellTypes {
		if t.Name == typeName {
			return arch.NewCell(t, index), nil
		}
	}
	return arch.Cell{}, fmt.Errorf("unknown cell type %q in %s", typeName, a.Name)
}
