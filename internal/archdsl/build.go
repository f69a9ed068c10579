package archdsl

import (
	"lime/internal/arch"
	"lime/internal/archdsl/grammar"
	"lime/internal/diagnostics"
	"lime/internal/gate"
)

// builder accumulates diagnostics while resolving one parsed file into
// an arch.Architecture.
type builder struct {
	cellTypes   map[string]arch.CellType
	cellNames   []string
	families    map[string]arch.Operands
	familyNames []string
	diags       []diagnostics.Diagnostic
}

func build(file *grammar.File) (*arch.Architecture, []diagnostics.Diagnostic) {
	b := &builder{
		cellTypes: map[string]arch.CellType{},
		families:  map[string]arch.Operands{},
	}

	b.buildCells(file.Cells)
	b.buildFamilies(file.Operands)
	operations := b.buildOperations(file.Operations)
	outputs := b.buildOutputs(file.Output)

	cellTypes := make([]arch.CellType, 0, len(b.cellNames))
	for _, name := range b.cellNames {
		cellTypes = append(cellTypes, b.cellTypes[name])
	}

	a := &arch.Architecture{
		CellTypes:  cellTypes,
		Operations: operations,
		Outputs:    outputs,
	}
	return a, b.diags
}

func (b *builder) report(d diagnostics.Diagnostic) { b.diags = append(b.diags, d) }

func (b *builder) buildCells(decl *grammar.CellsDecl) {
	if decl == nil {
		return
	}
	for _, c := range decl.Cells {
		if _, exists := b.cellTypes[c.Name]; exists {
			b.report(diagnostics.DuplicateCellType(c.Name, c.Pos))
			continue
		}
		count := arch.Unbounded
		if c.Count != nil {
			count = *c.Count
		}
		b.cellTypes[c.Name] = arch.CellType{Name: c.Name, Count: count}
		b.cellNames = append(b.cellNames, c.Name)
	}
}

// declaredCellTypeNames lists every user-declared cell-type name, used
// for did-you-mean suggestions.
func (b *builder) declaredCellTypeNames() []string { return b.cellNames }

func (b *builder) buildFamilies(decl *grammar.OperandsDecl) {
	if decl == nil {
		return
	}
	for _, f := range decl.Families {
		if _, exists := b.families[f.Name]; exists {
			b.report(diagnostics.DuplicateOperandFamily(f.Name, f.Pos))
			continue
		}
		operands := b.resolveFamily(f)
		b.families[f.Name] = operands
		b.familyNames = append(b.familyNames, f.Name)
	}
}

// resolveFamily decides a family's kind from its elements: Nary if
// every element is a bare operand type, Tuples otherwise — splices and
// parenthesized groups are tuples; a bare operand type inside a Tuples
// family is simply its own singleton tuple.
func (b *builder) resolveFamily(f *grammar.OperandFamilyDecl) arch.Operands {
	isTuples := false
	for _, el := range f.Elements {
		if el.Tuple != nil || el.Splice != nil {
			isTuples = true
			break
		}
	}

	if !isTuples {
		alternatives := make([]arch.OperandType, 0, len(f.Elements))
		for _, el := range f.Elements {
			if el.Operand == nil {
				continue
			}
			if ot, ok := b.resolveOperandType(el.Operand); ok {
				alternatives = append(alternatives, ot)
			}
		}
		return arch.NewNaryOperands(alternatives)
	}

	var tuples [][]arch.OperandType
	arity := -1
	for _, el := range f.Elements {
		switch {
		case el.Splice != nil:
			ref, ok := b.families[*el.Splice]
			if !ok {
				b.report(diagnostics.UnknownOperandFamily(*el.Splice, el.Pos, b.familyNames))
				continue
			}
			// A Tuples family splices its declared tuples in verbatim.
			// A Nary family has no tuple structure of its own — every
			// alternative splices in as its own singleton tuple, the
			// same sense in which SingleOperandTypes resolves a Nary
			// family against a lone output or copy-graph cell.
			var spliced [][]arch.OperandType
			if ref.Kind() == arch.Tuples {
				spliced = ref.Combinations(0)
			} else {
				for _, ot := range ref.SingleOperandTypes() {
					spliced = append(spliced, []arch.OperandType{ot})
				}
			}
			for _, t := range spliced {
				if arity == -1 {
					arity = len(t)
				} else if len(t) != arity {
					b.report(diagnostics.ArityMismatch(f.Name, arity, len(t), el.Pos))
					continue
				}
				tuples = append(tuples, t)
			}
		case el.Tuple != nil:
			tuple := make([]arch.OperandType, 0, len(el.Tuple.Operands))
			for _, ot := range el.Tuple.Operands {
				if resolved, ok := b.resolveOperandType(ot); ok {
					tuple = append(tuple, resolved)
				}
			}
			if arity == -1 {
				arity = len(tuple)
			} else if len(tuple) != arity {
				b.report(diagnostics.ArityMismatch(f.Name, arity, len(tuple), el.Pos))
				continue
			}
			tuples = append(tuples, tuple)
		case el.Operand != nil:
			ot, ok := b.resolveOperandType(el.Operand)
			if !ok {
				continue
			}
			if arity == -1 {
				arity = 1
			} else if arity != 1 {
				b.report(diagnostics.ArityMismatch(f.Name, arity, 1, el.Pos))
				continue
			}
			tuples = append(tuples, []arch.OperandType{ot})
		}
	}
	if len(tuples) == 0 {
		return arch.NewNaryOperands(nil)
	}
	return arch.NewTupleOperandsFamily(tuples)
}

// resolveOperandType resolves one `[!] name [ [idx] ]` against the
// declared cell types, or the literal boolean names true/false/bool.
func (b *builder) resolveOperandType(ot *grammar.OperandType) (arch.OperandType, bool) {
	switch ot.Name {
	case "bool":
		return arch.OperandType{Type: arch.ConstantType, Inverted: ot.Inverted, Index: ot.Index}, true
	case "true":
		idx := 1
		return arch.OperandType{Type: arch.ConstantType, Inverted: ot.Inverted, Index: &idx}, true
	case "false":
		idx := 0
		return arch.OperandType{Type: arch.ConstantType, Inverted: ot.Inverted, Index: &idx}, true
	}

	ct, ok := b.cellTypes[ot.Name]
	if !ok {
		b.report(diagnostics.UnknownCellType(ot.Name, ot.Pos, b.declaredCellTypeNames()))
		return arch.OperandType{}, false
	}
	if ot.Index != nil && ct.HasCount() && (*ot.Index < 0 || *ot.Index >= ct.Count) {
		b.report(diagnostics.IndexOutOfBounds(ot.Name, *ot.Index, ct.Count, ot.Pos))
		return arch.OperandType{}, false
	}
	return arch.OperandType{Type: ct, Inverted: ot.Inverted, Index: ot.Index}, true
}

func (b *builder) buildOperations(decl *grammar.OperationsDecl) []arch.OperationType {
	if decl == nil {
		return nil
	}
	seen := map[string]bool{}
	var ops []arch.OperationType
	for _, o := range decl.Operations {
		if seen[o.Name] {
			b.report(diagnostics.DuplicateOperation(o.Name, o.Pos))
			continue
		}
		seen[o.Name] = true

		family, ok := b.families[o.Function.OperandsRef]
		if !ok {
			b.report(diagnostics.UnknownOperandFamily(o.Function.OperandsRef, o.Function.Pos, b.familyNames))
			continue
		}

		g, ok := resolveGate(o.Function.Gate)
		if !ok {
			b.report(diagnostics.InvalidGateName(o.Function.Gate, o.Function.Pos))
			continue
		}
		if o.Function.Gate == "maj" && family.Kind() == arch.Tuples {
			if arity := family.Arity(); arity != nil && *arity%2 == 0 {
				b.report(diagnostics.MajEvenArity(o.Name, *arity, o.Pos))
				continue
			}
		}

		override := arch.NoOverride()
		if o.Override != nil {
			switch {
			case o.Override.All:
				override = arch.AllOverride()
			case o.Override.Index != nil:
				idx := *o.Override.Index
				if arity := family.Arity(); arity != nil && (idx < 0 || idx >= *arity) {
					b.report(diagnostics.InvalidOverrideIndex(o.Name, idx, *arity, o.Pos))
					continue
				}
				override = arch.IndexOverride(idx)
			}
		}

		ops = append(ops, arch.OperationType{
			Name:     o.Name,
			Input:    family,
			Override: override,
			Function: gate.Function{Inverted: o.Function.Inverted, Gate: g},
		})
	}
	return ops
}

func resolveGate(name string) (gate.Gate, bool) {
	switch name {
	case "and":
		return gate.NewAnd(), true
	case "maj":
		return gate.NewMaj(), true
	case "true":
		return gate.NewConstant(true), true
	case "false":
		return gate.NewConstant(false), true
	default:
		return gate.Gate{}, false
	}
}

func (b *builder) buildOutputs(decl *grammar.OutputDecl) arch.Outputs {
	if decl == nil {
		return arch.Outputs{}
	}
	var families []arch.Operands
	for _, ref := range decl.Families {
		f, ok := b.families[ref.Name]
		if !ok {
			b.report(diagnostics.UnknownOutputFamily(ref.Name, ref.Pos, b.familyNames))
			continue
		}
		families = append(families, f)
	}
	return arch.Outputs{Families: families}
}
