package synth

import (
	"lime/internal/arch"
	"lime/internal/boolalg"
	"lime/internal/program"
)

// Copy enumerates every way to copy from_cell into to (to.Inverted
// true meaning the complement of from_cell's value), trying every
// operation type via both strategies:
//
//   - copyUsingOutput: an operation with no input override, reading
//     from_cell as one input and writing the result through a
//     declared output placement.
//   - copyUsingInputOverride: an operation whose input-override
//     position is itself to.Cell, relying on an identity (possibly
//     inverted) relationship between that position and from_cell —
//     only possible when the architecture declares no output
//     placements. Because the override position already holds
//     whatever to.Cell currently contains, this strategy may first
//     need to pin that value via a speculative Set, composed through
//     Version.Branch.
func Copy(versions *program.Versions, fromCell arch.Cell, to arch.Operand) {
	a := versions.Arch()
	for i := range a.Operations {
		op := &a.Operations[i]
		copyUsingOutput(a, op, versions, fromCell, to)
		copyUsingInputOverride(a, op, versions, fromCell, to.Cell, to.Inverted)
	}
}

func copyUsingOutput(a *arch.Architecture, op *arch.OperationType, versions *program.Versions, fromCell arch.Cell, to arch.Operand) {
	if !op.Override.IsNone() {
		return
	}
	var outputInverted *bool
	switch a.Outputs.FitCell(to.Cell) {
	case boolalg.Empty:
		return
	case boolalg.All:
		outputInverted = nil
	case boolalg.OnlyTrue:
		v := true
		outputInverted = &v
	case boolalg.OnlyFalse:
		v := false
		outputInverted = &v
	}

	for _, combination := range a.Combinations(op.Input) {
	from:
		for fromIdx, from := range combination {
			fromInverted, ok := from.Fit(fromCell)
			if !ok {
				continue from
			}

			// to.cell = to.inverted ^ from_cell
			// to.cell = (from_inverted ^ output_inverted ^ ident_inverted) from_cell
			// => ident_inverted = from_inverted ^ output_inverted ^ to.inverted
			var identInverted *bool
			if outputInverted != nil {
				v := *outputInverted != fromInverted != to.Inverted
				identInverted = &v
			}
			mapping := NewToIdent(op.Function, len(combination), identInverted)
			inputs := make([]arch.Operand, len(combination))
			for i, operand := range combination {
				if i == fromIdx {
					continue
				}
				matched, ok := mapping.MatchNext(operand)
				if !ok {
					continue from
				}
				inputs[i] = matched
			}
			idInverted, ok := mapping.Eval.IDInverted()
			if !ok {
				continue from
			}
			if identInverted != nil && *identInverted != idInverted {
				continue from
			}
			resultInverted := fromInverted != to.Inverted != idInverted
			inputs[fromIdx] = arch.Operand{Cell: fromCell, Inverted: fromInverted}

			v := versions.New()
			v.Append(arch.Operation{
				Type:    op,
				Inputs:  inputs,
				Outputs: []arch.Operand{{Cell: to.Cell, Inverted: resultInverted}},
			})
			v.Save()
		}
	}
}

func copyUsingInputOverride(a *arch.Architecture, op *arch.OperationType, versions *program.Versions, fromCell, toCell arch.Cell, inverted bool) {
	if !a.Outputs.ContainsNone() {
		return
	}
	toIdx, ok := op.Override.Index()
	if !ok {
		return
	}

	for _, combination := range a.Combinations(op.Input) {
		toOperand := combination[toIdx]
		toInverted, ok := toOperand.Fit(toCell)
		if !ok {
			continue
		}
	from:
		for fromIdx, from := range combination {
			if fromIdx == toIdx {
				continue from
			}
			fromInverted, ok := from.Fit(fromCell)
			if !ok {
				continue from
			}
			identInverted := toInverted != fromInverted != inverted
			mapping := NewToIdent(op.Function, len(combination), &identInverted)
			inputs := make([]arch.Operand, len(combination))
			for i, operand := range combination {
				if i == fromIdx || i == toIdx {
					continue
				}
				matched, ok := mapping.MatchNext(operand)
				if !ok {
					continue from
				}
				inputs[i] = matched
			}
			arity := len(combination)
			toHint, ok := mapping.Eval.HintID(&arity, &identInverted)
			if !ok {
				continue from
			}

			version := versions.New()
			if toValue, isRequire := toHint.IsRequire(); isRequire {
				branch := version.Branch()
				SetVersions(branch, toCell, toValue != toInverted)
				if branch.Finish() == nil {
					continue from
				}
				mapping.Eval.Add(toValue)
			} else {
				mapping.Eval.AddUnknown()
			}
			idInverted, ok := mapping.Eval.IDInverted()
			if !ok || idInverted != identInverted {
				continue from
			}
			inputs[fromIdx] = arch.Operand{Cell: fromCell, Inverted: fromInverted}
			inputs[toIdx] = arch.Operand{Cell: toCell, Inverted: toInverted}
			version.Append(arch.Operation{
				Type:    op,
				Inputs:  inputs,
				Outputs: nil,
			})
			version.Save()
		}
	}
}
