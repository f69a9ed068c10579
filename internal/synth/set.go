package synth

import (
	"lime/internal/arch"
	"lime/internal/boolalg"
	"lime/internal/program"
)

// Set enumerates every operation that writes value into cell, trying
// every operation type in the architecture's catalog via both
// placement strategies:
//
//   - setUsingOutput: an operation with no input override, whose
//     result is written through one of the architecture's declared
//     output placements.
//   - setUsingInputResult: an operation whose input-override position
//     already holds cell, relying on the other (constant) inputs
//     alone to force the gate toward value regardless of cell's
//     current contents — only possible when the architecture declares
//     no output placements at all (e.g. IMPLY, PLiM).
func Set(a *arch.Architecture, cell arch.Cell, value bool) []arch.Operation {
	var operations []arch.Operation
	for i := range a.Operations {
		op := &a.Operations[i]
		if op.Override.IsNone() {
			setUsingOutput(a, &operations, op, cell, value)
		}
		if a.Outputs.ContainsNone() {
			setUsingInputResult(a, &operations, op, cell, value)
		}
	}
	return operations
}

func setUsingOutput(a *arch.Architecture, operations *[]arch.Operation, typ *arch.OperationType, cell arch.Cell, value bool) {
	var target *bool
	switch a.Outputs.FitCell(cell) {
	case boolalg.Empty:
		return
	case boolalg.All:
		target = nil
	case boolalg.OnlyTrue:
		v := true
		target = &v
	case boolalg.OnlyFalse:
		v := false
		target = &v
	}
	var inverted *bool
	if target != nil {
		v := *target
		inverted = &v
		t := value != v
		target = &t
	}

combinations:
	for _, combination := range a.Combinations(typ.Input) {
		mapping := NewSetTarget(typ.Function, len(combination), target)
		inputs := make([]arch.Operand, 0, len(combination))
		for _, operand := range combination {
			matched, ok := mapping.MatchNext(operand)
			if !ok {
				continue combinations
			}
			inputs = append(inputs, matched)
		}
		resultValue, ok := mapping.Eval.Evaluate()
		if !ok {
			panic("synth: set_using_output could not evaluate a fully-bound function")
		}
		outputInverted := resultValue != value
		if inverted != nil && *inverted != outputInverted {
			panic("synth: output placement does not fit the declared output specification")
		}
		*operations = append(*operations, arch.Operation{
			Type:    typ,
			Inputs:  inputs,
			Outputs: []arch.Operand{{Cell: cell, Inverted: outputInverted}},
		})
	}
}

func setUsingInputResult(a *arch.Architecture, operations *[]arch.Operation, typ *arch.OperationType, cell arch.Cell, value bool) {
	targetIdx, ok := typ.Override.Index()
	if !ok {
		return
	}

combinations:
	for _, combination := range a.Combinations(typ.Input) {
		ot := combination[targetIdx]
		inverted, ok := ot.Fit(cell)
		if !ok {
			continue
		}
		targetFunc := typ.Function
		targetFunc.Inverted = targetFunc.Inverted != inverted
		v := value
		mapping := NewSetTarget(targetFunc, len(combination), &v)
		inputs := make([]arch.Operand, len(combination))
		for i, operand := range combination {
			if i == targetIdx {
				continue
			}
			matched, ok := mapping.MatchNext(operand)
			if !ok {
				continue combinations
			}
			inputs[i] = matched
		}
		arity := len(combination)
		hint, ok := mapping.Eval.Hint(&arity, value)
		if !ok {
			continue
		}
		if _, isRequire := hint.IsRequire(); isRequire {
			continue
		}
		inputs[targetIdx] = arch.Operand{Cell: cell, Inverted: inverted}
		*operations = append(*operations, arch.Operation{
			Type:    typ,
			Inputs:  inputs,
			Outputs: nil,
		})
	}
}

// SetVersions is Set adapted to a speculative ProgramVersions scope:
// every candidate operation becomes its own saved draft, so the
// caller's Finish() keeps only the cheapest. Copy's input-override
// strategy uses this to speculatively set the cell it is about to
// overwrite-in-place before folding the copy operation itself on top.
func SetVersions(versions *program.Versions, cell arch.Cell, value bool) {
	for _, op := range Set(versions.Arch(), cell, value) {
		v := versions.New()
		v.Append(op)
		v.Save()
	}
}
