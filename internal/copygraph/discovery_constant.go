package copygraph

import (
	"lime/internal/arch"
	"lime/internal/synth"
)

// findSetConstant registers, for every operation and every target
// value, the templates that force ToVar to that value — either by
// writing a separate output cell (findForOutput) or by destructively
// overwriting one of the operation's own inputs (findForInputResult).
// Grounded on original_source/rs/src/gp/copy/discovery_constant.rs,
// reusing the same ConstantMapping machinery as internal/synth's Set.
func findSetConstant(a *arch.Architecture, costFn arch.CostFunc, g *Graph) {
	for i := range a.Operations {
		op := &a.Operations[i]
		for _, value := range [2]bool{false, true} {
			findForOutput(a, costFn, g, op, value)
			findForInputResult(a, costFn, g, op, value)
		}
	}
}

func findForOutput(a *arch.Architecture, costFn arch.CostFunc, g *Graph, op *arch.OperationType, value bool) {
	if !op.Override.IsNone() {
		return
	}
	for _, to := range a.Outputs.SingleOperandTypes() {
		target := value != to.Inverted

	combinations:
		for _, combination := range a.Combinations(op.Input) {
			mapping := synth.NewSetTarget(op.Function, len(combination), &target)
			inputs := make([]arch.Operand, 0, len(combination))
			for _, operand := range combination {
				matched, ok := mapping.MatchNext(operand)
				if !ok {
					continue combinations
				}
				inputs = append(inputs, matched)
			}
			resultValue, ok := mapping.Eval.Evaluate()
			if !ok || resultValue != target {
				continue combinations
			}

			instance := arch.Operation{Type: op, Inputs: inputs, Outputs: []arch.Operand{toOperand(to.Inverted)}}
			template := []arch.Operation{instance}
			cost := costFn(instance)
			toNode := ForOperandType(to)
			for _, fromValue := range [2]bool{false, true} {
				fromNode := CellNode(arch.ConstantCell(fromValue))
				g.ConsiderEdge(fromNode, toNode, Edge{Inverted: value != fromValue, Template: template, Cost: cost})
			}
		}
	}
}

func findForInputResult(a *arch.Architecture, costFn arch.CostFunc, g *Graph, op *arch.OperationType, value bool) {
	targetIdx, ok := op.Override.Index()
	if !ok {
		return
	}

combinations:
	for _, combination := range a.Combinations(op.Input) {
		targetType := combination[targetIdx]
		fn := op.Function
		fn.Inverted = fn.Inverted != targetType.Inverted
		target := value
		mapping := synth.NewSetTarget(fn, len(combination), &target)
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
			continue combinations
		}
		if _, isRequire := hint.IsRequire(); isRequire {
			continue combinations
		}

		inputs[targetIdx] = toOperand(targetType.Inverted)
		instance := arch.Operation{Type: op, Inputs: inputs, Outputs: nil}
		template := []arch.Operation{instance}
		cost := costFn(instance)
		toNode := ForOperandType(targetType)
		for _, fromValue := range [2]bool{false, true} {
			fromNode := CellNode(arch.ConstantCell(fromValue))
			g.ConsiderEdge(fromNode, toNode, Edge{Inverted: value != fromValue, Template: template, Cost: cost})
		}
	}
}
