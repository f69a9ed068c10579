package copygraph

import (
	"lime/internal/arch"
	"lime/internal/synth"
)

// findCopyOperations registers, for every operation and both copy
// polarities, the templates that copy FromVar into ToVar — either
// through a separately chosen output cell (findUsingOutput) or by
// destructively overwriting one of
// the operation's own inputs, possibly primed by a set-constant prefix
// (findUsingInputOverride). Grounded on
// original_source/rs/src/gp/copy/discovery.rs, mirroring
// internal/synth's Copy but over type-level representatives instead of
// concrete cells, and must run after findSetConstant has populated the
// constant-cell edges findUsingInputOverride looks up.
func findCopyOperations(a *arch.Architecture, costFn arch.CostFunc, g *Graph) {
	for i := range a.Operations {
		op := &a.Operations[i]
		for _, inverted := range [2]bool{false, true} {
			findUsingOutput(a, costFn, g, op, inverted)
			findUsingInputOverride(a, costFn, g, op, inverted)
		}
	}
}

func findUsingOutput(a *arch.Architecture, costFn arch.CostFunc, g *Graph, op *arch.OperationType, inverted bool) {
	if !op.Override.IsNone() {
		return
	}
	for _, to := range a.Outputs.SingleOperandTypes() {
		for _, combination := range a.Combinations(op.Input) {
		from:
			for fromIdx, from := range combination {
				fromInverted := from.Inverted
				identInverted := fromInverted != to.Inverted != inverted
				mapping := synth.NewToIdent(op.Function, len(combination), &identInverted)
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
				if !ok || idInverted != identInverted {
					continue from
				}
				inputs[fromIdx] = fromOperand(fromInverted)

				instance := arch.Operation{Type: op, Inputs: inputs, Outputs: []arch.Operand{toOperand(to.Inverted)}}
				template := []arch.Operation{instance}
				cost := costFn(instance)
				fromNode := ForOperandType(from)
				toNode := ForOperandType(to)
				g.ConsiderEdge(fromNode, toNode, Edge{Inverted: inverted, Template: template, Cost: cost})
			}
		}
	}
}

func findUsingInputOverride(a *arch.Architecture, costFn arch.CostFunc, g *Graph, op *arch.OperationType, inverted bool) {
	if !a.Outputs.ContainsNone() {
		return
	}
	toIdx, ok := op.Override.Index()
	if !ok {
		return
	}

	for _, combination := range a.Combinations(op.Input) {
		toType := combination[toIdx]
		toInverted := toType.Inverted
		toNode := ForOperandType(toType)

	from:
		for fromIdx, from := range combination {
			if fromIdx == toIdx {
				continue from
			}
			fromInverted := from.Inverted
			identInverted := toInverted != fromInverted != inverted
			mapping := synth.NewToIdent(op.Function, len(combination), &identInverted)
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

			var prefix []arch.Operation
			if toValue, isRequire := toHint.IsRequire(); isRequire {
				match, ok := g.AllOptimalEdgesMatching(CellNode(arch.ConstantCell(toValue != toInverted)), toNode, false)
				if !ok {
					continue from
				}
				prefix = match.Edge.Template
				mapping.Eval.Add(toValue)
			} else {
				mapping.Eval.AddUnknown()
			}
			idInverted, ok := mapping.Eval.IDInverted()
			if !ok || idInverted != identInverted {
				continue from
			}
			inputs[fromIdx] = fromOperand(fromInverted)
			inputs[toIdx] = toOperand(toInverted)

			instance := arch.Operation{Type: op, Inputs: inputs, Outputs: nil}
			cost := costFn(instance)
			for _, p := range prefix {
				cost += costFn(p)
			}
			template := make([]arch.Operation, 0, len(prefix)+1)
			template = append(template, prefix...)
			template = append(template, instance)

			fromNode := ForOperandType(from)
			g.ConsiderEdge(fromNode, toNode, Edge{Inverted: inverted, Template: template, Cost: cost})
		}
	}
}
