package arch

// Cost is the additive cost type used to compare and sum operation
// sequences. int is sufficient for every bundled architecture; the
// Rust original's generic C: Ord + Clone + Add is flattened to a
// concrete type since Go's synthesis code never needs to swap it out
// at compile time — callers inject behavior via Cost, the function.
type Cost = int

// CostFunc assigns a cost to one operation; sequence cost is the
// additive sum over its operations. UnitCost (every operation costs 1,
// so the CopyGraph is built by instruction count) is the default.
type CostFunc func(op Operation) Cost

// UnitCost is the default OperationCost strategy: every operation
// costs exactly 1.
func UnitCost(Operation) Cost { return 1 }
