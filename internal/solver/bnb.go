package solver

import (
	"context"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"ucopt/internal/problem"
)

const integerTol = 1e-6

// bound is a branch-and-bound node's per-column tightening on top of the
// model's own constraints. Every column's implicit lower bound is 0
// (gonum's Simplex requires x >= 0); upper defaults to +Inf.
type bound struct {
	lower float64
	upper float64
}

// node is one item of the depth-first search frontier.
type node struct {
	bounds map[int]bound
}

// branchAndBound performs a depth-first (LIFO) search over integer
// restrictions of the columns m.isInteger marks, returning the best
// integer-feasible solution found, or an infeasible/unbounded status.
func branchAndBound(ctx context.Context, m *model) (Status, []float64, float64) {
	root := node{bounds: map[int]bound{}}

	rootStatus, rootX, rootObj := solveRelaxation(m, root.bounds)
	if rootStatus == Unbounded {
		return Unbounded, nil, 0
	}
	if rootStatus == Infeasible {
		return Infeasible, nil, 0
	}

	var bestX []float64
	bestObj := math.Inf(1)
	timedOut := false

	stack := []node{root}
	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			timedOut = true
		default:
		}
		if timedOut {
			break
		}

		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		status, x, obj := solveRelaxation(m, n.bounds)
		if status != Optimal {
			continue
		}
		if obj >= bestObj {
			continue // bound: this subtree cannot beat the incumbent
		}

		col, val, fractional := mostFractionalColumn(m, x)
		if !fractional {
			bestX = x
			bestObj = obj
			continue
		}

		cur := boundOf(n.bounds, col)

		lowBounds := cloneBounds(n.bounds)
		lowBounds[col] = bound{lower: cur.lower, upper: math.Floor(val)}
		stack = append(stack, node{bounds: lowBounds})

		highBounds := cloneBounds(n.bounds)
		highBounds[col] = bound{lower: math.Ceil(val), upper: cur.upper}
		stack = append(stack, node{bounds: highBounds})
	}

	if bestX == nil {
		if timedOut {
			return TimeLimit, rootX, rootObj
		}
		return Infeasible, nil, 0
	}
	if timedOut {
		return TimeLimit, bestX, bestObj
	}
	return Optimal, bestX, bestObj
}

// boundOf returns a column's current bound, defaulting to [0, +Inf).
func boundOf(bounds map[int]bound, col int) bound {
	if b, ok := bounds[col]; ok {
		return b
	}
	return bound{lower: 0, upper: math.MaxFloat64}
}

func cloneBounds(src map[int]bound) map[int]bound {
	out := make(map[int]bound, len(src)+1)
	for k, v := range src {
		out[k] = v
	}
	return out
}

// mostFractionalColumn returns the integer-constrained column whose
// relaxed value is furthest from an integer, or fractional=false if
// every integer column is already within integerTol of an integer.
func mostFractionalColumn(m *model, x []float64) (col int, val float64, fractional bool) {
	bestDist := integerTol
	found := -1
	for i, isInt := range m.isInteger {
		if !isInt {
			continue
		}
		frac := x[i] - math.Floor(x[i])
		dist := math.Min(frac, 1-frac)
		if dist > bestDist {
			bestDist = dist
			found = i
		}
	}
	if found < 0 {
		return 0, 0, false
	}
	return found, x[found], true
}

// solveRelaxation assembles the standard-form tableau for the model plus
// a node's bound tightenings, and solves it with gonum's simplex.
func solveRelaxation(m *model, bounds map[int]bound) (Status, []float64, float64) {
	extraRows := 0
	for _, b := range bounds {
		if b.upper < math.MaxFloat64 {
			extraRows++
		}
		if b.lower > 0 {
			extraRows++
		}
	}

	type row struct {
		coefs map[int]float64
		rel   problem.Relation
		rhs   float64
	}
	all := make([]row, 0, len(m.rows)+extraRows)
	for i, r := range m.rows {
		coefs := make(map[int]float64)
		for col, v := range r {
			if v != 0 {
				coefs[col] = v
			}
		}
		all = append(all, row{coefs: coefs, rel: m.rel[i], rhs: m.b[i]})
	}
	for col, b := range bounds {
		if b.upper < math.MaxFloat64 {
			all = append(all, row{coefs: map[int]float64{col: 1}, rel: problem.LE, rhs: b.upper})
		}
		if b.lower > 0 {
			all = append(all, row{coefs: map[int]float64{col: 1}, rel: problem.GE, rhs: b.lower})
		}
	}

	numSlack := 0
	for _, r := range all {
		if r.rel != problem.EQ {
			numSlack++
		}
	}
	numCols := m.numVars + numSlack

	c := make([]float64, numCols)
	copy(c, m.c)

	aData := make([]float64, len(all)*numCols)
	bVec := make([]float64, len(all))

	slackCol := m.numVars
	for ri, r := range all {
		base := ri * numCols
		for col, v := range r.coefs {
			aData[base+col] = v
		}
		switch r.rel {
		case problem.LE:
			aData[base+slackCol] = 1
			slackCol++
		case problem.GE:
			aData[base+slackCol] = -1
			slackCol++
		}
		bVec[ri] = r.rhs
	}

	A := mat.NewDense(len(all), numCols, aData)

	z, x, err := lp.Simplex(c, A, bVec, 0, nil)
	if err != nil {
		if err == lp.ErrUnbounded {
			return Unbounded, nil, 0
		}
		return Infeasible, nil, 0
	}
	_ = z
	return Optimal, x[:m.numVars], z
}
