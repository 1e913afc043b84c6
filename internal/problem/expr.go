package problem

import "ucopt/internal/uc"

// Relation is the sense of a linear constraint.
type Relation int

const (
	LE Relation = iota
	GE
	EQ
)

func (r Relation) String() string {
	switch r {
	case LE:
		return "<="
	case GE:
		return ">="
	default:
		return "=="
	}
}

// Term is one variable's contribution to a linear expression: Coef times
// the decision variable V at index Key.
type Term struct {
	V    *uc.Var
	Key  []any
	Coef float64
}

// Expr is a linear expression over decision variables plus a constant,
// the Go equivalent of the pulp arithmetic expressions built throughout
// original_source/pyuc/constraints.py.
type Expr struct {
	Terms []Term
	Const float64
}

// T builds a single-term Expr: coef * v[key...].
func T(v *uc.Var, coef float64, key ...any) Expr {
	k := make([]any, len(key))
	copy(k, key)
	return Expr{Terms: []Term{{V: v, Key: k, Coef: coef}}}
}

// K builds a constant-only Expr.
func K(c float64) Expr {
	return Expr{Const: c}
}

// Plus returns e + o.
func (e Expr) Plus(o Expr) Expr {
	out := Expr{Terms: make([]Term, 0, len(e.Terms)+len(o.Terms)), Const: e.Const + o.Const}
	out.Terms = append(out.Terms, e.Terms...)
	out.Terms = append(out.Terms, o.Terms...)
	return out
}

// Minus returns e - o.
func (e Expr) Minus(o Expr) Expr {
	return e.Plus(o.Scale(-1))
}

// Scale returns c * e.
func (e Expr) Scale(c float64) Expr {
	out := Expr{Terms: make([]Term, len(e.Terms)), Const: e.Const * c}
	for i, t := range e.Terms {
		out.Terms[i] = Term{V: t.V, Key: t.Key, Coef: t.Coef * c}
	}
	return out
}

// PlusConst returns e + c.
func (e Expr) PlusConst(c float64) Expr {
	return Expr{Terms: e.Terms, Const: e.Const + c}
}

// Sum adds every expression in exprs.
func Sum(exprs ...Expr) Expr {
	out := Expr{}
	for _, e := range exprs {
		out = out.Plus(e)
	}
	return out
}

// Constraint is one labeled linear (in)equality: LHS Rel RHS, with RHS a
// constant (every variable term has been moved to LHS by the caller).
// Labels are stable strings encoding the index tuple (spec.md 4.3) and
// are used both for debugging and solver-side identification.
type Constraint struct {
	Label string
	LHS   Expr
	Rel   Relation
	RHS   float64
}

// NewConstraint builds a Constraint from lhs Rel rhs, where rhs may
// itself carry variable terms; they are folded into lhs (moved to the
// left, sign-flipped) and rhs's constant becomes the final RHS.
func NewConstraint(label string, lhs Expr, rel Relation, rhs Expr) Constraint {
	folded := lhs.Minus(Expr{Terms: rhs.Terms})
	return Constraint{Label: label, LHS: Expr{Terms: folded.Terms}, Rel: rel, RHS: rhs.Const - lhs.Const}
}

// Eq, Leq, Geq are small readability helpers over NewConstraint for the
// common case of a plain-float RHS.
func Eq(label string, lhs Expr, rhs float64) Constraint  { return NewConstraint(label, lhs, EQ, K(rhs)) }
func Leq(label string, lhs Expr, rhs float64) Constraint { return NewConstraint(label, lhs, LE, K(rhs)) }
func Geq(label string, lhs Expr, rhs float64) Constraint { return NewConstraint(label, lhs, GE, K(rhs)) }
