package solver

import (
	"ucopt/internal/problem"
	"ucopt/internal/uc"
)

// model is the static part of the MILP: real decision-variable columns,
// their integrality flags, the objective coefficients, and the
// problem's own constraint rows (still in LE/GE/EQ form, before slack
// columns are added). Branch-and-bound nodes layer extra bound rows on
// top of this when assembling a solvable standard-form tableau.
type model struct {
	numVars   int
	offsets   map[*uc.Var]int
	isInteger []bool
	colName   []string
	c         []float64

	rows [][]float64
	rel  []problem.Relation
	b    []float64
}

// buildModel flattens a Problem's variables, objective, and constraints
// into the column/row form the simplex-based branch-and-bound operates
// on.
func buildModel(p *problem.Problem) *model {
	vars := p.Vars.All()

	m := &model{offsets: make(map[*uc.Var]int, len(vars))}
	for _, v := range vars {
		m.offsets[v] = m.numVars
		m.numVars += len(v.Keys)
	}

	m.isInteger = make([]bool, m.numVars)
	m.colName = make([]string, m.numVars)
	for _, v := range vars {
		base := m.offsets[v]
		integer := v.Type != uc.Continuous
		for i, key := range v.Keys {
			m.isInteger[base+i] = integer
			m.colName[base+i] = v.Name + "_" + uc.EncodeKey(key)
		}
	}

	m.c = make([]float64, m.numVars)
	for _, t := range p.Objective.Terms {
		col, ok := m.col(t)
		if !ok {
			continue
		}
		m.c[col] += t.Coef
	}

	m.rows = make([][]float64, len(p.Constraints))
	m.rel = make([]problem.Relation, len(p.Constraints))
	m.b = make([]float64, len(p.Constraints))
	for i, c := range p.Constraints {
		row := make([]float64, m.numVars)
		for _, t := range c.LHS.Terms {
			col, ok := m.col(t)
			if !ok {
				continue
			}
			row[col] += t.Coef
		}
		m.rows[i] = row
		m.rel[i] = c.Rel
		m.b[i] = c.RHS
	}

	return m
}

// col resolves a Term to its global column index.
func (m *model) col(t problem.Term) (int, bool) {
	idx, ok := t.V.IndexOf(t.Key...)
	if !ok {
		return 0, false
	}
	return m.offsets[t.V] + idx, true
}
