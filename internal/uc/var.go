package uc

import (
	"fmt"
	"sort"
	"strings"
)

// VarType is the MILP domain of a decision variable.
type VarType int

const (
	Continuous VarType = iota
	Integer
	Binary
)

func (t VarType) String() string {
	switch t {
	case Integer:
		return "Integer"
	case Binary:
		return "Binary"
	default:
		return "Continuous"
	}
}

// Var is a decision variable indexed by the Cartesian product of a list
// of Sets, in the teacher's "everything carries its full domain" style
// (see original_source/pyuc/pyuc.py Var). It allocates no solver state
// itself; internal/solver assigns each key a column in the global MILP
// variable vector when it builds the model.
type Var struct {
	Name      string
	UnitsName string // display units, e.g. "MW", "#Units" -- not a uc.Set
	Sets      []*Set
	Type      VarType

	Keys     [][]any
	keyIndex map[string]int

	// Values holds the optimal value for each entry in Keys, in the same
	// order, populated by the solver driver after a solve.
	Values []float64
}

// NewVar builds the full Cartesian product of the given sets' indices
// (order preserved, left-to-right flattening for 3+ sets) and allocates
// one slot per tuple.
func NewVar(name, unitsName string, sets []*Set, t VarType) *Var {
	v := &Var{Name: name, UnitsName: unitsName, Sets: sets, Type: t}
	v.Keys = cartesianProduct(sets)
	v.keyIndex = make(map[string]int, len(v.Keys))
	for i, k := range v.Keys {
		v.keyIndex[EncodeKey(k)] = i
	}
	v.Values = make([]float64, len(v.Keys))
	return v
}

func cartesianProduct(sets []*Set) [][]any {
	if len(sets) == 0 {
		return nil
	}
	out := [][]any{{}}
	for _, s := range sets {
		next := make([][]any, 0, len(out)*s.Len())
		for _, prefix := range out {
			for _, ind := range s.Indices {
				tuple := make([]any, len(prefix)+1)
				copy(tuple, prefix)
				tuple[len(prefix)] = ind
				next = append(next, tuple)
			}
		}
		out = next
	}
	return out
}

// EncodeKey turns an index tuple into a stable map key.
func EncodeKey(key []any) string {
	parts := make([]string, len(key))
	for i, k := range key {
		parts[i] = fmt.Sprintf("%v", k)
	}
	return strings.Join(parts, "\x1f")
}

// IndexOf returns the position of key within v.Keys, and whether it
// exists. A caller referencing an index outside a variable's declared
// set membership gets ok=false; the solver's model builder drops any
// constraint or objective term whose key is not found this way.
func (v *Var) IndexOf(key ...any) (int, bool) {
	i, ok := v.keyIndex[EncodeKey(key)]
	return i, ok
}

func (v *Var) LowerBound() float64 { return 0 }

// --- dimension-specialized result extraction (spec.md 4.2) ---

// Row1D returns the variable's values as an ordered slice, for a
// single-set variable (e.g. unserved_power indexed only by interval).
func (v *Var) Row1D() []float64 {
	out := make([]float64, len(v.Keys))
	copy(out, v.Values)
	return out
}

// Table2D returns a row-major [len(set0)][len(set1)]float64 matrix for a
// two-set variable, row axis = first set, column axis = second set.
func (v *Var) Table2D() [][]float64 {
	if len(v.Sets) != 2 {
		panic("Table2D: var is not 2-dimensional")
	}
	rows := v.Sets[0].Indices
	cols := v.Sets[1].Indices
	out := make([][]float64, len(rows))
	for ri, r := range rows {
		out[ri] = make([]float64, len(cols))
		for ci, c := range cols {
			idx, ok := v.IndexOf(r, c)
			if ok {
				out[ri][ci] = v.Values[idx]
			}
		}
	}
	return out
}

// Row3D is a flattened (row0, row1, col) -> value row, matching pyuc's
// MultiIndex(sets[0], sets[1]) x columns=sets[2] layout.
type Row3D struct {
	Key0, Key1 any
	Cols       []float64
}

func (v *Var) Table3D() []Row3D {
	if len(v.Sets) != 3 {
		panic("Table3D: var is not 3-dimensional")
	}
	s0, s1, s2 := v.Sets[0], v.Sets[1], v.Sets[2]
	out := make([]Row3D, 0, s0.Len()*s1.Len())
	for _, a := range s0.Indices {
		for _, b := range s1.Indices {
			row := Row3D{Key0: a, Key1: b, Cols: make([]float64, s2.Len())}
			for ci, c := range s2.Indices {
				idx, ok := v.IndexOf(a, b, c)
				if ok {
					row.Cols[ci] = v.Values[idx]
				}
			}
			out = append(out, row)
		}
	}
	return out
}

// Row4D is a flattened (row0, row1, row2, col) -> value row.
type Row4D struct {
	Key0, Key1, Key2 any
	Cols             []float64
}

func (v *Var) Table4D() []Row4D {
	if len(v.Sets) != 4 {
		panic("Table4D: var is not 4-dimensional")
	}
	s0, s1, s2, s3 := v.Sets[0], v.Sets[1], v.Sets[2], v.Sets[3]
	out := make([]Row4D, 0, s0.Len()*s1.Len()*s2.Len())
	for _, a := range s0.Indices {
		for _, b := range s1.Indices {
			for _, c := range s2.Indices {
				row := Row4D{Key0: a, Key1: b, Key2: c, Cols: make([]float64, s3.Len())}
				for di, d := range s3.Indices {
					idx, ok := v.IndexOf(a, b, c, d)
					if ok {
						row.Cols[di] = v.Values[idx]
					}
				}
				out = append(out, row)
			}
		}
	}
	return out
}

// ResultFilename is the <name>_<units>.csv naming convention from
// spec.md 4.2.
func (v *Var) ResultFilename() string {
	return fmt.Sprintf("%s_%s.csv", v.Name, v.UnitsName)
}

// sortedKeysForDebug returns v.Keys sorted by their encoded form, for
// iteration independent of creation order. Nothing in the module calls
// it.
func (v *Var) sortedKeysForDebug() [][]any {
	keys := make([][]any, len(v.Keys))
	copy(keys, v.Keys)
	sort.Slice(keys, func(i, j int) bool {
		return EncodeKey(keys[i]) < EncodeKey(keys[j])
	})
	return keys
}
