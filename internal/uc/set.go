// Package uc implements the algebraic core of the unit-commitment MILP
// formulation: named index sets, typed decision variables indexed over
// set tuples, and the unit-catalog types the constraint and objective
// libraries read from.
package uc

import "fmt"

// Set is a named, ordered collection of hashable indices. A Set may
// declare a master Set, in which case every one of its indices must also
// appear in the master's indices; the subset registers itself with the
// master so callers can enumerate declared variants.
type Set struct {
	Name    string
	Indices []any
	Master  *Set
	Subsets []*Set
}

// NewSet constructs a Set, validating subset membership against master
// when master is non-nil. A subset element missing from the master's
// indices is a construction error, matching pyuc's Set.validate_set.
func NewSet(name string, indices []any, master *Set) (*Set, error) {
	s := &Set{Name: name, Indices: indices, Master: master}
	if master != nil {
		if err := s.validate(master); err != nil {
			return nil, err
		}
		master.Subsets = append(master.Subsets, s)
	}
	return s, nil
}

func (s *Set) validate(master *Set) error {
	members := make(map[any]bool, len(master.Indices))
	for _, m := range master.Indices {
		members[m] = true
	}
	for _, ind := range s.Indices {
		if !members[ind] {
			return fmt.Errorf("subset validation error: member %v of set %q is not a member of master set %q", ind, s.Name, master.Name)
		}
	}
	return nil
}

func (s *Set) String() string { return s.Name }

// Contains reports whether ind is one of the set's indices.
func (s *Set) Contains(ind any) bool {
	for _, v := range s.Indices {
		if v == ind {
			return true
		}
	}
	return false
}

// Len returns the number of indices in the set.
func (s *Set) Len() int { return len(s.Indices) }

// Intervals is a convenience typed view over an "intervals" Set, whose
// indices are always ints (0-based, ordered).
type Intervals struct{ *Set }

// Ints returns the set's indices as a plain []int, in order.
func (iv Intervals) Ints() []int {
	out := make([]int, len(iv.Indices))
	for i, v := range iv.Indices {
		out[i] = v.(int)
	}
	return out
}

// First returns the first interval index (normally 0).
func (iv Intervals) First() int {
	return iv.Indices[0].(int)
}

// Units is a convenience typed view over a "units"-like Set, whose
// indices are always unit-name strings.
type Units struct{ *Set }

// Strings returns the set's indices as a plain []string, in order.
func (us Units) Strings() []string {
	out := make([]string, len(us.Indices))
	for i, v := range us.Indices {
		out[i] = v.(string)
	}
	return out
}
