package skill

import "strings"

// Set is an ordered collection of canonical skill labels. Membership is
// case-insensitive; iteration and output preserve canonical casing and
// insertion order.
type Set struct {
	names []string
	index map[string]struct{}
}

func NewSet(names ...string) Set {
	s := Set{}
	for _, n := range names {
		s.Add(n)
	}
	return s
}

func (s *Set) Add(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	key := strings.ToLower(name)
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[key]; ok {
		return
	}
	s.index[key] = struct{}{}
	s.names = append(s.names, name)
}

func (s Set) Contains(name string) bool {
	if s.index == nil {
		return false
	}
	_, ok := s.index[strings.ToLower(name)]
	return ok
}

func (s Set) Len() int { return len(s.names) }

// Names returns the canonical labels in insertion order.
func (s Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Intersect keeps the entries of s that are also in other, preserving
// s's order and canonical casing.
func (s Set) Intersect(other Set) Set {
	out := Set{}
	for _, n := range s.names {
		if other.Contains(n) {
			out.Add(n)
		}
	}
	return out
}

// Subtract keeps the entries of s that are not in other.
func (s Set) Subtract(other Set) Set {
	out := Set{}
	for _, n := range s.names {
		if !other.Contains(n) {
			out.Add(n)
		}
	}
	return out
}
