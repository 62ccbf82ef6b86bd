/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package analysis

import "sort"

// Set is an unordered collection of unique names.
type Set struct {
	m map[string]struct{}
}

// NewSet returns a set holding values.
func NewSet(values ...string) *Set {
	s := &Set{m: make(map[string]struct{}, len(values))}
	s.AddAll(values)
	return s
}

// Add inserts value.
func (s *Set) Add(value string) *Set {
	if s.m == nil {
		s.m = make(map[string]struct{})
	}
	s.m[value] = struct{}{}
	return s
}

// AddAll inserts every value.
func (s *Set) AddAll(values []string) *Set {
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Union inserts every member of other.
func (s *Set) Union(other *Set) *Set {
	if other == nil {
		return s
	}
	for v := range other.m {
		s.Add(v)
	}
	return s
}

// Contains tells whether value is a member.
func (s *Set) Contains(value string) bool {
	if s == nil {
		return false
	}
	_, ok := s.m[value]
	return ok
}

// Len returns the number of members.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.m)
}

// Values returns the members sorted.
func (s *Set) Values() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.m))
	for v := range s.m {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
