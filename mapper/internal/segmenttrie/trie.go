/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package segmenttrie indexes dot-separated reason prefixes for
// longest-prefix matching on segment boundaries.
package segmenttrie

import (
	"errors"
	"strings"
)

// Wildcard matches exactly one segment.
const Wildcard = "*"

// ErrInvalidPrefix is returned for empty prefixes, empty or malformed
// segments, and prefixes made only of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// Trie maps reason prefixes such as "contact_service" or
// "*.read_contacts" to values. A Trie is not safe for concurrent Insert, but
// any number of goroutines may Match once building is done.
type Trie[T any] struct {
	root node[T]
}

type node[T any] struct {
	children map[string]*node[T]
	set      bool
	val      T
	pattern  string
}

// New returns an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{}
}

// Insert associates val with prefix. Inserting the same prefix twice
// replaces the value.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	concrete := false
	for _, s := range segs {
		if s == Wildcard {
			continue
		}
		if !ValidSegment(s) {
			return ErrInvalidPrefix
		}
		concrete = true
	}
	if !concrete {
		return ErrInvalidPrefix
	}

	n := &t.root
	for _, s := range segs {
		if n.children == nil {
			n.children = make(map[string]*node[T])
		}
		child, ok := n.children[s]
		if !ok {
			child = &node[T]{}
			n.children[s] = child
		}
		n = child
	}
	n.set, n.val, n.pattern = true, val, prefix
	return nil
}

// Match returns the value of the deepest prefix matching key.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(key)
	return v, ok
}

// MatchWithPattern is Match that also returns the stored prefix, for
// diagnostics. At equal depth a concrete segment beats a wildcard.
func (t *Trie[T]) MatchWithPattern(key string) (T, bool, string) {
	var zero T
	if t == nil || key == "" {
		return zero, false, ""
	}
	segs := strings.Split(key, ".")
	for _, s := range segs {
		if !ValidSegment(s) {
			return zero, false, ""
		}
	}
	best, _ := deepest(&t.root, segs, 0)
	if best == nil {
		return zero, false, ""
	}
	return best.val, true, best.pattern
}

// deepest walks both the concrete and the wildcard branch and returns the
// deepest node carrying a value, with its depth.
func deepest[T any](n *node[T], segs []string, depth int) (*node[T], int) {
	var best *node[T]
	bestDepth := -1
	if n.set {
		best, bestDepth = n, depth
	}
	if len(segs) == 0 {
		return best, bestDepth
	}
	for _, key := range [2]string{segs[0], Wildcard} {
		child, ok := n.children[key]
		if !ok {
			continue
		}
		if cand, d := deepest(child, segs[1:], depth+1); cand != nil && d > bestDepth {
			best, bestDepth = cand, d
		}
	}
	return best, bestDepth
}

// ValidSegment reports whether s matches [a-z][a-z0-9_]*.
func ValidSegment(s string) bool {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}
