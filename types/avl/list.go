package avl

import (
	"encoding/json"
	"fmt"
)

// Triple is a structural snapshot of a subtree: the key of its root and
// snapshots of both children, nil for an absent child.
//
// Triple is encoded to JSON as a three element array [key, left, right]
// with null for an absent child.
type Triple[K comparable] struct {
	Key   K
	Left  *Triple[K]
	Right *Triple[K]
}

// MarshalJSON implements json.Marshaler interface.
func (s *Triple[K]) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	return json.Marshal([3]any{s.Key, s.Left, s.Right})
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (s *Triple[K]) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 3 {
		return fmt.Errorf("%w: expected 3 elements, got %d", ErrorTreeInvalidSnapshot, len(raw))
	}
	var result Triple[K]
	if err := json.Unmarshal(raw[0], &result.Key); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[1], &result.Left); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[2], &result.Right); err != nil {
		return err
	}
	*s = result
	return nil
}

// ToList returns the whole tree as nested triples, nil for an empty tree.
func (t *Tree[K]) ToList() *Triple[K] {
	if !t.root.Valid() {
		return nil
	}
	return t.toList(t.root)
}

func (t *Tree[K]) toList(id NodeID) *Triple[K] {
	n := t.alloc.get(id)
	s := &Triple[K]{Key: n.key}
	if n.left.Valid() {
		s.Left = t.toList(n.left)
	}
	if n.right.Valid() {
		s.Right = t.toList(n.right)
	}
	return s
}
