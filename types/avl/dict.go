package avl

import (
	"github.com/tidwall/hashmap"
)

// ToDict returns a map from key to node handle for every node of the tree.
func (t *Tree[K]) ToDict() *hashmap.Map[K, Node[K]] {
	dict := hashmap.New[K, Node[K]](t.size)
	if t.root.Valid() {
		t.traverse(t.root, func(node Node[K], _ ...any) {
			dict.Set(node.Key(), node)
		}, nil)
	}
	return dict
}
