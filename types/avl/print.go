package avl

import (
	"fmt"
	"io"
	"strings"
)

// branch controls the ASCII print routine.
type branch int

const (
	branchRoot branch = iota
	branchLeft
	branchRight
)

// String returns compact form of the tree: key(left,right) for every node,
// a leaf is printed as its key alone and an absent child as "-".
func (t *Tree[K]) String() string {
	if !t.root.Valid() {
		return "-"
	}
	var sb strings.Builder
	t.writeCompact(&sb, t.root)
	return sb.String()
}

func (t *Tree[K]) writeCompact(sb *strings.Builder, id NodeID) {
	n := t.alloc.get(id)
	fmt.Fprint(sb, n.key)
	if !n.left.Valid() && !n.right.Valid() {
		return
	}
	sb.WriteByte('(')
	if n.left.Valid() {
		t.writeCompact(sb, n.left)
	} else {
		sb.WriteByte('-')
	}
	if n.right.Valid() {
		sb.WriteByte(',')
		t.writeCompact(sb, n.right)
	}
	sb.WriteByte(')')
}

// Fprint writes an ASCII graphic representation of the tree rotated by 90
// degrees: the right branch on top, the left one below. Every node shows
// its key, the key of its parent and its balance factor.
func (t *Tree[K]) Fprint(w io.Writer) error {
	var sb strings.Builder
	if t.root.Valid() {
		t.printNode(&sb, t.root, "", branchRoot)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func (t *Tree[K]) printNode(sb *strings.Builder, id NodeID, prefix string, br branch) {
	n := t.alloc.get(id)
	if n.right.Valid() {
		p := "       "
		if br == branchLeft {
			p = "|      "
		}
		t.printNode(sb, n.right, prefix+p, branchRight)
	}
	switch br {
	case branchRoot:
		fmt.Fprintf(sb, "%s|------+ ", prefix)
	case branchLeft:
		fmt.Fprintf(sb, "%s\\------+ ", prefix)
	case branchRight:
		fmt.Fprintf(sb, "%s/------+ ", prefix)
	}
	if n.parent.Valid() {
		fmt.Fprintf(sb, "%v ^%v %+d\n", n.key, t.alloc.get(n.parent).key, n.bf)
	} else {
		fmt.Fprintf(sb, "%v ^- %+d\n", n.key, n.bf)
	}
	if n.left.Valid() {
		p := "       "
		if br == branchRight {
			p = "|      "
		}
		t.printNode(sb, n.left, prefix+p, branchLeft)
	}
}

// RenderDotGraph writes the tree in graphviz dot format.
func (t *Tree[K]) RenderDotGraph(w io.Writer) error {
	_, err := fmt.Fprintln(w, "digraph G {")
	if err != nil {
		return err
	}
	if t.root.Valid() {
		if err = t.renderDotNode(w, t.root); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w, "}")
	return err
}

func (t *Tree[K]) renderDotNode(w io.Writer, id NodeID) error {
	n := t.alloc.get(id)
	_, err := fmt.Fprintf(w, "n%d [label=\"key:%v bf:%d\"];\n", id, n.key, n.bf)
	if err != nil {
		return err
	}
	if n.parent.Valid() {
		direction := "r"
		if t.alloc.get(n.parent).left == id {
			direction = "l"
		}
		_, err = fmt.Fprintf(w, "n%d -> n%d [label=\"%s\"];\n", n.parent, id, direction)
		if err != nil {
			return err
		}
	}
	for _, child := range []NodeID{n.left, n.right} {
		if !child.Valid() {
			continue
		}
		if err = t.renderDotNode(w, child); err != nil {
			return err
		}
	}
	return nil
}
