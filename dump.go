package seqtree

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Debug output for development sessions: a Graphviz DOT dump of the node
// graph and a compact colored console rendering. Neither is part of the
// production contract.

type nodeids[T any] struct {
	idTable map[*Node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*Node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(node *Node[T]) int {
	return ids.idTable[node]
}

func (ids *nodeids[T]) alloc(node *Node[T]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Each node is labeled with its value, subtree
// size and black-height, and filled with its red-black color.
func (t *Tree[T]) Dot(w io.Writer) {
	if _, err := io.WriteString(w, "strict digraph {\n"); err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
		return
	}
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12,style=filled,fontcolor=white];\n")
	ids := newtable[T]()
	nodelist, edgelist := "", ""
	var walk func(nd *Node[T])
	walk = func(nd *Node[T]) {
		ID := ids.alloc(nd)
		label := fmt.Sprintf("%v\\nsz%d bh%d", nd.value, nd.size, nd.blackHeight)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(nd))
		for _, ch := range []*Node[T]{nd.left, nd.right} {
			if ch == nil {
				nilid := ID + 10000
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			walk(ch)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.find(ch))
		}
	}
	if t.head.left != nil {
		walk(t.head.left)
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=gray,shape=point,fixedsize=true,width=.1]"
}

func nodeDotStyles[T any](nd *Node[T]) string {
	s := ",shape=circle"
	if nd.black {
		s += ",fillcolor=black"
	} else {
		s += ",fillcolor=red"
	}
	return s
}

// Fprint writes a parenthesized rendering of the tree structure to w, one
// node as "value,szN,bhH", red nodes colorized. Children follow their parent
// in parentheses, left before right, absent children printed as "x".
func (t *Tree[T]) Fprint(w io.Writer) {
	red := color.New(color.FgRed)
	if t.head.left == nil {
		fmt.Fprintln(w, "x")
		return
	}
	fprintNode(w, t.head.left, red)
	fmt.Fprintln(w)
}

// Print is Fprint on standard output, with colors suppressed when stdout is
// not a terminal (the same gate used for terminal-aware color output).
func (t *Tree[T]) Print() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		prev := color.NoColor
		color.NoColor = true
		defer func() { color.NoColor = prev }()
	}
	t.Fprint(os.Stdout)
}

func fprintNode[T any](w io.Writer, nd *Node[T], red *color.Color) {
	if nd == nil {
		fmt.Fprint(w, "x ")
		return
	}
	if nd.black {
		fmt.Fprintf(w, "%v,sz%d,bh%d ", nd.value, nd.size, nd.blackHeight)
	} else {
		red.Fprintf(w, "%v,sz%d,bh%d ", nd.value, nd.size, nd.blackHeight)
	}
	if nd.left != nil || nd.right != nil {
		fmt.Fprint(w, "( ")
		fprintNode(w, nd.left, red)
		fprintNode(w, nd.right, red)
		fmt.Fprint(w, ") ")
	}
}
