package seqtree

import (
	"bytes"
	"strings"
	"testing"
)

func TestDotOutput(t *testing.T) {
	tree := treeOf(1, 2, 3)
	var bf bytes.Buffer
	tree.Dot(&bf)
	out := bf.String()
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Errorf("DOT output does not start a digraph: %q", out)
	}
	if !strings.Contains(out, "fillcolor=black") || !strings.Contains(out, "fillcolor=red") {
		t.Error("expected both black and red nodes in a 3 element tree")
	}
}

func TestDotOutputEmpty(t *testing.T) {
	tree := New[int]()
	var bf bytes.Buffer
	tree.Dot(&bf)
	if !strings.Contains(bf.String(), "}") {
		t.Error("DOT output for empty tree should still close the graph")
	}
}

func TestFprint(t *testing.T) {
	tree := treeOf(1, 2, 3)
	var bf bytes.Buffer
	tree.Fprint(&bf)
	// root is 2 after the single rotation of three appends
	if !strings.Contains(bf.String(), "2,sz3,bh1") {
		t.Errorf("unexpected dump: %q", bf.String())
	}
}

func TestFprintEmpty(t *testing.T) {
	tree := New[int]()
	var bf bytes.Buffer
	tree.Fprint(&bf)
	if strings.TrimSpace(bf.String()) != "x" {
		t.Errorf("empty tree should print as 'x', got %q", bf.String())
	}
}
