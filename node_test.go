package huffman

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	n := New(5, "A")
	if n.Weight != 5 {
		t.Errorf("wrong weight: expect 5, actual %d", n.Weight)
	}
	if n.Value != "A" {
		t.Errorf("wrong value: expect %q, actual %q", "A", n.Value)
	}
	if !n.IsLeaf() {
		t.Error("new node should be a leaf")
	}
	if n.Parent != nil {
		t.Error("new node should have no parent")
	}
}

func TestCombine(t *testing.T) {
	left := New(3, "A")
	right := New(7, "B")
	node := Combine(left, right)

	if node.Weight != 10 {
		t.Errorf("wrong weight: expect 10, actual %d", node.Weight)
	}
	if node.Left != left || node.Right != right {
		t.Error("children not set by identity")
	}
	if left.Parent != node || right.Parent != node {
		t.Error("parent back-references not set on children")
	}
	if node.IsLeaf() {
		t.Error("combined node should not be a leaf")
	}
	if node.Value != "" {
		t.Errorf("internal node should carry the zero value, actual %q", node.Value)
	}
	if node.Parent != nil {
		t.Error("combined node should have no parent yet")
	}
}

func TestDirectionFromParent(t *testing.T) {
	left := New(2, "A")
	right := New(2, "B")
	root := Combine(left, right)

	// Equal sibling weights: identity, not weight, must decide direction.
	type testRow struct {
		name   string
		node   *Node[int, string]
		expect byte
	}
	testData := [...]testRow{
		{name: "left", node: left, expect: '0'},
		{name: "right", node: right, expect: '1'},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual, err := row.node.DirectionFromParent()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if actual != row.expect {
				t.Errorf("wrong direction: expect %q, actual %q", row.expect, actual)
			}
		})
	}

	t.Run("root", func(t *testing.T) {
		_, err := root.DirectionFromParent()
		if !errors.Is(err, ErrNoParent) {
			t.Errorf("wrong error: expect %v, actual %v", ErrNoParent, err)
		}
	})
}

func TestCode(t *testing.T) {
	a := New(1, "A")
	b := New(1, "B")
	c := New(2, "C")
	root := Combine(Combine(a, b), c)

	type testRow struct {
		leaf   *Node[int, string]
		expect string
	}
	testData := [...]testRow{
		{leaf: a, expect: "00"},
		{leaf: b, expect: "01"},
		{leaf: c, expect: "1"},
	}
	for _, row := range testData {
		t.Run(row.leaf.Value, func(t *testing.T) {
			actual, err := row.leaf.Code()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if actual != row.expect {
				t.Errorf("wrong code: expect %q, actual %q", row.expect, actual)
			}
		})
	}

	t.Run("internal", func(t *testing.T) {
		_, err := root.Code()
		if !errors.Is(err, ErrNotLeaf) {
			t.Errorf("wrong error: expect %v, actual %v", ErrNotLeaf, err)
		}
	})

	t.Run("root leaf", func(t *testing.T) {
		solo := New(5, "A")
		actual, err := solo.Code()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if actual != "" {
			t.Errorf("wrong code: expect %q, actual %q", "", actual)
		}
	})
}

func TestDepth(t *testing.T) {
	a := New(1, "A")
	b := New(1, "B")
	c := New(2, "C")
	root := Combine(Combine(a, b), c)

	if actual := root.Depth(); actual != 0 {
		t.Errorf("wrong root depth: expect 0, actual %d", actual)
	}
	if actual := c.Depth(); actual != 1 {
		t.Errorf("wrong depth for C: expect 1, actual %d", actual)
	}
	if actual := a.Depth(); actual != 2 {
		t.Errorf("wrong depth for A: expect 2, actual %d", actual)
	}
}
