// Copyright (c) 2026, Transis Project.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package value

import (
	"testing"
)

func selfRefSlice(head interface{}) []interface{} {
	out := []interface{}{head, nil}
	out[1] = out
	return out
}

func TestEqualSelfReferentialSlices(t *testing.T) {
	t.Run("identical-structure", func(t *testing.T) {
		a := selfRefSlice(1)
		b := selfRefSlice(1)
		if !Equal(a, b) {
			t.Fatal("independently built self-referential " +
				"slices with equal heads must be equal")
		}
	})
	t.Run("identity", func(t *testing.T) {
		a := selfRefSlice(1)
		if !Equal(a, a) {
			t.Fatal("a cyclic value must equal itself")
		}
	})
	t.Run("divergent-head", func(t *testing.T) {
		a := selfRefSlice(1)
		b := selfRefSlice(2)
		if Equal(a, b) {
			t.Fatal("a divergent non-cyclic element must make " +
				"cyclic slices unequal")
		}
	})
}

func mutualPair(aName, bName string) (map[string]interface{}, map[string]interface{}) {
	a := map[string]interface{}{"name": aName}
	b := map[string]interface{}{"name": bName}
	a["other"] = b
	b["other"] = a
	return a, b
}

func TestEqualMutualCycles(t *testing.T) {
	t.Run("matching-fields", func(t *testing.T) {
		a1, _ := mutualPair("a", "b")
		a2, _ := mutualPair("a", "b")
		if !Equal(a1, a2) {
			t.Fatal("mutually cyclic objects with matching " +
				"non-cyclic fields must be equal")
		}
	})
	t.Run("divergence-inside-partner", func(t *testing.T) {
		a1, _ := mutualPair("a", "b")
		a2, _ := mutualPair("a", "divergent")
		if Equal(a1, a2) {
			t.Fatal("one divergent non-cyclic field must make " +
				"the pair unequal even though the back " +
				"edges match")
		}
	})
	t.Run("divergence-after-back-edge", func(t *testing.T) {
		a1, b1 := mutualPair("a", "b")
		a2, b2 := mutualPair("a", "b")
		b1["extra"] = 1
		b2["extra"] = 2
		_ = a1
		_ = a2
		if Equal(b1, b2) {
			t.Fatal("divergent fields reachable around the " +
				"cycle must be detected")
		}
	})
	t.Run("asymmetric-link-shape", func(t *testing.T) {
		// a ring of two on one side, a self loop on the other:
		// both graphs bisimulate each other field-for-field
		a := map[string]interface{}{"name": "x"}
		a["other"] = a
		b1 := map[string]interface{}{"name": "x"}
		b2 := map[string]interface{}{"name": "x"}
		b1["other"] = b2
		b2["other"] = b1
		if !Equal(a, b1) {
			t.Fatal("a self loop must bisimulate a two-ring " +
				"with identical fields")
		}
	})
}

func ring(n int, label string) map[string]interface{} {
	first := map[string]interface{}{"label": label}
	prev := first
	for i := 1; i < n; i++ {
		next := map[string]interface{}{"label": label}
		prev["next"] = next
		prev = next
	}
	prev["next"] = first
	return first
}

func TestEqualCycleTermination(t *testing.T) {
	t.Run("large-rings", func(t *testing.T) {
		a := ring(11, "node")
		b := ring(17, "node")
		// must return, and the rings bisimulate
		if !Equal(a, b) {
			t.Fatal("rings with identical labels must be equal")
		}
	})
	t.Run("divergent-rings", func(t *testing.T) {
		a := ring(11, "node")
		b := ring(11, "other")
		if Equal(a, b) {
			t.Fatal("rings with differing labels must be unequal")
		}
	})
	t.Run("cycle-through-arrays-and-objects", func(t *testing.T) {
		mkGraph := func() map[string]interface{} {
			root := map[string]interface{}{"tag": "root"}
			children := []interface{}{nil, "leaf"}
			children[0] = root
			root["children"] = children
			return root
		}
		if !Equal(mkGraph(), mkGraph()) {
			t.Fatal("mixed map/slice cycles must converge")
		}
	})
}

func TestEqualGuardDoesNotLeakAcrossCalls(t *testing.T) {
	a := selfRefSlice(1)
	b := selfRefSlice(1)
	// repeated top-level comparisons each get a fresh guard; a stale
	// guard entry would turn the second comparison's first visit into
	// a spurious "already seen"
	for i := 0; i < 3; i++ {
		if !Equal(a, b) {
			t.Fatalf("comparison %d disagreed with the first", i)
		}
	}
	c := selfRefSlice(2)
	if Equal(a, c) {
		t.Fatal("divergent cyclic slices must stay unequal on " +
			"every call")
	}
}
