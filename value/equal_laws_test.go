// Copyright (c) 2026, Transis Project.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package value

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// catalog holds one representative per kind plus assorted composites;
// none of them carries the Equaler capability, so the structural laws
// must hold across the whole square.
func catalog() []interface{} {
	return []interface{}{
		nil,
		Undefined(),
		true,
		false,
		"foo",
		"bar",
		float64(0),
		float64(3),
		int(3),
		time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		time.Date(2026, 1, 2, 3, 4, 6, 0, time.UTC),
		RegexpNew("a+", "gi"),
		RegexpNew("a+", "m"),
		[]interface{}{},
		[]interface{}{1.0, 2.0},
		ArrayWith(1, 2),
		ParamsOf(1, 2),
		ObjectWith(PairNew("a", 1)),
		map[string]interface{}{"a": 1.0},
		ValueNew(3),
		ValueNew("foo"),
		selfRefSlice(1),
	}
}

func TestEqualReflexive(t *testing.T) {
	for _, v := range catalog() {
		require.True(t, Equal(v, v), "value %v must equal itself", v)
	}
	// the single exception: the not-a-number sentinel
	nan := math.NaN()
	require.False(t, Equal(nan, nan),
		"the not-a-number sentinel must not equal itself")
}

func TestEqualSymmetric(t *testing.T) {
	vs := catalog()
	for i, a := range vs {
		for j, b := range vs {
			require.Equal(t, Equal(a, b), Equal(b, a),
				"Equal must be symmetric on the "+
					"non-delegated path (%d, %d)", i, j)
		}
	}
}

func TestEqualDeterministic(t *testing.T) {
	vs := catalog()
	for _, a := range vs {
		for _, b := range vs {
			first := Equal(a, b)
			for n := 0; n < 3; n++ {
				require.Equal(t, first, Equal(a, b))
			}
		}
	}
}
