// Copyright (c) 2026, Transis Project.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package value

import (
	"testing"
)

func testCollectionArray(cons func(sz int) *Array, t *testing.T) {
	t.Run("At/coll.Assoc(X,Y);coll.At(X)==Y",
		func(t *testing.T) {
			coll := cons(1)
			index := 0
			val := 10
			coll = coll.Assoc(index, val)
			got := coll.At(index)
			assert(Equal(got, ValueNew(val)), func() {
				t.Fatalf("expected %v, got %v\n", val, got)
			})
			coll = cons(4)
			index = 3
			val = 10
			coll = coll.Assoc(index, val)
			got = coll.At(index)
			assert(Equal(got, ValueNew(val)), func() {
				t.Fatalf("expected %v, got %v\n", val, got)
			})
		})
	t.Run("At/coll.At(inval)returns nil",
		func(t *testing.T) {
			coll := cons(1)
			assert(coll.At(2) == nil, func() {
				t.Fatal("expected nil for an absent index")
			})
			assert(coll.At(-1) == nil, func() {
				t.Fatal("expected nil for a negative index")
			})
		})
	t.Run("Find", func(t *testing.T) {
		coll := cons(2)
		v, ok := coll.Find(1)
		assert(ok && v != nil, func() {
			t.Fatal("expected to find index 1")
		})
		_, ok = coll.Find(2)
		assert(!ok, func() {
			t.Fatal("expected not to find index 2")
		})
	})
	t.Run("Contains", func(t *testing.T) {
		coll := cons(2)
		assert(coll.Contains(1), func() {
			t.Fatal("expected the index to exist")
		})
		assert(!coll.Contains(2), func() {
			t.Fatal("expected the index not to exist")
		})
	})
	t.Run("Length/sz:=coll.Length();coll.Append(X);coll.Length()==sz+1",
		func(t *testing.T) {
			coll := cons(0)
			sz := coll.Length()
			coll = coll.Append(1)
			assert(coll.Length() == sz+1, func() {
				t.Fatalf("expected %v, got %v\n", sz+1,
					coll.Length())
			})
		})
	t.Run("Delete", func(t *testing.T) {
		sz := cons(2).Delete(1).Length()
		assert(sz == 1, func() {
			t.Fatalf("expected %v, got %v\n", 1, sz)
		})
	})
	t.Run("Range/indices-and-values", func(t *testing.T) {
		var count, expCount int
		coll := cons(10)
		for i := 0; i < 10; i++ {
			expCount += i
		}
		coll.Range(func(idx int, elem *Value) {
			count += int(elem.AsNumber())
		})
		assert(count == expCount, func() {
			t.Fatalf("expected %v, got %v\n", expCount, count)
		})
	})
	t.Run("Range/early-termination", func(t *testing.T) {
		var count int
		cons(10).Range(func(*Value) bool {
			count++
			return count < 3
		})
		assert(count == 3, func() {
			t.Fatalf("expected %v, got %v\n", 3, count)
		})
	})
	t.Run("Range/indices-only", func(t *testing.T) {
		sum := 0
		cons(3).Range(func(idx int) {
			sum += idx
		})
		assert(sum == 3, func() {
			t.Fatalf("expected %v, got %v\n", 3, sum)
		})
	})
	t.Run("immutability", func(t *testing.T) {
		orig := cons(2)
		origLen := orig.Length()
		orig.Append(10)
		orig.Assoc(0, 10)
		orig.Delete(0)
		assert(orig.Length() == origLen, func() {
			t.Fatal("mutation methods must not change " +
				"the original")
		})
		assert(Equal(orig.At(0), ValueNew(0)), func() {
			t.Fatal("mutation methods must not change " +
				"the original's elements")
		})
	})
}

func TestArray(t *testing.T) {
	testCollectionArray(func(sz int) *Array {
		elems := make([]interface{}, sz)
		for i := 0; i < sz; i++ {
			elems[i] = i
		}
		return ArrayFrom(elems)
	}, t)
}

func TestArrayWith(t *testing.T) {
	arr := ArrayWith(1, "two", true)
	assert(arr.Length() == 3, func() {
		t.Fatalf("expected 3 elements, got %v", arr.Length())
	})
	assert(Equal(arr.At(1), "two"), func() {
		t.Fatalf("expected two, got %v", arr.At(1))
	})
}

func TestArrayAssocBackfills(t *testing.T) {
	arr := ArrayNew().Assoc(2, 5)
	assert(arr.Length() == 3, func() {
		t.Fatalf("expected 3 elements, got %v", arr.Length())
	})
	assert(arr.At(0).IsUndefined(), func() {
		t.Fatal("skipped indices must hold the undefined value")
	})
	assert(Equal(arr.At(2), 5), func() {
		t.Fatalf("expected 5, got %v", arr.At(2))
	})
	assert(ArrayNew().Assoc(-1, 5).Length() == 0, func() {
		t.Fatal("a negative index must leave the array unchanged")
	})
}

func TestArrayString(t *testing.T) {
	got := ArrayWith(1, "two").String()
	assert(got == "[1, two]", func() {
		t.Fatalf("expected [1, two], got %v", got)
	})
}

func TestArrayToNative(t *testing.T) {
	native, isSlice := ArrayWith(1, 2).toNative().([]interface{})
	assert(isSlice && len(native) == 2, func() {
		t.Fatal("expected a native slice of two elements")
	})
	assert(Equal(native[0], 1), func() {
		t.Fatal("native elements must unbox")
	})
}
