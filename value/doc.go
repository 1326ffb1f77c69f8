// Copyright (c) 2026, Transis Project.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

// Package value implements the Transis dynamic value model. It classifies
// arbitrary go values into a small closed set of canonical kinds and
// performs structural deep equality between any two values, including
// values that participate in cyclic reference graphs. The package also
// provides boxed forms of the dynamic data: the central Value type wraps
// any datum with a canonical internal representation, and the Array,
// Params, and Object containers are immutable, the mutation methods
// return new structurally shared copies of the original. Equality over
// cyclic graphs is a bisimulation style equivalence: a back edge into a
// pair of values an ancestor comparison is already working on is assumed
// equal, the judgment is carried by every other reachable part of the
// two structures.
package value
