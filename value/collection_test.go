// Copyright (c) 2026, Transis Project.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package value

func assert(expr bool, ifFalse func()) {
	if !expr {
		ifFalse()
	}
}
