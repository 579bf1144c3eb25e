// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import "github.com/katalvlaran/paretopath/point"

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
)

// Common cost vectors used across core tests (avoid magic numbers in test bodies).
var (
	Cost11 = point.Of(1, 1)
	Cost12 = point.Of(1, 2)
	Cost35 = point.Of(3, 5)
	Cost3D = point.Of(1, 2, 3)
)

// Concurrency sizes.
const (
	NConcurrentAdds = 200
	NReaders        = 20
)
