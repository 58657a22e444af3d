// Copyright (c) 2024, The Vecdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "errors"

var (
	// ErrEmptyInput is returned when a reduction over points
	// (centroid, bounds) is given no points to reduce.
	ErrEmptyInput = errors.New("empty input: no points provided")

	// ErrDivisionByZero is returned by checked division operations
	// when a divisor component is zero.
	ErrDivisionByZero = errors.New("division by zero")
)
