// SPDX-License-Identifier: MIT
// Package paths: sentinel error set.
// Every public routine returns one of these sentinels, possibly wrapped with
// call-site context via fmt.Errorf("...: %w", ErrX). Tests match with errors.Is.
// No routine panics on user-triggered conditions; WithWorkers is the only
// constructor that panics, and only on a negative count (programmer error).

package paths

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive candidate count.
	ErrInvalidDimensions = errors.New("paths: candidate count must be > 0")

	// ErrOutOfRange indicates a candidate index outside [0, N).
	ErrOutOfRange = errors.New("paths: candidate index out of range")

	// ErrSelfPair indicates a query for the strength between a candidate and itself.
	ErrSelfPair = errors.New("paths: candidates have no preference to themselves")

	// ErrNilPaths indicates a nil *Paths argument.
	ErrNilPaths = errors.New("paths: nil matrix")

	// ErrDimensionMismatch indicates a ballot whose rank count differs from N,
	// or two matrices of different order.
	ErrDimensionMismatch = errors.New("paths: dimension mismatch")
)
