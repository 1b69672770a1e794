// SPDX-License-Identifier: MIT
// Package: lvsteiner/builder
//
// errors.go - sentinel errors. Constructors wrap them as
// fmt.Errorf("%s: ...: %w", method, ..., Err*), so callers branch with errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the topology minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a failure not covered by a more specific sentinel.
var ErrConstructFailed = errors.New("builder: construction failed")
