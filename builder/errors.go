package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// smaller than the constructor allows.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor or weight function
// that was given no *rand.Rand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownTopology indicates a topology name ByName does not recognize.
var ErrUnknownTopology = errors.New("builder: unknown topology")
