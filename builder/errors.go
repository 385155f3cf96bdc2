package builder

import "errors"

// ErrTooFewVertices indicates a topology parameter below its minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic topology built without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownTopology indicates a topology name ParseTopology does not know.
var ErrUnknownTopology = errors.New("builder: unknown topology")
