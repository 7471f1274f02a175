package engine

import "errors"

var (
	// ErrNilSequence is returned when Sort receives a nil slice.
	ErrNilSequence = errors.New("sequence is nil")
	// ErrNegativeDelay is returned for a step delay below zero.
	ErrNegativeDelay = errors.New("step delay is negative")
	// ErrUnorderable is returned when an element has no total order, such as NaN.
	ErrUnorderable = errors.New("sequence contains an unorderable element")
	// ErrUnknownAlgorithm is returned for an algorithm outside the known set.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)
