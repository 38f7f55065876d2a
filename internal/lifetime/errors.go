package lifetime

import "errors"

// Domain errors for model construction and sampling.
var (
	// ErrDegenerateCalibration indicates calibration points that do not define a line.
	ErrDegenerateCalibration = errors.New("lifetime: calibration inputs must differ and be finite")

	// ErrInvalidRatio indicates a unit conversion ratio that is zero, negative or not finite.
	ErrInvalidRatio = errors.New("lifetime: conversion ratio must be positive and finite")

	// ErrInvalidSamples indicates a sample domain or count that cannot produce a curve.
	ErrInvalidSamples = errors.New("lifetime: invalid sample range")

	// ErrUnorderedChallenges indicates challenge inputs that are not strictly ascending.
	ErrUnorderedChallenges = errors.New("lifetime: challenge levels must be strictly ascending")
)
