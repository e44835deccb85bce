package domain

import "errors"

// ErrEmptyResult is returned when a workflow result set contains no records,
// so there is no terminal record to render.
var ErrEmptyResult = errors.New("empty workflow result")

// ErrEmptyTransition is returned when a state transition carries no node
// label, so there is no step name to render.
var ErrEmptyTransition = errors.New("state transition has no node label")
