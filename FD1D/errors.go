package FD1D

import "errors"

var (
	// ErrUnsupportedStencil is returned for a (derivative, accuracy) pair absent from the stencil table.
	ErrUnsupportedStencil = errors.New("unsupported stencil")

	// ErrConfiguration covers mesh sizes too small for a stencil and invalid numeric inputs.
	ErrConfiguration = errors.New("invalid configuration")
)
