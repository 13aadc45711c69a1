package pixel

import "github.com/pkg/errors"

var (
	ErrInvalidOption     = errors.New("invalid option")
	ErrInvalidAngle      = errors.New("invalid angle")
	ErrDimensionMismatch = errors.New("dimension mismatch")
)
