package imgio

import "github.com/pkg/errors"

var (
	ErrNotFound        = errors.New("image not found")
	ErrDecode          = errors.New("image decode failed")
	ErrOverwriteDenied = errors.New("file exists, overwrite denied")
	ErrPath            = errors.New("invalid path")
)
