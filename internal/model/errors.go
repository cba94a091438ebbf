package model

import "errors"

// ErrInvalidArgument reports input that a cipher or generator cannot work with:
// an empty alphabet or key, or a password spec with no usable character classes.
var ErrInvalidArgument = errors.New("invalid argument")
