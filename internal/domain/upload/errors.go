package upload

import "errors"

var ErrTooManyFiles = errors.New("too many files in one batch")
