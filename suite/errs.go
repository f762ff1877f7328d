package suite

import "errors"

var (
	ErrConfig = errors.New("invalid suite config")
	ErrVerify = errors.New("solver disagrees with diagram")
)
