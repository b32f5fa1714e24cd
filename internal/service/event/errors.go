package event

import "errors"

var ErrUndefinedStatus = errors.New("undefined route status")
