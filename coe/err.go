package coe

import (
	"errors"

	"github.com/ezrec/coe65/translate"
)

var f = translate.From

var (
	ErrClosed   = errors.New(f("writer closed"))
	ErrGeometry = errors.New(f("fill geometry invalid"))
)

type ErrPolicyInvalid string

func (err ErrPolicyInvalid) Error() string {
	return f("'%v' is not a formatting policy", string(err))
}

// ErrValue reports a COE entry that is not a byte.
type ErrValue struct {
	LineNo int
	Value  string
}

func (err ErrValue) Error() string {
	return f("line %d '%v' is not a byte value", err.LineNo, err.Value)
}
