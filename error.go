package shufflebag

import (
	"errors"

	"github.com/koykov/shufflebag/priority"
)

var (
	ErrUnknownEngine = errors.New("unknown engine")
	// ErrNaNPriority is a panic value on NaN priority (see Config.Source).
	ErrNaNPriority = priority.ErrNaN
)
