package priority

import "errors"

var ErrNaN = errors.New("priority source returned NaN")
