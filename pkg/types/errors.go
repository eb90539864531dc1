package types

import "errors"

// ErrInvalidTimeString возвращается, когда строка не соответствует формату HH:MM
var ErrInvalidTimeString = errors.New("invalid time string format")
