package models

import "errors"

// ErrUnknownLane indicates input that names none of the three lanes.
var ErrUnknownLane = errors.New("unknown lane")
