package rays3d

import "errors"

var (
	// ErrConfiguration reports invalid construction parameters (zero up vector,
	// non-positive radius, zero plane normal, bad mesh indices...).
	ErrConfiguration = errors.New("configuration error")
	// ErrDomain reports a computation outside its domain, e.g. normalizing a zero vector.
	ErrDomain = errors.New("domain error")
	// ErrIndex reports pixel coordinates outside the camera resolution.
	ErrIndex = errors.New("index error")
)
