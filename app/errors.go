package app

import "errors"

// Construction errors. They are returned wrapped with the driver's cause.
var (
	// ErrNoAdapter is returned when no adapter matches the requested options.
	ErrNoAdapter = errors.New("app: no suitable GPU adapter")

	// ErrNoDevice is returned when the adapter refuses to create a device.
	ErrNoDevice = errors.New("app: failed to create GPU device")

	// ErrSurface is returned when the window surface cannot be created,
	// configured or acquired.
	ErrSurface = errors.New("app: surface error")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("app: invalid config")
)
