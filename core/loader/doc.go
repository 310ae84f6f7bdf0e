// Package loader registers features on the Fiber app.
//
// Each feature implements the Feature interface:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps features in registration order and LoadAll loads the
// enabled ones, failing on the first error or on a duplicate name.
package loader
