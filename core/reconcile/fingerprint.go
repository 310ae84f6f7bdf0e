package reconcile

import (
	"catalog-manager/core/catalog"

	"github.com/mitchellh/hashstructure"
)

// Fingerprint hashes a stream descriptor. Supported sync modes are hashed as a
// set, everything else in order.
func Fingerprint(d *catalog.StreamDescriptor) (uint64, error) {
	return hashstructure.Hash(d, nil)
}

// sameShape reports whether two descriptors hash identically.
// Any hashing failure counts as a change.
func sameShape(a, b *catalog.StreamDescriptor) bool {
	if a == nil || b == nil {
		return false
	}
	ha, err := Fingerprint(a)
	if err != nil {
		return false
	}
	hb, err := Fingerprint(b)
	if err != nil {
		return false
	}
	return ha == hb
}
