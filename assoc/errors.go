package assoc

import "github.com/pkg/errors"

// ErrNotFound is returned by Lookup when no record has the requested key
var ErrNotFound = errors.New("record not found")

func notFound[K comparable](key K) error {
	return errors.Wrapf(ErrNotFound, "key %v", key)
}
