package tdigest

import (
	"errors"

	random "github.com/caio/go-random"
)

type tdigestOption func(*TDigest) error

// Compression sets the digest compression
//
// The compression parameter rules the threshold in which samples are
// merged together - the more often distinct samples are merged the more
// precision is lost. Compression should be tuned according to your data
// distribution, but a value of 100 (the default) is often good enough.
//
// Compression must be a value greater of equal to 1, New fails
// otherwise.
func Compression(compression float64) tdigestOption {
	return func(t *TDigest) error {
		if !(compression >= 1) {
			return errors.New("Compression should be >= 1")
		}
		t.compression = compression
		return nil
	}
}

// RandomNumberGenerator sets the source used to break ties between
// merge candidates and to shuffle centroids on compression.
func RandomNumberGenerator(rng random.UniformSource) tdigestOption {
	return func(t *TDigest) error {
		if rng == nil {
			return errors.New("Random number generator must not be nil")
		}
		t.rng = rng
		return nil
	}
}
