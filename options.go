package random

import "github.com/pkg/errors"

type config struct {
	source  func() (UniformSource, error)
	entropy func() (uint64, error)
}

// Option configures the source of a generator built by New or Clone.
type Option func(*config) error

// Seed makes the generator deterministic: generators built with the
// same seed produce the same sequence of variates.
func Seed(seed uint64) Option {
	return func(c *config) error {
		c.source = func() (UniformSource, error) {
			return NewPCGSource(seed), nil
		}
		return nil
	}
}

// SeedString is Seed for textual seeds. The string is hashed with
// BLAKE2b and the leading 8 bytes seed the PCG source.
func SeedString(seed string) Option {
	return Seed(seedFromString(seed))
}

// KeyString seeds the generator with a Salsa20 keystream whose key is
// the BLAKE2b-256 digest of key.
func KeyString(key string) Option {
	return func(c *config) error {
		k := keyFromString(key)
		c.source = func() (UniformSource, error) {
			return NewKeyedSource(k), nil
		}
		return nil
	}
}

// Source makes the generator draw from src. The caller must not hand
// the same src to more than one generator.
//
// A nil src selects the default, entropy seeded, source.
func Source(src UniformSource) Option {
	return func(c *config) error {
		if src == nil {
			c.source = nil
			return nil
		}
		c.source = func() (UniformSource, error) {
			return src, nil
		}
		return nil
	}
}

// Entropy replaces the seed provider used when no seed or source is
// given. The default reads from crypto/rand. Clones inherit it.
func Entropy(entropy func() (uint64, error)) Option {
	return func(c *config) error {
		if entropy == nil {
			return errors.New("entropy provider must not be nil")
		}
		c.entropy = entropy
		return nil
	}
}

func defaultSource(entropy func() (uint64, error)) (UniformSource, error) {
	seed, err := entropy()
	if err != nil {
		return nil, errors.Wrap(err, "reading entropy for unseeded source")
	}
	return NewPCGSource(seed), nil
}
