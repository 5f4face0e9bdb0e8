package random

import (
	crand "crypto/rand"
	"encoding/binary"

	rng "github.com/leesper/go_rng"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/salsa20"
	"golang.org/x/exp/rand"
)

// UniformSource produces uniform variates in [0, 1).
//
// Implementations are not required to be safe for concurrent use.
type UniformSource interface {
	Float64() float64
}

// uniform is the generator's handle on its source. It never interprets
// a seed: seeding happens when the UniformSource is built.
type uniform struct {
	src UniformSource
}

func (u *uniform) next() float64 {
	return u.src.Float64()
}

// NewPCGSource returns a PCG source seeded with seed. This is the
// algorithm behind Seed and SeedString.
func NewPCGSource(seed uint64) UniformSource {
	return rand.New(rand.NewSource(seed))
}

// NewMathSource returns a go_rng uniform generator seeded with seed.
// It is backed by the math/rand algorithm.
func NewMathSource(seed int64) UniformSource {
	return rng.NewUniformGenerator(seed)
}

const keyedBlockSize = 64

type keyedSource struct {
	key   [32]byte
	block uint64
	buf   [keyedBlockSize]byte
	off   int
}

// NewKeyedSource returns a deterministic source reading the Salsa20
// keystream of key. Each block of 64 bytes uses its index as nonce.
func NewKeyedSource(key [32]byte) UniformSource {
	return &keyedSource{key: key, off: keyedBlockSize}
}

func (k *keyedSource) refill() {
	var nonce [8]byte
	binary.BigEndian.PutUint64(nonce[:], k.block)
	var zero [keyedBlockSize]byte
	salsa20.XORKeyStream(k.buf[:], zero[:], nonce[:], &k.key)
	k.block++
	k.off = 0
}

func (k *keyedSource) Uint64() uint64 {
	if k.off+8 > keyedBlockSize {
		k.refill()
	}
	v := binary.BigEndian.Uint64(k.buf[k.off:])
	k.off += 8
	return v
}

func (k *keyedSource) Float64() float64 {
	return float64(k.Uint64()>>11) / (1 << 53)
}

func seedFromString(s string) uint64 {
	sum := blake2b.Sum256([]byte(s))
	return binary.BigEndian.Uint64(sum[:8])
}

func keyFromString(s string) [32]byte {
	return blake2b.Sum256([]byte(s))
}

func cryptoEntropy() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}
