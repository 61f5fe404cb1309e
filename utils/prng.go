package utils

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// KeyedPRNG is a deterministic stream of pseudo random bytes generated
// with the blake2b XOF. Two instances with the same seed produce the same
// stream, which keeps randomized tests reproducible.
type KeyedPRNG struct {
	seed []byte
	xof  blake2b.XOF
}

// NewKeyedPRNG returns a prng seeded with the given bytes.
func NewKeyedPRNG(seed []byte) (*KeyedPRNG, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		return nil, err
	}
	p := &KeyedPRNG{seed: append([]byte(nil), seed...), xof: xof}
	if _, err := p.xof.Write(p.seed); err != nil {
		return nil, err
	}
	return p, nil
}

// Read fills b with the next bytes of the stream.
func (p *KeyedPRNG) Read(b []byte) (int, error) {
	return p.xof.Read(b)
}

// Uint64 returns the next eight bytes of the stream as an integer.
func (p *KeyedPRNG) Uint64() uint64 {
	var b [8]byte
	if _, err := p.xof.Read(b[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b[:])
}

// IntN returns a value in [0, n) drawn from the stream. Panics if n is
// not positive.
func (p *KeyedPRNG) IntN(n int) int {
	if n <= 0 {
		panic("cannot IntN: n must be positive")
	}
	return int(p.Uint64() % uint64(n))
}

// Reset rewinds the stream to its seeded state.
func (p *KeyedPRNG) Reset() {
	p.xof.Reset()
	if _, err := p.xof.Write(p.seed); err != nil {
		panic(err)
	}
}
