// Package random provides the pluggable randomness used to move the board's
// wandering actors. The default provider draws from the operating system's
// cryptographic generator so actor motion cannot be predicted by the host.
package random

import (
	crand "crypto/rand"
	"fmt"
	"math/big"

	xrand "golang.org/x/exp/rand"

	"github.com/vovakirdan/gridwalk/internal/core"
)

// Source draws uniform integers in [0, n).
type Source interface {
	Intn(n int) int
}

// Provider names a Source implementation selectable from configuration.
type Provider string

const (
	ProviderCrypto Provider = "crypto"
	ProviderSeeded Provider = "seeded"
)

// Providers lists every known provider.
var Providers = []Provider{ProviderCrypto, ProviderSeeded}

// Valid returns true if p names a known provider.
func (p Provider) Valid() bool {
	switch p {
	case ProviderCrypto, ProviderSeeded:
		return true
	default:
		return false
	}
}

// New creates a Source for the given provider.
// The seed is only used by ProviderSeeded.
func New(p Provider, seed int64) (Source, error) {
	switch p {
	case ProviderCrypto, "":
		return Crypto{}, nil
	case ProviderSeeded:
		return NewSeeded(seed), nil
	default:
		return nil, fmt.Errorf("random: unknown provider %q", p)
	}
}

// Crypto draws from crypto/rand.
type Crypto struct{}

// Intn returns a uniform integer in [0, n). Panics if n <= 0.
func (Crypto) Intn(n int) int {
	if n <= 0 {
		panic("random: invalid argument to Intn")
	}
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("random: reading system entropy: %v", err))
	}
	return int(v.Int64())
}

// Seeded is a reproducible pseudo-random source for debugging and tests.
type Seeded struct {
	rng *xrand.Rand
}

// NewSeeded creates a seeded source.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: xrand.New(xrand.NewSource(uint64(seed)))}
}

// Intn returns a pseudo-random integer in [0, n).
func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}

// Sequence replays a fixed list of values, cycling when exhausted.
// Each value is reduced modulo n, so a script of {0, 1, 2} maps to axis
// offsets {-1, 0, +1} when used with Delta.
type Sequence struct {
	values []int
	next   int
}

// NewSequence creates a scripted source.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// Intn returns the next scripted value modulo n.
// An empty script always returns 0.
func (s *Sequence) Intn(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Position returns a uniformly random cell on the board.
// The row is drawn before the column.
func Position(src Source) core.Position {
	row := src.Intn(core.ScreenSize)
	col := src.Intn(core.ScreenSize)
	return core.Pos(row, col)
}

// Delta returns a displacement whose axes are independently uniform in {-1, 0, +1}.
// The row offset is drawn before the column offset.
func Delta(src Source) core.Delta {
	row := src.Intn(3) - 1
	col := src.Intn(3) - 1
	return core.Delta{Row: row, Col: col}
}
