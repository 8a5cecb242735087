package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// StrategyRandom produces two base-36 fragments from a process-seeded PRNG.
	StrategyRandom = "random"
	// StrategyUUID produces a UUIDv4 without dashes.
	StrategyUUID = "uuid"

	fragmentLength = 13
	alphabet       = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// ErrUnknownStrategy is returned by New for an unsupported strategy name.
var ErrUnknownStrategy = errors.New("unknown id strategy")

// IDGenerator produces identifiers for synthesized links.
// Identifiers are not guaranteed to be unique.
type IDGenerator interface {
	GenerateID() (string, error)
}

// New returns the generator registered under strategy.
func New(strategy string) (IDGenerator, error) {
	switch strategy {
	case "", StrategyRandom:
		return NewRandomGenerator(uint64(time.Now().UnixNano())), nil
	case StrategyUUID:
		return UUIDGenerator{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

// RandomGenerator is a non-cryptographic generator safe for concurrent use.
type RandomGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomGenerator creates a RandomGenerator with a fixed seed.
func NewRandomGenerator(seed uint64) *RandomGenerator {
	return &RandomGenerator{
		rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// GenerateID returns two concatenated base-36 fragments.
func (g *RandomGenerator) GenerateID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var b strings.Builder
	b.Grow(2 * fragmentLength)
	g.fragment(&b)
	g.fragment(&b)

	return b.String(), nil
}

func (g *RandomGenerator) fragment(b *strings.Builder) {
	for i := 0; i < fragmentLength; i++ {
		b.WriteByte(alphabet[g.rnd.IntN(len(alphabet))])
	}
}

// UUIDGenerator returns random UUIDs rendered as 32 lowercase hex characters.
type UUIDGenerator struct{}

// GenerateID returns a new UUIDv4 without separators.
func (UUIDGenerator) GenerateID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return strings.ReplaceAll(id.String(), "-", ""), nil
}
