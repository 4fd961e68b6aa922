package roomcode

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/KirkDiggler/showdown/internal/roomcode Generator

// Generator produces shareable room codes
type Generator interface {
	// NewCode returns a new candidate room code
	NewCode() string
}

// alphabet omits characters that read ambiguously in a shared link (0/O, 1/I)
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// DefaultCodeLength is the code length used when none is configured
const DefaultCodeLength = 6

// Config for the room code generator
type Config struct {
	// Length of the generated codes
	Length int

	// Optional seed for testing
	Seed int64
}

// randomGenerator implements the Generator interface with a seeded source
type randomGenerator struct {
	mu     sync.Mutex
	random *rand.Rand
	length int
}

// New creates a new room code generator
func New(cfg *Config) *randomGenerator {
	length := DefaultCodeLength
	var seed int64

	if cfg != nil {
		if cfg.Length > 0 {
			length = cfg.Length
		}
		seed = cfg.Seed
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &randomGenerator{
		random: rand.New(rand.NewSource(seed)),
		length: length,
	}
}

// NewCode returns a new candidate room code. Uniqueness is the caller's
// concern; codes are checked against the room store before use.
func (g *randomGenerator) NewCode() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	b := make([]byte, g.length)
	for i := range b {
		b[i] = alphabet[g.random.Intn(len(alphabet))]
	}
	return string(b)
}
