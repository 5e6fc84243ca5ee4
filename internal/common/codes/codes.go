package codes

import (
	"math/rand"
	"sync"
	"time"
)

// Verification codes are 5-digit integers, inclusive on both ends.
const (
	CodeMin = 10000
	CodeMax = 99999
)

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go lessonbot/internal/common/codes Generator

// Generator produces verification codes
type Generator interface {
	Generate() int
}

// Config for the code generator
type Config struct {
	// Optional seed for testing
	Seed int64
}

// DefaultGenerator draws uniformly random codes in [CodeMin, CodeMax]
type DefaultGenerator struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new code generator
func New(cfg *Config) *DefaultGenerator {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &DefaultGenerator{
		random: rand.New(source),
	}
}

// Generate returns a random 5-digit verification code.
// Issues can arrive from many sessions at once, so access is serialized.
func (g *DefaultGenerator) Generate() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return CodeMin + g.random.Intn(CodeMax-CodeMin+1)
}
