package token

import "sync"

// FakeGenerator returns the configured tokens in order and repeats the last
// one once they are exhausted.
type FakeGenerator struct {
	Tokens    []Value
	generated int
	lock      sync.Mutex
}

func NewFakeGenerator(tokens ...string) *FakeGenerator {
	if len(tokens) == 0 {
		panic("at least one token is required")
	}
	values := make([]Value, 0, len(tokens))
	for _, t := range tokens {
		values = append(values, Value(t))
	}
	return &FakeGenerator{Tokens: values}
}

func (g *FakeGenerator) GenerateToken() Value {
	g.lock.Lock()
	defer g.lock.Unlock()
	ix := g.generated
	if ix >= len(g.Tokens) {
		ix = len(g.Tokens) - 1
	}
	g.generated++
	return g.Tokens[ix]
}

func (g *FakeGenerator) GeneratedCount() int {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.generated
}
