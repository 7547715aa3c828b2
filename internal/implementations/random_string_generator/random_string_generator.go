package randomstringgenerator

import (
	"crypto/rand"
	"math/big"
	"onboarding/internal/core/domain/token"
)

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type Generator struct {
	chars  []rune
	length int
}

func NewGenerator(length int) *Generator {
	if length <= 0 {
		panic("token length must be positive")
	}
	return &Generator{chars: []rune(alphabet), length: length}
}

func (g *Generator) GenerateToken() token.Value {
	return token.Value(g.generate())
}

func (g *Generator) generate() string {
	max := big.NewInt(int64(len(g.chars)))
	b := make([]rune, g.length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic("could not read random bytes: " + err.Error())
		}
		b[i] = g.chars[n.Int64()]
	}
	return string(b)
}
