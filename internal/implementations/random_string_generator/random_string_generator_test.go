package randomstringgenerator

import (
	"onboarding/internal/core/domain/token"
	"strings"
	"testing"
)

func TestTokenGenerator(t *testing.T) {
	generator := NewGenerator(32)
	tokens := make(map[token.Value]struct{})
	for i := 0; i < 100; i++ {
		value := generator.GenerateToken()
		if len(value) != 32 {
			t.Fatalf("token %v must have 32 characters", value)
		}
		for _, r := range value {
			if !strings.ContainsRune(alphabet, r) {
				t.Fatalf("token %v contains unexpected character %q", value, r)
			}
		}
		if _, ok := tokens[value]; ok {
			t.Fatalf("token %v already exists (%v)", value, tokens)
		}
		tokens[value] = struct{}{}
	}
}

func TestNonPositiveLengthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewGenerator(0)
}
