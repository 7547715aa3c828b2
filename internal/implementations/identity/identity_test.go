package identity

import (
	"onboarding/internal/core/domain/user"
	"testing"

	"github.com/google/uuid"
)

func TestIdentityGenerator(t *testing.T) {
	generator := NewUUID()
	ids := make(map[user.ID]struct{})
	for i := 0; i < 100; i++ {
		id := generator.GenerateID()
		if _, err := uuid.Parse(string(id)); err != nil {
			t.Fatalf("id %v is not a valid UUID: %v", id, err)
		}
		if _, ok := ids[id]; ok {
			t.Fatalf("id %v already exists (%v)", id, ids)
		}
		ids[id] = struct{}{}
	}
}
