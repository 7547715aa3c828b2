package user

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	c "onboarding/internal/core/domain/common"
	"onboarding/internal/core/domain/token"
	"sync"
)

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeIdentityGenerator struct {
	ID ID
}

func NewFakeIdentityGenerator(id string) *FakeIdentityGenerator {
	return &FakeIdentityGenerator{ID: ID(id)}
}

func (g *FakeIdentityGenerator) GenerateID() ID {
	return g.ID
}

type FakeUserRepository struct {
	Users       []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input.Email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == input.Email || u.ID == input.ID {
			return u, ErrUserAlreadyExists
		}
	}
	u = User{
		ID:           input.ID,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: input.PasswordHash,
		CreatedAt:    input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) Update(ctx context.Context, id ID, input UpdateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not update user %s", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Users {
		if r.Users[ix].ID != id {
			continue
		}
		if input.FirstName.IsPresent {
			r.Users[ix].FirstName = input.FirstName.Value
		}
		if input.LastName.IsPresent {
			r.Users[ix].LastName = input.LastName.Value
		}
		if input.PasswordHash.IsPresent {
			r.Users[ix].PasswordHash = input.PasswordHash.Value
		}
		if input.EmailConfirmed.IsPresent {
			r.Users[ix].EmailConfirmed = input.EmailConfirmed.Value
		}
		return r.Users[ix], nil
	}
	return u, ErrUserNotFound
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id ID) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user %s", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return u, ErrUserNotFound
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user %s", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserNotFound
}

// Remove deletes the user directly, it is not part of UserRepository.
func (r *FakeUserRepository) Remove(id ID) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users = append(r.Users[:ix], r.Users[ix+1:]...)
			return
		}
	}
}

type FakeConfirmationTokenRepository struct {
	Tokens      []ConfirmationToken
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeConfirmationTokenRepository() *FakeConfirmationTokenRepository {
	return &FakeConfirmationTokenRepository{}
}

func (r *FakeConfirmationTokenRepository) Save(ctx context.Context, t ConfirmationToken) error {
	if r.ReturnError {
		return fmt.Errorf("could not save confirmation token for user %s", t.UserID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Tokens = append(r.Tokens, t)
	return nil
}

func (r *FakeConfirmationTokenRepository) GetByUserID(ctx context.Context, userID ID) ([]ConfirmationToken, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not get confirmation tokens for user %s", userID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	tokens := make([]ConfirmationToken, 0, len(r.Tokens))
	for _, t := range r.Tokens {
		if t.UserID == userID {
			tokens = append(tokens, t)
		}
	}
	return tokens, nil
}

type FakeResetTokenRepository struct {
	Tokens            map[ID]ResetToken
	ReturnError       bool
	ReturnDeleteError bool
	lock              sync.Mutex
}

func NewFakeResetTokenRepository() *FakeResetTokenRepository {
	return &FakeResetTokenRepository{Tokens: make(map[ID]ResetToken)}
}

func (r *FakeResetTokenRepository) Save(ctx context.Context, t ResetToken) error {
	if r.ReturnError {
		return fmt.Errorf("could not save reset token for user %s", t.UserID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Tokens[t.UserID] = t
	return nil
}

func (r *FakeResetTokenRepository) GetByUserID(ctx context.Context, userID ID) (t ResetToken, err error) {
	if r.ReturnError {
		return t, fmt.Errorf("could not get reset token for user %s", userID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	t, ok := r.Tokens[userID]
	if !ok {
		return t, ErrTokenNotFoundOrExpired
	}
	return t, nil
}

func (r *FakeResetTokenRepository) Delete(ctx context.Context, userID ID) error {
	if r.ReturnError || r.ReturnDeleteError {
		return fmt.Errorf("could not delete reset token for user %s", userID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	delete(r.Tokens, userID)
	return nil
}

type SentToken struct {
	Email c.Email
	Token token.Value
}

type FakeConfirmationTokenSender struct {
	Sent        []SentToken
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeConfirmationTokenSender() *FakeConfirmationTokenSender {
	return &FakeConfirmationTokenSender{}
}

func (s *FakeConfirmationTokenSender) SendConfirmationToken(
	ctx context.Context,
	email c.Email,
	t token.Value,
) error {
	if s.ReturnError {
		return fmt.Errorf("could not send confirmation token to %s", email)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, SentToken{Email: email, Token: t})
	return nil
}

func (s *FakeConfirmationTokenSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}

func (s *FakeConfirmationTokenSender) LastSent() SentToken {
	s.lock.Lock()
	defer s.lock.Unlock()
	l := len(s.Sent)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return s.Sent[l-1]
}

type FakeResetTokenSender struct {
	Sent        []SentToken
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeResetTokenSender() *FakeResetTokenSender {
	return &FakeResetTokenSender{}
}

func (s *FakeResetTokenSender) SendPasswordResetToken(
	ctx context.Context,
	email c.Email,
	t token.Value,
) error {
	if s.ReturnError {
		return fmt.Errorf("could not send password reset token to %s", email)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, SentToken{Email: email, Token: t})
	return nil
}

func (s *FakeResetTokenSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}

func (s *FakeResetTokenSender) LastSent() SentToken {
	s.lock.Lock()
	defer s.lock.Unlock()
	l := len(s.Sent)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return s.Sent[l-1]
}
