package registeruser

import (
	"context"
	"errors"
	"onboarding/internal/core/domain/clock"
	c "onboarding/internal/core/domain/common"
	e "onboarding/internal/core/domain/errors"
	"onboarding/internal/core/domain/logging"
	"onboarding/internal/core/domain/token"
	uow "onboarding/internal/core/domain/unit_of_work"
	"onboarding/internal/core/domain/user"
	"onboarding/internal/core/services"
)

type Input struct {
	ID        c.Optional[user.ID]
	Email     c.Email
	FirstName string
	LastName  string
	Password  user.RawPassword
}

func (i Input) GetRateLimitKey() string {
	return "register-user::" + string(i.Email)
}

type Result struct {
	User  user.User
	Token token.Issued
}

type service struct {
	log               logging.Logger
	unitOfWork        uow.UnitOfWork
	passwordHasher    user.PasswordHasher
	identityGenerator user.IdentityGenerator
	issuer            *token.Issuer
	clock             clock.Clock
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordHasher user.PasswordHasher,
	identityGenerator user.IdentityGenerator,
	issuer *token.Issuer,
	clock clock.Clock,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if identityGenerator == nil {
		panic(e.NewNilArgumentError("identityGenerator"))
	}
	if issuer == nil {
		panic(e.NewNilArgumentError("issuer"))
	}
	if clock == nil {
		panic(e.NewNilArgumentError("clock"))
	}
	return &service{
		log:               log,
		unitOfWork:        unitOfWork,
		passwordHasher:    passwordHasher,
		identityGenerator: identityGenerator,
		issuer:            issuer,
		clock:             clock,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not begin unit of work.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}
	defer uow.Rollback(ctx)

	existing, err := uow.Users().GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err == nil {
		if existing.EmailConfirmed {
			s.log.Info(ctx, "User with the email already exists.", logging.Entry("email", input.Email))
			return result, user.ErrUserAlreadyExists
		}
		s.log.Info(ctx, "User with the email is not confirmed yet.", logging.Entry("email", input.Email))
		return result, user.ErrEmailUnconfirmed
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		s.log.Error(
			ctx,
			"Could not get user by email.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	err = user.ValidateRegistration(user.RegistrationFields{
		Email:     string(input.Email),
		Password:  string(input.Password),
		FirstName: input.FirstName,
		LastName:  input.LastName,
	})
	if err != nil {
		s.log.Info(ctx, "Registration input is invalid.", logging.Entry("email", input.Email), logging.Entry("err", err))
		return result, err
	}

	passwordHash, err := s.passwordHasher.HashPassword(input.Password)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return result, err
	}

	createdUser, err := uow.Users().Create(ctx, user.CreateUserInput{
		ID:           input.ID.OrElse(s.identityGenerator.GenerateID()),
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: passwordHash,
		CreatedAt:    s.clock.Now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserAlreadyExists) {
		s.log.Info(ctx, "User with the email already exists.", logging.Entry("email", input.Email))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create new user.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	issued := s.issuer.Issue()
	err = uow.ConfirmationTokens().Save(ctx, user.ConfirmationToken{
		UserID:    createdUser.ID,
		Token:     issued.Value,
		ExpiresAt: issued.ExpiresAt,
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not save confirmation token.",
			logging.Entry("userId", createdUser.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	err = uow.Commit(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not commit unit of work.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "New user has been registered.", logging.Entry("user", createdUser))
	return Result{User: createdUser, Token: issued}, nil
}
