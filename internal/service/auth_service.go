package service

import (
	"context"
	"time"

	"ai-counselor-be/internal/constant"
	"ai-counselor-be/internal/dto"
	"ai-counselor-be/internal/entity"
	"ai-counselor-be/internal/repository/specification"
	"ai-counselor-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	// Register creates the user plus their default chat session and returns
	// both.
	Register(ctx context.Context, req *dto.SignupRequest) (*entity.User, string, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*entity.User, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory) IAuthService {
	return &authService{
		uowFactory: uowFactory,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.SignupRequest) (*entity.User, string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 1. Check for existing username or email
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, "", err
	}
	if existing == nil {
		existing, err = uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
		if err != nil {
			return nil, "", err
		}
	}
	if existing != nil {
		return nil, "", ErrDuplicateUser
	}

	// 2. Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	// 3. Create User Entity
	user := &entity.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		Interests:    []string{},
		CreatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		// Unique index races still surface here; fold them into the same
		// duplicate answer the pre-check gives.
		return nil, "", ErrDuplicateUser
	}

	// 4. Open the default chat session. Losing it is non-fatal; the chat
	// page creates one on demand.
	session := &entity.ChatSession{
		Id:        uuid.NewString(),
		UserId:    user.Id,
		Name:      constant.DefaultChatSessionName,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return user, "", nil
	}

	return user, session.Id, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
