package service

import (
	"context"

	"ai-counselor-be/internal/dto"
	"ai-counselor-be/internal/entity"
	"ai-counselor-be/internal/repository/specification"
	"ai-counselor-be/internal/repository/unitofwork"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uint) (*entity.User, error)
	UpdateProfile(ctx context.Context, userId uint, req *dto.UpdateProfileRequest) error
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uint) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().FindOne(ctx, specification.ByUserID{ID: userId})
}

func (s *userService) UpdateProfile(ctx context.Context, userId uint, req *dto.UpdateProfileRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	interests := req.Interests
	if interests == nil {
		interests = []string{}
	}
	return uow.UserRepository().UpdateProfile(ctx, userId, req.EducationalBackground, interests)
}
