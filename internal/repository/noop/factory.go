// Package noop provides a stand-in persistence port used when the real
// database cannot be opened. Writes are accepted and dropped, reads return
// empty results, and the process keeps serving requests in degraded mode.
package noop

import (
	"context"

	"ai-counselor-be/internal/entity"
	"ai-counselor-be/internal/repository/contract"
	"ai-counselor-be/internal/repository/specification"
	"ai-counselor-be/internal/repository/unitofwork"
)

type Factory struct{}

func NewFactory() unitofwork.RepositoryFactory {
	return &Factory{}
}

func (f *Factory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &noopUnitOfWork{}
}

type noopUnitOfWork struct{}

func (u *noopUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *noopUnitOfWork) Commit() error                   { return nil }
func (u *noopUnitOfWork) Rollback() error                 { return nil }

func (u *noopUnitOfWork) UserRepository() contract.UserRepository {
	return noopUserRepository{}
}

func (u *noopUnitOfWork) ChatSessionRepository() contract.ChatSessionRepository {
	return noopChatSessionRepository{}
}

func (u *noopUnitOfWork) ChatMessageRepository() contract.ChatMessageRepository {
	return noopChatMessageRepository{}
}

func (u *noopUnitOfWork) UsageRecordRepository() contract.UsageRecordRepository {
	return noopUsageRecordRepository{}
}

type noopUserRepository struct{}

func (noopUserRepository) Create(ctx context.Context, user *entity.User) error {
	// Hand out a placeholder id so the signup flow can still set its cookie.
	user.Id = 1
	return nil
}

func (noopUserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	return nil, nil
}

func (noopUserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

func (noopUserRepository) UpdateProfile(ctx context.Context, userId uint, background string, interests []string) error {
	return nil
}

type noopChatSessionRepository struct{}

func (noopChatSessionRepository) Create(ctx context.Context, session *entity.ChatSession) error {
	return nil
}

func (noopChatSessionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	return nil, nil
}

func (noopChatSessionRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	return nil, nil
}

func (noopChatSessionRepository) Touch(ctx context.Context, sessionId string) error {
	return nil
}

type noopChatMessageRepository struct{}

func (noopChatMessageRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	return nil
}

func (noopChatMessageRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	return nil, nil
}

func (noopChatMessageRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type noopUsageRecordRepository struct{}

func (noopUsageRecordRepository) Create(ctx context.Context, record *entity.UsageRecord) error {
	return nil
}

func (noopUsageRecordRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}
