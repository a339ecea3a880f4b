package mapper

import (
	"encoding/json"

	"ai-counselor-be/internal/entity"
	"ai-counselor-be/internal/model"

	"gorm.io/datatypes"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	// Interests round-trip through serialized JSON; nil column means empty list.
	interests := []string{}
	if len(u.Interests) > 0 {
		_ = json.Unmarshal(u.Interests, &interests)
	}

	return &entity.User{
		Id:                    u.Id,
		Username:              u.Username,
		Email:                 u.Email,
		PasswordHash:          u.PasswordHash,
		FullName:              u.FullName,
		PhoneNumber:           u.PhoneNumber,
		EducationalBackground: u.EducationalBackground,
		Interests:             interests,
		CreatedAt:             u.CreatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	interests := u.Interests
	if interests == nil {
		interests = []string{}
	}
	raw, _ := json.Marshal(interests)

	return &model.User{
		Id:                    u.Id,
		Username:              u.Username,
		Email:                 u.Email,
		PasswordHash:          u.PasswordHash,
		FullName:              u.FullName,
		PhoneNumber:           u.PhoneNumber,
		EducationalBackground: u.EducationalBackground,
		Interests:             datatypes.JSON(raw),
		CreatedAt:             u.CreatedAt,
	}
}
