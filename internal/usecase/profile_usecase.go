package usecase

import (
	"context"
	"strings"

	"farmlytic/internal/domain/entity"
	"farmlytic/internal/domain/repository"
	"farmlytic/pkg/errors"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
}

func NewProfileUseCase(profileRepo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
	}
}

type UpdateProfileInput struct {
	Name  string
	Phone string
}

func (uc *ProfileUseCase) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	return uc.profileRepo.GetByID(ctx, id)
}

func (uc *ProfileUseCase) Update(ctx context.Context, id string, input UpdateProfileInput) (*entity.Profile, error) {
	profile, err := uc.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.Validation("name")
	}
	profile.Name = input.Name
	profile.Phone = input.Phone

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// ListSpecialists supports specialist selection when raising advice
// requests.
func (uc *ProfileUseCase) ListSpecialists(ctx context.Context) ([]*entity.Profile, error) {
	return uc.profileRepo.ListByRole(ctx, entity.RoleSpecialist)
}
