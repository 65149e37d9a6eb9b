package usecase

import (
	"context"
	"strings"
	"time"

	"farmlytic/internal/domain/entity"
	"farmlytic/internal/domain/repository"
	"farmlytic/internal/domain/service"
	"farmlytic/pkg/errors"
)

type FieldUseCase struct {
	fieldRepo repository.FieldRepository
	weather   service.WeatherService
}

func NewFieldUseCase(fieldRepo repository.FieldRepository, weather service.WeatherService) *FieldUseCase {
	return &FieldUseCase{
		fieldRepo: fieldRepo,
		weather:   weather,
	}
}

type FieldInput struct {
	Name         string
	Location     string
	Size         float64
	SizeUnit     string
	CropType     string
	PlantingDate *time.Time
	Notes        string
}

func (uc *FieldUseCase) Create(ctx context.Context, farmerID string, input FieldInput) (*entity.Field, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.Validation("name")
	}
	if strings.TrimSpace(input.Location) == "" {
		return nil, errors.Validation("location")
	}

	field := &entity.Field{
		FarmerID:     farmerID,
		Name:         input.Name,
		Location:     input.Location,
		Size:         input.Size,
		SizeUnit:     input.SizeUnit,
		CropType:     input.CropType,
		PlantingDate: input.PlantingDate,
		Notes:        input.Notes,
	}

	if err := uc.fieldRepo.Create(ctx, field); err != nil {
		return nil, err
	}

	return field, nil
}

func (uc *FieldUseCase) Get(ctx context.Context, farmerID, fieldID string) (*entity.Field, error) {
	field, err := uc.fieldRepo.GetByID(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	if field.FarmerID != farmerID {
		return nil, errors.Forbidden("You don't have permission to view this field", nil)
	}
	return field, nil
}

func (uc *FieldUseCase) Update(ctx context.Context, farmerID, fieldID string, input FieldInput) (*entity.Field, error) {
	field, err := uc.Get(ctx, farmerID, fieldID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.Validation("name")
	}
	if strings.TrimSpace(input.Location) == "" {
		return nil, errors.Validation("location")
	}

	field.Name = input.Name
	field.Location = input.Location
	field.Size = input.Size
	field.SizeUnit = input.SizeUnit
	field.CropType = input.CropType
	field.PlantingDate = input.PlantingDate
	field.Notes = input.Notes

	if err := uc.fieldRepo.Update(ctx, field); err != nil {
		return nil, err
	}

	return field, nil
}

func (uc *FieldUseCase) Delete(ctx context.Context, farmerID, fieldID string) error {
	if _, err := uc.Get(ctx, farmerID, fieldID); err != nil {
		return err
	}
	return uc.fieldRepo.Delete(ctx, fieldID)
}

func (uc *FieldUseCase) List(ctx context.Context, farmerID string) ([]*entity.Field, error) {
	return uc.fieldRepo.ListByFarmer(ctx, farmerID)
}

// Weather returns a mocked reading for the field's location.
func (uc *FieldUseCase) Weather(ctx context.Context, farmerID, fieldID string) (*entity.WeatherSnapshot, error) {
	field, err := uc.Get(ctx, farmerID, fieldID)
	if err != nil {
		return nil, err
	}
	return uc.weather.Current(ctx, field.Location)
}
