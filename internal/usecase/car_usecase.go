package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCarID     = errors.New("invalid car id")
	ErrCarNotFound      = errors.New("car not found")
	ErrMissingCarFields = errors.New("owner name, phone, plate, brand and model are required")
	ErrInvalidCarStatus = errors.New("invalid car status")
)

// CarInput carries the writable car fields.
type CarInput struct {
	OwnerName   string
	Phone       string
	PlateNumber string
	Brand       string
	Model       string
	Year        string
	Color       string
	Status      string
	Notes       string
}

type ICarUseCase interface {
	Create(ctx context.Context, userID string, in CarInput) (entities.Car, error)
	GetByID(ctx context.Context, id, userID string) (entities.Car, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Car, error)
	Update(ctx context.Context, id, userID string, in CarInput) (entities.Car, error)
	Delete(ctx context.Context, id, userID string) error
}

type CarUseCase struct {
	repo interfaces.ICarRepository
}

var _ ICarUseCase = (*CarUseCase)(nil)

func NewCarUseCase(repo interfaces.ICarRepository) *CarUseCase {
	return &CarUseCase{repo: repo}
}

func (u *CarUseCase) Create(ctx context.Context, userID string, in CarInput) (entities.Car, error) {
	if hasEmpty(in.OwnerName, in.Phone, in.PlateNumber, in.Brand, in.Model) {
		return entities.Car{}, ErrMissingCarFields
	}

	status := entities.CarStatus(in.Status)
	if in.Status == "" {
		status = entities.CarStatusPending
	}
	if !isValidCarStatus(status) {
		return entities.Car{}, ErrInvalidCarStatus
	}

	now := time.Now().UTC()
	car := entities.Car{
		ID:          uuid.NewString(),
		UserID:      userID,
		OwnerName:   in.OwnerName,
		Phone:       in.Phone,
		PlateNumber: in.PlateNumber,
		Brand:       in.Brand,
		Model:       in.Model,
		Year:        in.Year,
		Color:       in.Color,
		Status:      status,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, car)
}

func (u *CarUseCase) GetByID(ctx context.Context, id, userID string) (entities.Car, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Car{}, ErrInvalidCarID
	}

	car, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Car{}, err
	}
	if car.ID == "" || car.UserID != userID {
		return entities.Car{}, ErrCarNotFound
	}
	return car, nil
}

func (u *CarUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.Car, error) {
	cars, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(cars, func(i, j int) bool {
		return cars[i].CreatedAt.After(cars[j].CreatedAt)
	})
	return cars, nil
}

func (u *CarUseCase) Update(ctx context.Context, id, userID string, in CarInput) (entities.Car, error) {
	car, err := u.GetByID(ctx, id, userID)
	if err != nil {
		return entities.Car{}, err
	}

	if in.OwnerName != "" {
		car.OwnerName = in.OwnerName
	}
	if in.Phone != "" {
		car.Phone = in.Phone
	}
	if in.PlateNumber != "" {
		car.PlateNumber = in.PlateNumber
	}
	if in.Brand != "" {
		car.Brand = in.Brand
	}
	if in.Model != "" {
		car.Model = in.Model
	}
	if in.Year != "" {
		car.Year = in.Year
	}
	if in.Color != "" {
		car.Color = in.Color
	}
	if in.Status != "" {
		status := entities.CarStatus(in.Status)
		if !isValidCarStatus(status) {
			return entities.Car{}, ErrInvalidCarStatus
		}
		car.Status = status
	}
	if in.Notes != "" {
		car.Notes = in.Notes
	}
	car.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, car)
}

func (u *CarUseCase) Delete(ctx context.Context, id, userID string) error {
	car, err := u.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, car.ID)
}

func isValidCarStatus(s entities.CarStatus) bool {
	switch s {
	case entities.CarStatusPending, entities.CarStatusServicing, entities.CarStatusCompleted:
		return true
	}
	return false
}

func hasEmpty(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
