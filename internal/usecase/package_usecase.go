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
	ErrInvalidPackageID     = errors.New("invalid package id")
	ErrPackageNotFound      = errors.New("package not found")
	ErrMissingPackageFields = errors.New("package number, name and description are required")
	ErrInvalidPackagePrice  = errors.New("package price must not be negative")
)

// PackageInput carries the writable package fields.
type PackageInput struct {
	Number      string
	Name        string
	Description string
	Price       *float64
}

type IPackageUseCase interface {
	Create(ctx context.Context, userID string, in PackageInput) (entities.ServicePackage, error)
	GetByID(ctx context.Context, id, userID string) (entities.ServicePackage, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.ServicePackage, error)
	Update(ctx context.Context, id, userID string, in PackageInput) (entities.ServicePackage, error)
	Delete(ctx context.Context, id, userID string) error
}

type PackageUseCase struct {
	repo interfaces.IPackageRepository
}

var _ IPackageUseCase = (*PackageUseCase)(nil)

func NewPackageUseCase(repo interfaces.IPackageRepository) *PackageUseCase {
	return &PackageUseCase{repo: repo}
}

func (u *PackageUseCase) Create(ctx context.Context, userID string, in PackageInput) (entities.ServicePackage, error) {
	if hasEmpty(in.Number, in.Name, in.Description) {
		return entities.ServicePackage{}, ErrMissingPackageFields
	}
	price := 0.0
	if in.Price != nil {
		price = *in.Price
	}
	if price < 0 {
		return entities.ServicePackage{}, ErrInvalidPackagePrice
	}

	now := time.Now().UTC()
	pkg := entities.ServicePackage{
		ID:          uuid.NewString(),
		UserID:      userID,
		Number:      in.Number,
		Name:        in.Name,
		Description: in.Description,
		Price:       price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, pkg)
}

func (u *PackageUseCase) GetByID(ctx context.Context, id, userID string) (entities.ServicePackage, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServicePackage{}, ErrInvalidPackageID
	}

	pkg, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServicePackage{}, err
	}
	if pkg.ID == "" || pkg.UserID != userID {
		return entities.ServicePackage{}, ErrPackageNotFound
	}
	return pkg, nil
}

func (u *PackageUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.ServicePackage, error) {
	pkgs, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(pkgs, func(i, j int) bool {
		return pkgs[i].CreatedAt.After(pkgs[j].CreatedAt)
	})
	return pkgs, nil
}

func (u *PackageUseCase) Update(ctx context.Context, id, userID string, in PackageInput) (entities.ServicePackage, error) {
	pkg, err := u.GetByID(ctx, id, userID)
	if err != nil {
		return entities.ServicePackage{}, err
	}

	if in.Number != "" {
		pkg.Number = in.Number
	}
	if in.Name != "" {
		pkg.Name = in.Name
	}
	if in.Description != "" {
		pkg.Description = in.Description
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return entities.ServicePackage{}, ErrInvalidPackagePrice
		}
		pkg.Price = *in.Price
	}
	pkg.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, pkg)
}

func (u *PackageUseCase) Delete(ctx context.Context, id, userID string) error {
	pkg, err := u.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, pkg.ID)
}
