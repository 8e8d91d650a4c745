package commands

import (
	"context"

	"staybook/internal/domain/apartment"
	reqdto "staybook/internal/handler/dto/request"
	"staybook/internal/infra"
	"staybook/internal/pkg/errs"
	"staybook/internal/pkg/ptr"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound     = errs.New("category not found")
	ErrApartmentHasBookings = errs.New("apartment has active bookings")
)

type ApartmentCommands interface {
	Create(ctx context.Context, req reqdto.CreateApartmentRequest) (*queries.ApartmentView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateApartmentRequest) (*queries.ApartmentView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type apartmentCommandsImpl struct {
	uow              shared.UnitOfWork
	apartmentQueries queries.ApartmentQueries
}

func NewApartmentCommands(uow shared.UnitOfWork, apartmentQueries queries.ApartmentQueries) ApartmentCommands {
	return &apartmentCommandsImpl{
		uow:              uow,
		apartmentQueries: apartmentQueries,
	}
}

func (c *apartmentCommandsImpl) Create(ctx context.Context, req reqdto.CreateApartmentRequest) (*queries.ApartmentView, error) {
	entity, err := apartment.NewApartment(apartment.Spec{
		Title:       req.Title,
		Location:    req.Location,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Capacity:    req.Capacity,
		CategoryID:  req.Category,
		Amenities:   req.Amenities,
		Features:    req.Features,
		Images:      req.Images,
		MainImage:   req.MainImage,
		IsAvailable: ptr.ValueOr(req.IsAvailable, true),
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var created uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().CategoryByID(ctx, req.Category); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCategoryNotFound
			}
			return errs.Mark(err, ErrStoreFailure)
		}

		id, err := tx.Apartments().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrCategoryNotFound
			}
			return errs.Mark(err, ErrStoreFailure)
		}
		created = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.apartmentQueries.GetByID(ctx, created)
}

func (c *apartmentCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateApartmentRequest) (*queries.ApartmentView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().ApartmentByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrApartmentNotFound
			}
			return errs.Mark(err, ErrStoreFailure)
		}

		if req.Category != nil {
			if _, err := tx.Reads().CategoryByID(ctx, *req.Category); err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return ErrCategoryNotFound
				}
				return errs.Mark(err, ErrStoreFailure)
			}
		}

		merged := mergeApartmentPatch(current, req)
		entity, err := apartment.NewApartment(merged)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		entity = apartment.ReconstructApartment(id, merged, current.CreatedAt, current.UpdatedAt)

		if err := tx.Apartments().Update(ctx, tx.DB(), entity); err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.apartmentQueries.GetByID(ctx, id)
}

func (c *apartmentCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().ApartmentByID(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrApartmentNotFound
			}
			return errs.Mark(err, ErrStoreFailure)
		}

		busy, err := tx.Reads().ApartmentHasActiveBookings(ctx, id)
		if err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		if busy {
			return ErrApartmentHasBookings
		}

		if err := tx.Apartments().Delete(ctx, tx.DB(), id); err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		return nil
	})
}

func mergeApartmentPatch(current *shared.ApartmentSnapshot, req reqdto.UpdateApartmentRequest) apartment.Spec {
	spec := apartment.Spec{
		Title:       ptr.ValueOr(req.Title, current.Title),
		Location:    ptr.ValueOr(req.Location, current.Location),
		Description: ptr.ValueOr(req.Description, current.Description),
		PriceCents:  ptr.ValueOr(req.PriceCents, current.PriceCents),
		Bedrooms:    ptr.ValueOr(req.Bedrooms, current.Bedrooms),
		Bathrooms:   ptr.ValueOr(req.Bathrooms, current.Bathrooms),
		Capacity:    ptr.ValueOr(req.Capacity, current.Capacity),
		CategoryID:  ptr.ValueOr(req.Category, current.CategoryID),
		Amenities:   current.Amenities,
		Features:    current.Features,
		Images:      current.Images,
		MainImage:   ptr.ValueOr(req.MainImage, current.MainImage),
		IsAvailable: ptr.ValueOr(req.IsAvailable, current.IsAvailable),
	}
	if req.Amenities != nil {
		spec.Amenities = req.Amenities
	}
	if req.Features != nil {
		spec.Features = req.Features
	}
	if req.Images != nil {
		spec.Images = req.Images
	}
	return spec
}
