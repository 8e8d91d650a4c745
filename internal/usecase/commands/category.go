package commands

import (
	"context"

	"staybook/internal/domain/category"
	reqdto "staybook/internal/handler/dto/request"
	"staybook/internal/infra"
	"staybook/internal/pkg/errs"
	"staybook/internal/pkg/ptr"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCategoryExists = errs.New("category name already exists")
	ErrCategoryInUse  = errs.New("category is referenced by apartments")
)

type CategoryCommands interface {
	Create(ctx context.Context, req reqdto.CreateCategoryRequest) (*queries.CategoryView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCategoryRequest) (*queries.CategoryView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryCommandsImpl struct {
	uow             shared.UnitOfWork
	categoryQueries queries.CategoryQueries
}

func NewCategoryCommands(uow shared.UnitOfWork, categoryQueries queries.CategoryQueries) CategoryCommands {
	return &categoryCommandsImpl{
		uow:             uow,
		categoryQueries: categoryQueries,
	}
}

func (c *categoryCommandsImpl) Create(ctx context.Context, req reqdto.CreateCategoryRequest) (*queries.CategoryView, error) {
	entity, err := category.NewCategory(req.Name, req.Description)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var created uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Categories().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrCategoryExists
			}
			return errs.Mark(err, ErrStoreFailure)
		}
		created = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.categoryQueries.GetByID(ctx, created)
}

func (c *categoryCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCategoryRequest) (*queries.CategoryView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().CategoryByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCategoryNotFound
			}
			return errs.Mark(err, ErrStoreFailure)
		}

		entity, err := category.NewCategory(
			ptr.ValueOr(req.Name, current.Name),
			ptr.ValueOr(req.Description, current.Description),
		)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		entity = category.ReconstructCategory(id, entity.Name(), entity.Description(), current.CreatedAt, current.UpdatedAt)

		if err := tx.Categories().Update(ctx, tx.DB(), entity); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrCategoryExists
			}
			return errs.Mark(err, ErrStoreFailure)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.categoryQueries.GetByID(ctx, id)
}

func (c *categoryCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().CategoryByID(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCategoryNotFound
			}
			return errs.Mark(err, ErrStoreFailure)
		}

		inUse, err := tx.Reads().CategoryInUse(ctx, id)
		if err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		if inUse {
			return ErrCategoryInUse
		}

		if err := tx.Categories().Delete(ctx, tx.DB(), id); err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		return nil
	})
}
