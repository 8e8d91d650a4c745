package category

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errors.New("category name cannot be empty")
	ErrNameTooShort       = errors.New("category name must be at least 2 characters")
	ErrNameTooLong        = errors.New("category name cannot exceed 50 characters")
	ErrDescriptionTooLong = errors.New("category description cannot exceed 200 characters")
)

const (
	MinNameLength        = 2
	MaxNameLength        = 50
	MaxDescriptionLength = 200
)

// Category is a flat apartment-type reference (Studio, 1BHK, 2BHK, ...).
type Category struct {
	id          uuid.UUID
	name        string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCategory(name, description string) (*Category, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if err := validateName(name); err != nil {
		return nil, err
	}
	if len(description) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}

	return &Category{
		id:          uuid.New(),
		name:        name,
		description: description,
	}, nil
}

func ReconstructCategory(id uuid.UUID, name, description string, createdAt, updatedAt time.Time) *Category {
	return &Category{
		id:          id,
		name:        name,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func validateName(name string) error {
	switch {
	case name == "":
		return ErrEmptyName
	case len(name) < MinNameLength:
		return ErrNameTooShort
	case len(name) > MaxNameLength:
		return ErrNameTooLong
	}
	return nil
}

func (c *Category) ID() uuid.UUID        { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) Description() string  { return c.description }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }
