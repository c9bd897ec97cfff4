package category

import (
	"errors"
	"strings"
	"time"

	"bookkeeper/internal/shared/apperror"
	"bookkeeper/internal/shared/normalize"
)

// Domain errors
var (
	ErrNotFound      = errors.New("category not found")
	ErrDuplicateName = errors.New("category name already exists")
	ErrNameRequired  = apperror.BadRequest("Category name is required.")
)

// Category is a classification bucket for splits. Categories may nest under a
// parent from the same business.
type Category struct {
	ID               int64
	BusinessID       int64
	ParentCategoryID *int64
	Name             string
	Description      *string
	Kind             Kind
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CreateParams carries the raw category input. Kind is parsed by Validate.
type CreateParams struct {
	Name             string
	Description      *string
	Kind             string
	ParentCategoryID *int64
	Active           *bool
}

func (p *CreateParams) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = normalize.Ptr(p.Description)
}

// Validate checks the name and kind and returns the parsed kind.
func (p CreateParams) Validate() (Kind, error) {
	if strings.TrimSpace(p.Name) == "" {
		return "", ErrNameRequired
	}
	return ParseKind(p.Kind)
}

// NewCategory builds an unsaved category for the business. Active defaults to true.
func (p CreateParams) NewCategory(businessID int64, kind Kind) *Category {
	return &Category{
		BusinessID:       businessID,
		ParentCategoryID: p.ParentCategoryID,
		Name:             p.Name,
		Description:      p.Description,
		Kind:             kind,
		Active:           p.Active == nil || *p.Active,
	}
}
