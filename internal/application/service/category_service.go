package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/entity"
	"github.com/mkadima/resto-api/internal/domain/repository"
	"github.com/mkadima/resto-api/pkg/apperror"
	"github.com/mkadima/resto-api/pkg/pagination"
	"github.com/mkadima/resto-api/pkg/utils"
)

// CategoryService handles category and sale space operations
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	spaceRepo    repository.SaleSpaceRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repository.CategoryRepository, spaceRepo repository.SaleSpaceRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, spaceRepo: spaceRepo}
}

// CreateCategory creates a new category
func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	slug := utils.Slugify(name)
	existing, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflict("A category with this name already exists")
	}

	category := &entity.Category{Name: name, Slug: slug}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory renames a category
func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFound("Category")
	}

	category.Name = name
	category.Slug = utils.Slugify(name)
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory soft-deletes a category
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFound("Category")
	}
	return s.categoryRepo.Delete(ctx, id)
}

// GetCategory retrieves a category by ID
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFound("Category")
	}
	return category, nil
}

// ListCategories lists categories
func (s *CategoryService) ListCategories(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Category], error) {
	categories, total, err := s.categoryRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(categories, pag), nil
}

// CreateSaleSpace creates a new pricing zone
func (s *CategoryService) CreateSaleSpace(ctx context.Context, name string) (*entity.SaleSpace, error) {
	space := &entity.SaleSpace{Name: name, Active: true}
	if err := s.spaceRepo.Create(ctx, space); err != nil {
		return nil, err
	}
	return space, nil
}

// UpdateSaleSpace updates a pricing zone
func (s *CategoryService) UpdateSaleSpace(ctx context.Context, id uuid.UUID, name *string, active *bool) (*entity.SaleSpace, error) {
	space, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if space == nil {
		return nil, apperror.NewNotFound("Sale space")
	}

	if name != nil {
		space.Name = *name
	}
	if active != nil {
		space.Active = *active
	}
	if err := s.spaceRepo.Update(ctx, space); err != nil {
		return nil, err
	}
	return space, nil
}

// DeleteSaleSpace soft-deletes a pricing zone
func (s *CategoryService) DeleteSaleSpace(ctx context.Context, id uuid.UUID) error {
	space, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if space == nil {
		return apperror.NewNotFound("Sale space")
	}
	return s.spaceRepo.Delete(ctx, id)
}

// ListSaleSpaces lists pricing zones
func (s *CategoryService) ListSaleSpaces(ctx context.Context) ([]entity.SaleSpace, error) {
	return s.spaceRepo.List(ctx)
}
