package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shahisiiii/quiz-platform/internal/cache"
	"github.com/shahisiiii/quiz-platform/internal/config"
	"github.com/shahisiiii/quiz-platform/internal/model"
	"github.com/shahisiiii/quiz-platform/internal/repository"
)

// CategoryService handles category CRUD with read-through caching.
type CategoryService struct {
	categoryRepo *repository.CategoryRepository
	store        *cache.Store
	log          zerolog.Logger
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo *repository.CategoryRepository, store *cache.Store, log zerolog.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		store:        store,
		log:          log.With().Str("component", "category_service").Logger(),
	}
}

// List returns categories for the caller's role. Admins read the store
// unfiltered; non-admins get the active-only list, cached for 10 minutes.
func (s *CategoryService) List(ctx context.Context, role model.Role) ([]model.CategoryView, error) {
	if role == model.RoleAdmin {
		return s.categoryRepo.List(ctx, false)
	}

	key := config.CacheKey.ActiveCategories()

	var cached []model.CategoryView
	if s.store.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	categories, err := s.categoryRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []model.CategoryView{}
	}

	s.store.SetJSON(ctx, key, categories, config.CategoryListTTL)
	return categories, nil
}

// Get returns one category. Non-admins cannot see inactive categories.
func (s *CategoryService) Get(ctx context.Context, id int64, role model.Role) (*model.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role != model.RoleAdmin && !category.IsActive {
		return nil, repository.ErrNotFound
	}
	return category, nil
}

// Create inserts a category and invalidates the active list.
func (s *CategoryService) Create(ctx context.Context, req *model.CreateCategoryRequest, creatorID int64) (*model.Category, error) {
	category := &model.Category{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
		CreatedBy:   &creatorID,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.store.Delete(ctx, config.CacheKey.ActiveCategories())
	return category, nil
}

// Update applies the provided fields and invalidates the active list.
func (s *CategoryService) Update(ctx context.Context, id int64, req *model.UpdateCategoryRequest) (*model.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	s.store.Delete(ctx, config.CacheKey.ActiveCategories())
	return category, nil
}

// Delete removes a category. Its quizzes cascade, so every quiz-scoped
// cache key is stale afterwards; the quiz list key covers the visible ones.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.store.Delete(ctx,
		config.CacheKey.ActiveCategories(),
		config.CacheKey.ActiveQuizzes(),
	)
	return nil
}
