package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/content-admin-service/internal/content/app/service"
	"github.com/klwxsrx/content-admin-service/internal/content/domain"
	domainmock "github.com/klwxsrx/content-admin-service/internal/content/domain/mock"
)

func TestCategoryService_Create(t *testing.T) {
	validInput := service.CategoryInput{
		Title:       " Piano basics ",
		Slug:        " Piano-Basics ",
		Description: " Learn the keys ",
	}

	tests := []struct {
		name        string
		input       func() service.CategoryInput
		expectField string
		expect      func(t *testing.T, category *domain.Category)
	}{
		{
			name:  "defaults",
			input: func() service.CategoryInput { return validInput },
			expect: func(t *testing.T, category *domain.Category) {
				assert.Equal(t, "Piano basics", category.Title)
				assert.Equal(t, "piano-basics", category.Slug)
				assert.Equal(t, "Learn the keys", category.Description)
				assert.Nil(t, category.ImageURL)
				assert.Equal(t, 0, category.Order)
				assert.True(t, category.IsActive)
				assert.Equal(t, now, category.CreatedAt)
				assert.Equal(t, now, category.UpdatedAt)
			},
		},
		{
			name: "explicit_values",
			input: func() service.CategoryInput {
				in := validInput
				in.ImageURL = " https://img/1.png "
				in.Order = ptr(3)
				in.IsActive = ptr(false)
				return in
			},
			expect: func(t *testing.T, category *domain.Category) {
				require.NotNil(t, category.ImageURL)
				assert.Equal(t, "https://img/1.png", *category.ImageURL)
				assert.Equal(t, 3, category.Order)
				assert.False(t, category.IsActive)
			},
		},
		{
			name: "blank_title",
			input: func() service.CategoryInput {
				in := validInput
				in.Title = "   "
				return in
			},
			expectField: "title",
		},
		{
			name: "long_slug",
			input: func() service.CategoryInput {
				in := validInput
				in.Slug = strings.Repeat("s", 65)
				return in
			},
			expectField: "slug",
		},
		{
			name: "long_description",
			input: func() service.CategoryInput {
				in := validInput
				in.Description = strings.Repeat("d", 501)
				return in
			},
			expectField: "description",
		},
		{
			name: "long_image_url",
			input: func() service.CategoryInput {
				in := validInput
				in.ImageURL = strings.Repeat("u", 501)
				return in
			},
			expectField: "imageUrl",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, clock := testContext()
			ctrl := gomock.NewController(t)
			repo := domainmock.NewCategoryRepository(ctrl)
			if tt.expectField == "" {
				repo.EXPECT().NextID().Return(newCategoryID())
				repo.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil)
			}

			category, err := service.NewCategory(repo, inPlaceTransaction(ctrl), clock).Create(ctx, tt.input())
			if tt.expectField != "" {
				assert.Equal(t, service.FieldError{Field: tt.expectField}, err)
				return
			}

			require.NoError(t, err)
			tt.expect(t, category)
		})
	}
}

func TestCategoryService_Create_DuplicateSlug(t *testing.T) {
	t.Parallel()

	ctx, clock := testContext()
	ctrl := gomock.NewController(t)
	repo := domainmock.NewCategoryRepository(ctrl)
	repo.EXPECT().NextID().Return(newCategoryID())
	repo.EXPECT().Store(gomock.Any(), gomock.Any()).Return(domain.DuplicateKeyError{Key: "slug", Value: "piano"})

	_, err := service.NewCategory(repo, inPlaceTransaction(ctrl), clock).Create(ctx, service.CategoryInput{
		Title: "Piano", Slug: "piano", Description: "Keys",
	})

	var dupErr domain.DuplicateKeyError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "piano", dupErr.Value)
}

func TestCategoryService_Update(t *testing.T) {
	id := newCategoryID()
	existing := func() *domain.Category {
		return &domain.Category{
			ID:          id,
			Title:       "Piano",
			Slug:        "piano",
			Description: "Keys",
			ImageURL:    ptr("https://img/1.png"),
			Order:       1,
			IsActive:    true,
		}
	}

	tests := []struct {
		name        string
		patch       service.CategoryPatch
		findErr     error
		expectErr   error
		expect      func(t *testing.T, category *domain.Category)
		expectStore bool
	}{
		{
			name:        "only_present_fields_change",
			patch:       service.CategoryPatch{Title: ptr(" Grand piano "), Order: ptr(5)},
			expectStore: true,
			expect: func(t *testing.T, category *domain.Category) {
				assert.Equal(t, "Grand piano", category.Title)
				assert.Equal(t, 5, category.Order)
				assert.Equal(t, "piano", category.Slug)
				assert.Equal(t, "https://img/1.png", *category.ImageURL)
				assert.Equal(t, now, category.UpdatedAt)
			},
		},
		{
			name:        "empty_image_url_clears_image",
			patch:       service.CategoryPatch{ImageURL: ptr("  "), IsActive: ptr(false)},
			expectStore: true,
			expect: func(t *testing.T, category *domain.Category) {
				assert.Nil(t, category.ImageURL)
				assert.False(t, category.IsActive)
			},
		},
		{
			name:      "empty_title",
			patch:     service.CategoryPatch{Title: ptr(" ")},
			expectErr: service.FieldError{Field: "title"},
		},
		{
			name:      "empty_slug",
			patch:     service.CategoryPatch{Slug: ptr("")},
			expectErr: service.FieldError{Field: "slug"},
		},
		{
			name:      "not_found",
			patch:     service.CategoryPatch{Order: ptr(2)},
			findErr:   domain.ErrCategoryNotFound,
			expectErr: domain.ErrCategoryNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, clock := testContext()
			ctrl := gomock.NewController(t)
			repo := domainmock.NewCategoryRepository(ctrl)
			if tt.findErr != nil {
				repo.EXPECT().FindOne(gomock.Any(), domain.FindCategorySpecification{IDs: []domain.CategoryID{id}}).
					Return(nil, tt.findErr)
			} else if tt.expectErr == nil {
				repo.EXPECT().FindOne(gomock.Any(), domain.FindCategorySpecification{IDs: []domain.CategoryID{id}}).
					Return(existing(), nil)
			}
			if tt.expectStore {
				repo.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil)
			}

			category, err := service.NewCategory(repo, inPlaceTransaction(ctrl), clock).Update(ctx, id, tt.patch)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}

			require.NoError(t, err)
			tt.expect(t, category)
		})
	}
}

func TestCategoryService_Update_StoreError(t *testing.T) {
	t.Parallel()

	ctx, clock := testContext()
	ctrl := gomock.NewController(t)
	repo := domainmock.NewCategoryRepository(ctrl)
	repo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(&domain.Category{}, nil)
	repo.EXPECT().Store(gomock.Any(), gomock.Any()).Return(errors.New("unexpected"))

	_, err := service.NewCategory(repo, inPlaceTransaction(ctrl), clock).
		Update(ctx, newCategoryID(), service.CategoryPatch{Order: ptr(1)})
	assert.Error(t, err)
}

func TestCategoryService_Lists(t *testing.T) {
	t.Parallel()

	ctx, clock := testContext()
	ctrl := gomock.NewController(t)
	repo := domainmock.NewCategoryRepository(ctrl)
	repo.EXPECT().Find(gomock.Any(), domain.FindCategorySpecification{}).Return([]domain.Category{{}, {}}, nil)
	repo.EXPECT().Find(gomock.Any(), domain.FindCategorySpecification{ActiveOnly: true}).Return([]domain.Category{{}}, nil)

	categories := service.NewCategory(repo, inPlaceTransaction(ctrl), clock)

	all, err := categories.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := categories.ListActive(context.Background())
	require.NoError(t, err)
	assert.Len(t, active, 1)
}
