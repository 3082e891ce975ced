package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"catalog-service/apierror"
	"catalog-service/models"
	"catalog-service/repository"
)

const categoryImageFolder = "categories_image"

type CategoryService struct {
	repo  repository.CategoryRepo
	files FileStore
}

func NewCategoryService(repo repository.CategoryRepo, files FileStore) *CategoryService {
	return &CategoryService{
		repo:  repo,
		files: files,
	}
}

// CreateCategory rejects duplicate names, stores the uploaded image if one
// was sent and persists the new record.
func (s *CategoryService) CreateCategory(ctx context.Context, name string, image ImageInput) (*models.Category, error) {
	name = strings.TrimSpace(name)

	if _, err := s.repo.FindByName(ctx, name, primitive.NilObjectID); err == nil {
		return nil, apierror.Conflict("Category with this name already exists")
	} else if !isNoDocuments(err) {
		return nil, apierror.Internal(err)
	}

	imageURL, err := resolveImageOnCreate(s.files, image, categoryImageFolder)
	if err != nil {
		return nil, apierror.IO("failed to store category image", err)
	}

	category := &models.Category{
		Name:  name,
		Image: imageURL,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		if isDuplicateKey(err) {
			return nil, apierror.Conflict("Category with this name already exists")
		}
		return nil, apierror.Internal(err)
	}

	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context, q repository.PageQuery) ([]models.Category, int64, error) {
	categories, total, err := s.repo.FindPage(ctx, q)
	if err != nil {
		return nil, 0, apierror.Internal(err)
	}
	return categories, total, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apierror.InvalidID("Invalid category id")
	}

	category, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		if isNoDocuments(err) {
			return nil, apierror.NotFound("Category not found")
		}
		return nil, apierror.Internal(err)
	}
	return category, nil
}

// UpdateCategory is a full replacement of the declared fields: the
// uniqueness check re-runs only when the name actually changed, and the
// image follows the file/URL/keep resolution order.
func (s *CategoryService) UpdateCategory(ctx context.Context, id, name string, image ImageInput) (*models.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apierror.InvalidID("Invalid category id")
	}

	existing, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		if isNoDocuments(err) {
			return nil, apierror.NotFound("Category does not exist")
		}
		return nil, apierror.Internal(err)
	}

	name = strings.TrimSpace(name)
	if name != existing.Name {
		if _, err := s.repo.FindByName(ctx, name, oid); err == nil {
			return nil, apierror.Conflict("Category with this name already exists")
		} else if !isNoDocuments(err) {
			return nil, apierror.Internal(err)
		}
	}

	imageURL, err := resolveImageOnUpdate(s.files, existing.Image, image, categoryImageFolder)
	if err != nil {
		return nil, apierror.IO("failed to store category image", err)
	}

	category, err := s.repo.Update(ctx, oid, bson.M{
		"name":  name,
		"image": imageURL,
	})
	if err != nil {
		if isDuplicateKey(err) {
			return nil, apierror.Conflict("Category with this name already exists")
		}
		return nil, apierror.Internal(err)
	}

	return category, nil
}

// DeleteCategory removes the stored asset before the record; an asset-delete
// failure (other than a missing file) aborts the whole operation.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apierror.InvalidID("Invalid category id")
	}

	existing, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		if isNoDocuments(err) {
			return apierror.NotFound("Category does not exist")
		}
		return apierror.Internal(err)
	}

	if existing.Image != "" {
		if err := s.files.Delete(existing.Image); err != nil {
			return apierror.IO("failed to delete category image", err)
		}
	}

	if err := s.repo.Delete(ctx, oid); err != nil {
		return apierror.Internal(err)
	}
	return nil
}
