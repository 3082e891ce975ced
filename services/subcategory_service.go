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

type SubCategoryService struct {
	repo       repository.SubCategoryRepo
	categories repository.CategoryRepo
	files      FileStore
}

func NewSubCategoryService(repo repository.SubCategoryRepo, categories repository.CategoryRepo, files FileStore) *SubCategoryService {
	return &SubCategoryService{
		repo:       repo,
		categories: categories,
		files:      files,
	}
}

// CreateSubCategory checks the parent category exists and that the name is
// unused within it before persisting. Subcategory images share the
// categories folder.
func (s *SubCategoryService) CreateSubCategory(ctx context.Context, categoryID, name string, image ImageInput) (*models.SubCategoryView, error) {
	catID, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return nil, apierror.InvalidID("Invalid category id")
	}

	if _, err := s.categories.FindByID(ctx, catID); err != nil {
		if isNoDocuments(err) {
			return nil, apierror.NotFound("Category not found for this id")
		}
		return nil, apierror.Internal(err)
	}

	name = strings.TrimSpace(name)
	if _, err := s.repo.FindByName(ctx, catID, name, primitive.NilObjectID); err == nil {
		return nil, apierror.Conflict("Subcategory with this name already exists for this category")
	} else if !isNoDocuments(err) {
		return nil, apierror.Internal(err)
	}

	imageURL, err := resolveImageOnCreate(s.files, image, categoryImageFolder)
	if err != nil {
		return nil, apierror.IO("failed to store subcategory image", err)
	}

	subCategory := &models.SubCategory{
		CategoryID: catID,
		Name:       name,
		Image:      imageURL,
	}

	if err := s.repo.Create(ctx, subCategory); err != nil {
		if isDuplicateKey(err) {
			return nil, apierror.Conflict("Subcategory with this name already exists for this category")
		}
		return nil, apierror.Internal(err)
	}

	view := subCategory.View()
	return &view, nil
}

// ListSubCategories pages subcategories, optionally scoped to one category,
// and projects each record onto the allow-listed view.
func (s *SubCategoryService) ListSubCategories(ctx context.Context, categoryID string, q repository.PageQuery) ([]models.SubCategoryView, int64, error) {
	filter := bson.M{}
	if categoryID != "" {
		catID, err := primitive.ObjectIDFromHex(categoryID)
		if err != nil {
			return nil, 0, apierror.InvalidID("Invalid category id")
		}
		filter["category_id"] = catID
	}

	subCategories, total, err := s.repo.FindPage(ctx, filter, q)
	if err != nil {
		return nil, 0, apierror.Internal(err)
	}

	views := make([]models.SubCategoryView, 0, len(subCategories))
	for i := range subCategories {
		views = append(views, subCategories[i].View())
	}
	return views, total, nil
}

func (s *SubCategoryService) GetSubCategory(ctx context.Context, id string) (*models.SubCategoryView, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apierror.InvalidID("Invalid subcategory id")
	}

	subCategory, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		if isNoDocuments(err) {
			return nil, apierror.NotFound("Subcategory not found")
		}
		return nil, apierror.Internal(err)
	}

	view := subCategory.View()
	return &view, nil
}

// UpdateSubCategory re-validates the parent category, re-runs the scoped
// uniqueness check excluding the record itself, and fully replaces the
// declared fields.
func (s *SubCategoryService) UpdateSubCategory(ctx context.Context, id, categoryID, name string, image ImageInput) (*models.SubCategoryView, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apierror.InvalidID("Invalid subcategory id")
	}
	catID, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return nil, apierror.InvalidID("Invalid category id")
	}

	existing, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		if isNoDocuments(err) {
			return nil, apierror.NotFound("Subcategory does not exist")
		}
		return nil, apierror.Internal(err)
	}

	if _, err := s.categories.FindByID(ctx, catID); err != nil {
		if isNoDocuments(err) {
			return nil, apierror.NotFound("Category not found for this id")
		}
		return nil, apierror.Internal(err)
	}

	name = strings.TrimSpace(name)
	if _, err := s.repo.FindByName(ctx, catID, name, oid); err == nil {
		return nil, apierror.Conflict("Subcategory with this name already exists for this category")
	} else if !isNoDocuments(err) {
		return nil, apierror.Internal(err)
	}

	imageURL, err := resolveImageOnUpdate(s.files, existing.Image, image, categoryImageFolder)
	if err != nil {
		return nil, apierror.IO("failed to store subcategory image", err)
	}

	subCategory, err := s.repo.Update(ctx, oid, bson.M{
		"category_id": catID,
		"name":        name,
		"image":       imageURL,
	})
	if err != nil {
		if isDuplicateKey(err) {
			return nil, apierror.Conflict("Subcategory with this name already exists for this category")
		}
		return nil, apierror.Internal(err)
	}

	view := subCategory.View()
	return &view, nil
}

func (s *SubCategoryService) DeleteSubCategory(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apierror.InvalidID("Invalid subcategory id")
	}

	existing, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		if isNoDocuments(err) {
			return apierror.NotFound("Subcategory does not exist")
		}
		return apierror.Internal(err)
	}

	if existing.Image != "" {
		if err := s.files.Delete(existing.Image); err != nil {
			return apierror.IO("failed to delete subcategory image", err)
		}
	}

	if err := s.repo.Delete(ctx, oid); err != nil {
		return apierror.Internal(err)
	}
	return nil
}
