package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"catalog-service/models"
)

// CategoryRepo defines the operations the category workflow needs.
type CategoryRepo interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	FindByName(ctx context.Context, name string, exclude primitive.ObjectID) (*models.Category, error)
	FindPage(ctx context.Context, q PageQuery) ([]models.Category, int64, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Category, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// SubCategoryRepo defines the operations the subcategory workflow needs.
type SubCategoryRepo interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.SubCategory, error)
	FindByName(ctx context.Context, categoryID primitive.ObjectID, name string, exclude primitive.ObjectID) (*models.SubCategory, error)
	FindPage(ctx context.Context, filter bson.M, q PageQuery) ([]models.SubCategory, int64, error)
	Create(ctx context.Context, subCategory *models.SubCategory) error
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.SubCategory, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ProductRepo defines the operations the product workflow needs.
type ProductRepo interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindByProductID(ctx context.Context, productID string) (*models.Product, error)
	FindByName(ctx context.Context, name, categoryID, subCategoryID string, exclude primitive.ObjectID) (*models.Product, error)
	FindPage(ctx context.Context, filter bson.M, q PageQuery) ([]models.Product, int64, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ProductTypeRepo, ProductListingTypeRepo and ProductMonthRepo cover the
// three parallel dropdown reference collections.
type ProductTypeRepo interface {
	FindAll(ctx context.Context) ([]models.ProductType, error)
	Create(ctx context.Context, productType *models.ProductType) error
	CreateMany(ctx context.Context, types []models.ProductType) error
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error
	DeleteMany(ctx context.Context, ids []primitive.ObjectID) error
}

type ProductListingTypeRepo interface {
	FindAll(ctx context.Context) ([]models.ProductListingType, error)
	Create(ctx context.Context, listingType *models.ProductListingType) error
	CreateMany(ctx context.Context, listingTypes []models.ProductListingType) error
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error
	DeleteMany(ctx context.Context, ids []primitive.ObjectID) error
}

type ProductMonthRepo interface {
	FindAll(ctx context.Context) ([]models.ProductMonth, error)
	Create(ctx context.Context, month *models.ProductMonth) error
	CreateMany(ctx context.Context, months []models.ProductMonth) error
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error
	DeleteMany(ctx context.Context, ids []primitive.ObjectID) error
}
