package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"catalog-service/models"
)

type SubCategoryRepository struct {
	collection *mongo.Collection
}

func NewSubCategoryRepository(db *mongo.Database) *SubCategoryRepository {
	return &SubCategoryRepository{
		collection: db.Collection("subcategories"),
	}
}

// EnsureIndexes creates the unique (category_id, name) index.
func (r *SubCategoryRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "category_id", Value: 1},
			{Key: "name", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *SubCategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.SubCategory, error) {
	var subCategory models.SubCategory
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&subCategory)
	if err != nil {
		return nil, err
	}
	return &subCategory, nil
}

// FindByName looks up a subcategory by name within one category, optionally
// excluding the record being updated.
func (r *SubCategoryRepository) FindByName(ctx context.Context, categoryID primitive.ObjectID, name string, exclude primitive.ObjectID) (*models.SubCategory, error) {
	filter := bson.M{"category_id": categoryID, "name": name}
	if exclude != primitive.NilObjectID {
		filter["_id"] = bson.M{"$ne": exclude}
	}

	var subCategory models.SubCategory
	err := r.collection.FindOne(ctx, filter).Decode(&subCategory)
	if err != nil {
		return nil, err
	}
	return &subCategory, nil
}

func (r *SubCategoryRepository) FindPage(ctx context.Context, filter bson.M, q PageQuery) ([]models.SubCategory, int64, error) {
	subCategories := []models.SubCategory{}
	total, err := Paginate(ctx, r.collection, filter, nil, q, &subCategories)
	if err != nil {
		return nil, 0, err
	}
	return subCategories, total, nil
}

func (r *SubCategoryRepository) Create(ctx context.Context, subCategory *models.SubCategory) error {
	subCategory.ID = primitive.NewObjectID()
	subCategory.CreatedAt = time.Now().UTC()
	subCategory.UpdatedAt = subCategory.CreatedAt

	_, err := r.collection.InsertOne(ctx, subCategory)
	return err
}

func (r *SubCategoryRepository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.SubCategory, error) {
	updates["updated_at"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var subCategory models.SubCategory
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": updates}, opts).Decode(&subCategory)
	if err != nil {
		return nil, err
	}
	return &subCategory, nil
}

func (r *SubCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
