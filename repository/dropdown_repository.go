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

// The three dropdown reference collections share one shape of access:
// list-all in creation order, bulk insert, update-or-insert by id, and
// delete-many by id list.

var creationOrder = options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

func deleteManyByID(ctx context.Context, coll *mongo.Collection, ids []primitive.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return err
}

type ProductTypeRepository struct {
	collection *mongo.Collection
}

func NewProductTypeRepository(db *mongo.Database) *ProductTypeRepository {
	return &ProductTypeRepository{collection: db.Collection("producttypes")}
}

func (r *ProductTypeRepository) FindAll(ctx context.Context) ([]models.ProductType, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, creationOrder)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	types := []models.ProductType{}
	if err := cursor.All(ctx, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (r *ProductTypeRepository) Create(ctx context.Context, productType *models.ProductType) error {
	productType.ID = primitive.NewObjectID()
	productType.CreatedAt = time.Now().UTC()
	productType.UpdatedAt = productType.CreatedAt

	_, err := r.collection.InsertOne(ctx, productType)
	return err
}

func (r *ProductTypeRepository) CreateMany(ctx context.Context, types []models.ProductType) error {
	if len(types) == 0 {
		return nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(types))
	for i := range types {
		types[i].ID = primitive.NewObjectID()
		types[i].CreatedAt = now
		types[i].UpdatedAt = now
		docs = append(docs, types[i])
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *ProductTypeRepository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	updates["updated_at"] = time.Now().UTC()
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	return err
}

func (r *ProductTypeRepository) DeleteMany(ctx context.Context, ids []primitive.ObjectID) error {
	return deleteManyByID(ctx, r.collection, ids)
}

type ProductListingTypeRepository struct {
	collection *mongo.Collection
}

func NewProductListingTypeRepository(db *mongo.Database) *ProductListingTypeRepository {
	return &ProductListingTypeRepository{collection: db.Collection("productlistingtypes")}
}

func (r *ProductListingTypeRepository) FindAll(ctx context.Context) ([]models.ProductListingType, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, creationOrder)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	listingTypes := []models.ProductListingType{}
	if err := cursor.All(ctx, &listingTypes); err != nil {
		return nil, err
	}
	return listingTypes, nil
}

func (r *ProductListingTypeRepository) Create(ctx context.Context, listingType *models.ProductListingType) error {
	listingType.ID = primitive.NewObjectID()
	listingType.CreatedAt = time.Now().UTC()
	listingType.UpdatedAt = listingType.CreatedAt

	_, err := r.collection.InsertOne(ctx, listingType)
	return err
}

func (r *ProductListingTypeRepository) CreateMany(ctx context.Context, listingTypes []models.ProductListingType) error {
	if len(listingTypes) == 0 {
		return nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(listingTypes))
	for i := range listingTypes {
		listingTypes[i].ID = primitive.NewObjectID()
		listingTypes[i].CreatedAt = now
		listingTypes[i].UpdatedAt = now
		docs = append(docs, listingTypes[i])
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *ProductListingTypeRepository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	updates["updated_at"] = time.Now().UTC()
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	return err
}

func (r *ProductListingTypeRepository) DeleteMany(ctx context.Context, ids []primitive.ObjectID) error {
	return deleteManyByID(ctx, r.collection, ids)
}

type ProductMonthRepository struct {
	collection *mongo.Collection
}

func NewProductMonthRepository(db *mongo.Database) *ProductMonthRepository {
	return &ProductMonthRepository{collection: db.Collection("productmonths")}
}

func (r *ProductMonthRepository) FindAll(ctx context.Context) ([]models.ProductMonth, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, creationOrder)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	months := []models.ProductMonth{}
	if err := cursor.All(ctx, &months); err != nil {
		return nil, err
	}
	return months, nil
}

func (r *ProductMonthRepository) Create(ctx context.Context, month *models.ProductMonth) error {
	month.ID = primitive.NewObjectID()
	month.CreatedAt = time.Now().UTC()
	month.UpdatedAt = month.CreatedAt

	_, err := r.collection.InsertOne(ctx, month)
	return err
}

func (r *ProductMonthRepository) CreateMany(ctx context.Context, months []models.ProductMonth) error {
	if len(months) == 0 {
		return nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(months))
	for i := range months {
		months[i].ID = primitive.NewObjectID()
		months[i].CreatedAt = now
		months[i].UpdatedAt = now
		docs = append(docs, months[i])
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *ProductMonthRepository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	updates["updated_at"] = time.Now().UTC()
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	return err
}

func (r *ProductMonthRepository) DeleteMany(ctx context.Context, ids []primitive.ObjectID) error {
	return deleteManyByID(ctx, r.collection, ids)
}
