package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"catalog-service/models"
	"catalog-service/repository"
)

// fakeFileStore records asset operations and can be told to fail deletes.
type fakeFileStore struct {
	stored       []string
	storeFolders []string
	deleted      []string
	deleteErr    error
	replaceCalls int
	urlSeq       int
}

func (f *fakeFileStore) Store(data []byte, originalName, folder string) (string, error) {
	f.urlSeq++
	url := fmt.Sprintf("/uploads/%s/%d-%s", folder, f.urlSeq, originalName)
	f.stored = append(f.stored, url)
	f.storeFolders = append(f.storeFolders, folder)
	return url, nil
}

func (f *fakeFileStore) Delete(fileURL string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, fileURL)
	return nil
}

func (f *fakeFileStore) Replace(oldURL string, data []byte, originalName string) (string, error) {
	f.replaceCalls++
	url, _ := f.Store(data, originalName, "categories_image")
	if err := f.Delete(oldURL); err != nil {
		return url, err
	}
	return url, nil
}

type fakeCategoryRepo struct {
	categories map[primitive.ObjectID]*models.Category
	deleted    []primitive.ObjectID
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[primitive.ObjectID]*models.Category{}}
}

func (f *fakeCategoryRepo) add(name, image string) *models.Category {
	category := &models.Category{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Image:     image,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	f.categories[category.ID] = category
	return category
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	if category, ok := f.categories[id]; ok {
		copied := *category
		return &copied, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeCategoryRepo) FindByName(ctx context.Context, name string, exclude primitive.ObjectID) (*models.Category, error) {
	for _, category := range f.categories {
		if category.Name == name && category.ID != exclude {
			copied := *category
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeCategoryRepo) FindPage(ctx context.Context, q repository.PageQuery) ([]models.Category, int64, error) {
	out := []models.Category{}
	for _, category := range f.categories {
		out = append(out, *category)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	category.ID = primitive.NewObjectID()
	category.CreatedAt = time.Now().UTC()
	category.UpdatedAt = category.CreatedAt
	copied := *category
	f.categories[category.ID] = &copied
	return nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if name, ok := updates["name"].(string); ok {
		category.Name = name
	}
	if image, ok := updates["image"].(string); ok {
		category.Image = image
	}
	category.UpdatedAt = time.Now().UTC()
	copied := *category
	return &copied, nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(f.categories, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeSubCategoryRepo struct {
	subCategories map[primitive.ObjectID]*models.SubCategory
	deleted       []primitive.ObjectID
}

func newFakeSubCategoryRepo() *fakeSubCategoryRepo {
	return &fakeSubCategoryRepo{subCategories: map[primitive.ObjectID]*models.SubCategory{}}
}

func (f *fakeSubCategoryRepo) add(categoryID primitive.ObjectID, name, image string) *models.SubCategory {
	subCategory := &models.SubCategory{
		ID:         primitive.NewObjectID(),
		CategoryID: categoryID,
		Name:       name,
		Image:      image,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	f.subCategories[subCategory.ID] = subCategory
	return subCategory
}

func (f *fakeSubCategoryRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.SubCategory, error) {
	if subCategory, ok := f.subCategories[id]; ok {
		copied := *subCategory
		return &copied, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeSubCategoryRepo) FindByName(ctx context.Context, categoryID primitive.ObjectID, name string, exclude primitive.ObjectID) (*models.SubCategory, error) {
	for _, subCategory := range f.subCategories {
		if subCategory.CategoryID == categoryID && subCategory.Name == name && subCategory.ID != exclude {
			copied := *subCategory
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeSubCategoryRepo) FindPage(ctx context.Context, filter bson.M, q repository.PageQuery) ([]models.SubCategory, int64, error) {
	out := []models.SubCategory{}
	for _, subCategory := range f.subCategories {
		if catID, ok := filter["category_id"].(primitive.ObjectID); ok && subCategory.CategoryID != catID {
			continue
		}
		out = append(out, *subCategory)
	}
	return out, int64(len(out)), nil
}

func (f *fakeSubCategoryRepo) Create(ctx context.Context, subCategory *models.SubCategory) error {
	subCategory.ID = primitive.NewObjectID()
	subCategory.CreatedAt = time.Now().UTC()
	subCategory.UpdatedAt = subCategory.CreatedAt
	copied := *subCategory
	f.subCategories[subCategory.ID] = &copied
	return nil
}

func (f *fakeSubCategoryRepo) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.SubCategory, error) {
	subCategory, ok := f.subCategories[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if catID, ok := updates["category_id"].(primitive.ObjectID); ok {
		subCategory.CategoryID = catID
	}
	if name, ok := updates["name"].(string); ok {
		subCategory.Name = name
	}
	if image, ok := updates["image"].(string); ok {
		subCategory.Image = image
	}
	subCategory.UpdatedAt = time.Now().UTC()
	copied := *subCategory
	return &copied, nil
}

func (f *fakeSubCategoryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(f.subCategories, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeProductRepo struct {
	products map[primitive.ObjectID]*models.Product
	updates  []bson.M
	deleted  []primitive.ObjectID
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[primitive.ObjectID]*models.Product{}}
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	if product, ok := f.products[id]; ok {
		copied := *product
		return &copied, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeProductRepo) FindByProductID(ctx context.Context, productID string) (*models.Product, error) {
	for _, product := range f.products {
		if product.ProductID == productID {
			copied := *product
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeProductRepo) FindByName(ctx context.Context, name, categoryID, subCategoryID string, exclude primitive.ObjectID) (*models.Product, error) {
	for _, product := range f.products {
		if product.ProductName == name && product.CategoryID == categoryID &&
			product.SubCategoryID == subCategoryID && product.ID != exclude {
			copied := *product
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeProductRepo) FindPage(ctx context.Context, filter bson.M, q repository.PageQuery) ([]models.Product, int64, error) {
	out := []models.Product{}
	for _, product := range f.products {
		if v, ok := filter["category_id"].(string); ok && product.CategoryID != v {
			continue
		}
		if v, ok := filter["sub_category_id"].(string); ok && product.SubCategoryID != v {
			continue
		}
		if v, ok := filter["product_type_id"].(string); ok && product.ProductTypeID != v {
			continue
		}
		if v, ok := filter["product_listing_type_id"].(string); ok && product.ProductListingTypeID != v {
			continue
		}
		out = append(out, *product)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) Create(ctx context.Context, product *models.Product) error {
	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now().UTC()
	product.UpdatedAt = product.CreatedAt
	copied := *product
	f.products[product.ID] = &copied
	return nil
}

func (f *fakeProductRepo) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	f.updates = append(f.updates, updates)
	for key, value := range updates {
		str, ok := value.(string)
		if !ok {
			continue
		}
		switch key {
		case "product_id":
			product.ProductID = str
		case "product_name":
			product.ProductName = str
		case "price":
			product.Price = str
		case "category_id":
			product.CategoryID = str
		case "sub_category_id":
			product.SubCategoryID = str
		}
	}
	product.UpdatedAt = time.Now().UTC()
	copied := *product
	return &copied, nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(f.products, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeProductTypeRepo struct {
	items   []models.ProductType
	updated map[primitive.ObjectID]bson.M
	deleted []primitive.ObjectID
}

func newFakeProductTypeRepo() *fakeProductTypeRepo {
	return &fakeProductTypeRepo{updated: map[primitive.ObjectID]bson.M{}}
}

func (f *fakeProductTypeRepo) FindAll(ctx context.Context) ([]models.ProductType, error) {
	return f.items, nil
}

func (f *fakeProductTypeRepo) Create(ctx context.Context, productType *models.ProductType) error {
	productType.ID = primitive.NewObjectID()
	f.items = append(f.items, *productType)
	return nil
}

func (f *fakeProductTypeRepo) CreateMany(ctx context.Context, types []models.ProductType) error {
	for i := range types {
		types[i].ID = primitive.NewObjectID()
		f.items = append(f.items, types[i])
	}
	return nil
}

func (f *fakeProductTypeRepo) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	f.updated[id] = updates
	return nil
}

func (f *fakeProductTypeRepo) DeleteMany(ctx context.Context, ids []primitive.ObjectID) error {
	f.deleted = append(f.deleted, ids...)
	return nil
}

type fakeListingTypeRepo struct {
	items   []models.ProductListingType
	updated map[primitive.ObjectID]bson.M
	deleted []primitive.ObjectID
}

func newFakeListingTypeRepo() *fakeListingTypeRepo {
	return &fakeListingTypeRepo{updated: map[primitive.ObjectID]bson.M{}}
}

func (f *fakeListingTypeRepo) FindAll(ctx context.Context) ([]models.ProductListingType, error) {
	return f.items, nil
}

func (f *fakeListingTypeRepo) Create(ctx context.Context, listingType *models.ProductListingType) error {
	listingType.ID = primitive.NewObjectID()
	f.items = append(f.items, *listingType)
	return nil
}

func (f *fakeListingTypeRepo) CreateMany(ctx context.Context, listingTypes []models.ProductListingType) error {
	for i := range listingTypes {
		listingTypes[i].ID = primitive.NewObjectID()
		f.items = append(f.items, listingTypes[i])
	}
	return nil
}

func (f *fakeListingTypeRepo) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	f.updated[id] = updates
	return nil
}

func (f *fakeListingTypeRepo) DeleteMany(ctx context.Context, ids []primitive.ObjectID) error {
	f.deleted = append(f.deleted, ids...)
	return nil
}

type fakeMonthRepo struct {
	items   []models.ProductMonth
	updated map[primitive.ObjectID]bson.M
	deleted []primitive.ObjectID
}

func newFakeMonthRepo() *fakeMonthRepo {
	return &fakeMonthRepo{updated: map[primitive.ObjectID]bson.M{}}
}

func (f *fakeMonthRepo) FindAll(ctx context.Context) ([]models.ProductMonth, error) {
	return f.items, nil
}

func (f *fakeMonthRepo) Create(ctx context.Context, month *models.ProductMonth) error {
	month.ID = primitive.NewObjectID()
	f.items = append(f.items, *month)
	return nil
}

func (f *fakeMonthRepo) CreateMany(ctx context.Context, months []models.ProductMonth) error {
	for i := range months {
		months[i].ID = primitive.NewObjectID()
		f.items = append(f.items, months[i])
	}
	return nil
}

func (f *fakeMonthRepo) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	f.updated[id] = updates
	return nil
}

func (f *fakeMonthRepo) DeleteMany(ctx context.Context, ids []primitive.ObjectID) error {
	f.deleted = append(f.deleted, ids...)
	return nil
}
