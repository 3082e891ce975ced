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

// ProductInput carries the full declared field set of a product; updates are
// full replacements of these fields, not partial merges.
type ProductInput struct {
	ProductID              string
	CategoryID             string
	SubCategoryID          string
	ProductTypeID          string
	ProductListingTypeID   string
	ProductName            string
	Price                  string
	CancelPrice            string
	Description            string
	ProductMainImage       string
	CategoryName           string
	SubCategoryName        string
	No                     string
	ProductTypeName        string
	ProductListingTypeName string
	VendorID               string
	VendorName             string
	VendorImage            string
	MonthArr               []models.MonthPrice
	Images                 []models.ProductImage
	ProductDetails         []models.ProductDetail
}

// ListProductsParams defines the filters for listing products.
type ListProductsParams struct {
	CategoryID           string
	SubCategoryID        string
	ProductTypeID        string
	ProductListingTypeID string
}

type ProductService struct {
	repo repository.ProductRepo
}

func NewProductService(repo repository.ProductRepo) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) toModel(in ProductInput) *models.Product {
	product := &models.Product{
		ProductID:              in.ProductID,
		CategoryID:             in.CategoryID,
		SubCategoryID:          in.SubCategoryID,
		ProductTypeID:          in.ProductTypeID,
		ProductListingTypeID:   in.ProductListingTypeID,
		ProductName:            strings.TrimSpace(in.ProductName),
		Price:                  in.Price,
		CancelPrice:            in.CancelPrice,
		Description:            in.Description,
		ProductMainImage:       in.ProductMainImage,
		CategoryName:           in.CategoryName,
		SubCategoryName:        in.SubCategoryName,
		No:                     in.No,
		ProductTypeName:        in.ProductTypeName,
		ProductListingTypeName: in.ProductListingTypeName,
		VendorID:               in.VendorID,
		VendorName:             in.VendorName,
		VendorImage:            in.VendorImage,
		MonthArr:               in.MonthArr,
		Images:                 in.Images,
		ProductDetails:         in.ProductDetails,
	}
	if product.MonthArr == nil {
		product.MonthArr = []models.MonthPrice{}
	}
	if product.Images == nil {
		product.Images = []models.ProductImage{}
	}
	if product.ProductDetails == nil {
		product.ProductDetails = []models.ProductDetail{}
	}
	return product
}

// CreateProduct rejects duplicates within the (category, subcategory) scope
// and back-fills product_id with the generated identity when the caller
// supplied none.
func (s *ProductService) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	name := strings.TrimSpace(in.ProductName)

	if _, err := s.repo.FindByName(ctx, name, in.CategoryID, in.SubCategoryID, primitive.NilObjectID); err == nil {
		return nil, apierror.Conflict("Product with this name already exists")
	} else if !isNoDocuments(err) {
		return nil, apierror.Internal(err)
	}

	product := s.toModel(in)
	if err := s.repo.Create(ctx, product); err != nil {
		if isDuplicateKey(err) {
			return nil, apierror.Conflict("Product with this name already exists")
		}
		return nil, apierror.Internal(err)
	}

	if product.ProductID == "" {
		updated, err := s.repo.Update(ctx, product.ID, bson.M{"product_id": product.ID.Hex()})
		if err != nil {
			return nil, apierror.Internal(err)
		}
		product = updated
	}

	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context, params ListProductsParams, q repository.PageQuery) ([]models.Product, int64, error) {
	filter := bson.M{}
	if params.CategoryID != "" {
		filter["category_id"] = params.CategoryID
	}
	if params.SubCategoryID != "" {
		filter["sub_category_id"] = params.SubCategoryID
	}
	if params.ProductTypeID != "" {
		filter["product_type_id"] = params.ProductTypeID
	}
	if params.ProductListingTypeID != "" {
		filter["product_listing_type_id"] = params.ProductListingTypeID
	}

	products, total, err := s.repo.FindPage(ctx, filter, q)
	if err != nil {
		return nil, 0, apierror.Internal(err)
	}
	return products, total, nil
}

// GetProduct resolves a well-formed hex id through the primary identity and
// falls back to the secondary product_id key otherwise.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product *models.Product
	var err error

	if oid, idErr := primitive.ObjectIDFromHex(id); idErr == nil {
		product, err = s.repo.FindByID(ctx, oid)
	} else {
		product, err = s.repo.FindByProductID(ctx, id)
	}

	if err != nil {
		if isNoDocuments(err) {
			return nil, apierror.NotFound("Product not found")
		}
		return nil, apierror.Internal(err)
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, in ProductInput) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apierror.InvalidID("Invalid product id")
	}

	if _, err := s.repo.FindByID(ctx, oid); err != nil {
		if isNoDocuments(err) {
			return nil, apierror.NotFound("Product not found")
		}
		return nil, apierror.Internal(err)
	}

	name := strings.TrimSpace(in.ProductName)
	if _, err := s.repo.FindByName(ctx, name, in.CategoryID, in.SubCategoryID, oid); err == nil {
		return nil, apierror.Conflict("Product with this name already exists")
	} else if !isNoDocuments(err) {
		return nil, apierror.Internal(err)
	}

	replacement := s.toModel(in)
	product, err := s.repo.Update(ctx, oid, bson.M{
		"product_id":                replacement.ProductID,
		"category_id":               replacement.CategoryID,
		"sub_category_id":           replacement.SubCategoryID,
		"product_type_id":           replacement.ProductTypeID,
		"product_listing_type_id":   replacement.ProductListingTypeID,
		"product_name":              replacement.ProductName,
		"price":                     replacement.Price,
		"cancel_price":              replacement.CancelPrice,
		"description":               replacement.Description,
		"product_main_image":        replacement.ProductMainImage,
		"category_name":             replacement.CategoryName,
		"sub_category_name":         replacement.SubCategoryName,
		"no":                        replacement.No,
		"product_type_name":         replacement.ProductTypeName,
		"product_listing_type_name": replacement.ProductListingTypeName,
		"vendor_id":                 replacement.VendorID,
		"vendor_name":               replacement.VendorName,
		"vendor_image":              replacement.VendorImage,
		"month_arr":                 replacement.MonthArr,
		"images":                    replacement.Images,
		"product_details":           replacement.ProductDetails,
	})
	if err != nil {
		if isDuplicateKey(err) {
			return nil, apierror.Conflict("Product with this name already exists")
		}
		return nil, apierror.Internal(err)
	}

	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apierror.InvalidID("Invalid product id")
	}

	if _, err := s.repo.FindByID(ctx, oid); err != nil {
		if isNoDocuments(err) {
			return apierror.NotFound("Product not found")
		}
		return apierror.Internal(err)
	}

	if err := s.repo.Delete(ctx, oid); err != nil {
		return apierror.Internal(err)
	}
	return nil
}
