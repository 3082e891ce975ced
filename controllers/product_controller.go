package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-service/models"
	"catalog-service/repository"
	"catalog-service/services"
)

// ProductServiceAPI defines the interface for product workflow operations
type ProductServiceAPI interface {
	CreateProduct(ctx context.Context, in services.ProductInput) (*models.Product, error)
	ListProducts(ctx context.Context, params services.ListProductsParams, q repository.PageQuery) ([]models.Product, int64, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, in services.ProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// ProductRequest is the JSON body of create/update. Products carry no file
// upload; image references arrive as plain URLs.
type ProductRequest struct {
	ProductID              string                 `json:"product_id"`
	CategoryID             string                 `json:"category_id" validate:"required"`
	SubCategoryID          string                 `json:"sub_category_id" validate:"required"`
	ProductTypeID          string                 `json:"product_type_id" validate:"required"`
	ProductListingTypeID   string                 `json:"product_listing_type_id" validate:"required"`
	ProductName            string                 `json:"product_name" validate:"required"`
	Price                  string                 `json:"price" validate:"required"`
	CancelPrice            string                 `json:"cancel_price"`
	Description            string                 `json:"description"`
	ProductMainImage       string                 `json:"product_main_image"`
	CategoryName           string                 `json:"category_name"`
	SubCategoryName        string                 `json:"sub_category_name"`
	No                     string                 `json:"no"`
	ProductTypeName        string                 `json:"product_type_name"`
	ProductListingTypeName string                 `json:"product_listing_type_name"`
	VendorID               string                 `json:"vendor_id"`
	VendorName             string                 `json:"vendor_name"`
	VendorImage            string                 `json:"vendor_image"`
	MonthArr               []models.MonthPrice    `json:"month_arr"`
	Images                 []models.ProductImage  `json:"images"`
	ProductDetails         []models.ProductDetail `json:"product_details"`
}

func (req *ProductRequest) toInput() services.ProductInput {
	return services.ProductInput{
		ProductID:              req.ProductID,
		CategoryID:             req.CategoryID,
		SubCategoryID:          req.SubCategoryID,
		ProductTypeID:          req.ProductTypeID,
		ProductListingTypeID:   req.ProductListingTypeID,
		ProductName:            req.ProductName,
		Price:                  req.Price,
		CancelPrice:            req.CancelPrice,
		Description:            req.Description,
		ProductMainImage:       req.ProductMainImage,
		CategoryName:           req.CategoryName,
		SubCategoryName:        req.SubCategoryName,
		No:                     req.No,
		ProductTypeName:        req.ProductTypeName,
		ProductListingTypeName: req.ProductListingTypeName,
		VendorID:               req.VendorID,
		VendorName:             req.VendorName,
		VendorImage:            req.VendorImage,
		MonthArr:               req.MonthArr,
		Images:                 req.Images,
		ProductDetails:         req.ProductDetails,
	}
}

type ProductController struct {
	service   ProductServiceAPI
	validator *RequestValidator
}

func NewProductController(service ProductServiceAPI) *ProductController {
	return &ProductController{
		service:   service,
		validator: NewRequestValidator(),
	}
}

// CreateProduct handles POST /products/create-product.
func (ctl *ProductController) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := ctl.validator.Struct(req); err != nil {
		respondBadRequest(c, err)
		return
	}

	product, err := ctl.service.CreateProduct(c.Request.Context(), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Product created successfully",
		"product": product,
	})
}

// GetProducts handles GET /products/getall with the id filters.
func (ctl *ProductController) GetProducts(c *gin.Context) {
	q := ctl.validator.ParsePagination(c)

	params := services.ListProductsParams{
		CategoryID:           c.Query("category_id"),
		SubCategoryID:        c.Query("sub_category_id"),
		ProductTypeID:        c.Query("product_type_id"),
		ProductListingTypeID: c.Query("product_listing_type_id"),
	}

	products, total, err := ctl.service.ListProducts(c.Request.Context(), params, q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, repository.NewPage(products, q, total))
}

// GetProductByID handles GET /products/getById/:id; the identifier may be
// the primary identity or the secondary product_id.
func (ctl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctl.service.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateProduct handles PUT /products/update/:id.
func (ctl *ProductController) UpdateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := ctl.validator.Struct(req); err != nil {
		respondBadRequest(c, err)
		return
	}

	product, err := ctl.service.UpdateProduct(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product updated successfully",
		"data":    product,
	})
}

// DeleteProduct handles DELETE /products/delete/:id.
func (ctl *ProductController) DeleteProduct(c *gin.Context) {
	if err := ctl.service.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
