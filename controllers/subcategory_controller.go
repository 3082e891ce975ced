package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-service/models"
	"catalog-service/repository"
	"catalog-service/services"
)

// SubCategoryServiceAPI defines the interface for subcategory workflow operations
type SubCategoryServiceAPI interface {
	CreateSubCategory(ctx context.Context, categoryID, name string, image services.ImageInput) (*models.SubCategoryView, error)
	ListSubCategories(ctx context.Context, categoryID string, q repository.PageQuery) ([]models.SubCategoryView, int64, error)
	GetSubCategory(ctx context.Context, id string) (*models.SubCategoryView, error)
	UpdateSubCategory(ctx context.Context, id, categoryID, name string, image services.ImageInput) (*models.SubCategoryView, error)
	DeleteSubCategory(ctx context.Context, id string) error
}

// SubCategoryRequest is the multipart body of create/update; "id" is the
// parent category id.
type SubCategoryRequest struct {
	CategoryID string `form:"id" validate:"required"`
	Name       string `form:"name" validate:"required"`
	Image      string `form:"image"`
}

type SubCategoryController struct {
	service   SubCategoryServiceAPI
	validator *RequestValidator
}

func NewSubCategoryController(service SubCategoryServiceAPI) *SubCategoryController {
	return &SubCategoryController{
		service:   service,
		validator: NewRequestValidator(),
	}
}

// CreateSubCategory handles POST /subcategories/create-subcategory.
func (ctl *SubCategoryController) CreateSubCategory(c *gin.Context) {
	var req SubCategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := ctl.validator.Struct(req); err != nil {
		respondBadRequest(c, err)
		return
	}

	image, err := formImage(c, req.Image)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	subCategory, err := ctl.service.CreateSubCategory(c.Request.Context(), req.CategoryID, req.Name, image)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Subcategory created successfully!",
		"subCategory": subCategory,
	})
}

// GetSubCategories handles GET /subcategories/getall?categoryId=.
func (ctl *SubCategoryController) GetSubCategories(c *gin.Context) {
	q := ctl.validator.ParsePagination(c)

	subCategories, total, err := ctl.service.ListSubCategories(c.Request.Context(), c.Query("categoryId"), q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, repository.NewPage(subCategories, q, total))
}

// GetSubCategoryByID handles GET /subcategories/getById/:id.
func (ctl *SubCategoryController) GetSubCategoryByID(c *gin.Context) {
	subCategory, err := ctl.service.GetSubCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, subCategory)
}

// UpdateSubCategory handles PUT /subcategories/update/:id.
func (ctl *SubCategoryController) UpdateSubCategory(c *gin.Context) {
	var req SubCategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := ctl.validator.Struct(req); err != nil {
		respondBadRequest(c, err)
		return
	}

	image, err := formImage(c, req.Image)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	subCategory, err := ctl.service.UpdateSubCategory(c.Request.Context(), c.Param("id"), req.CategoryID, req.Name, image)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Subcategory updated successfully!",
		"data":    subCategory,
	})
}

// DeleteSubCategory handles DELETE /subcategories/delete/:id.
func (ctl *SubCategoryController) DeleteSubCategory(c *gin.Context) {
	if err := ctl.service.DeleteSubCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subcategory deleted successfully"})
}
