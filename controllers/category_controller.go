package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-service/models"
	"catalog-service/repository"
	"catalog-service/services"
)

// CategoryServiceAPI defines the interface for category workflow operations
type CategoryServiceAPI interface {
	CreateCategory(ctx context.Context, name string, image services.ImageInput) (*models.Category, error)
	ListCategories(ctx context.Context, q repository.PageQuery) ([]models.Category, int64, error)
	GetCategory(ctx context.Context, id string) (*models.Category, error)
	UpdateCategory(ctx context.Context, id, name string, image services.ImageInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// CategoryRequest is the multipart body of create/update; the optional
// "image" file part is read separately.
type CategoryRequest struct {
	Name  string `form:"name" validate:"required"`
	Image string `form:"image"`
}

type CategoryController struct {
	service   CategoryServiceAPI
	validator *RequestValidator
}

func NewCategoryController(service CategoryServiceAPI) *CategoryController {
	return &CategoryController{
		service:   service,
		validator: NewRequestValidator(),
	}
}

// CreateCategory handles POST /categories/create-category.
func (ctl *CategoryController) CreateCategory(c *gin.Context) {
	var req CategoryRequest
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

	category, err := ctl.service.CreateCategory(c.Request.Context(), req.Name, image)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Category created successfully!",
		"category": category,
	})
}

// GetCategories handles GET /categories/getall.
func (ctl *CategoryController) GetCategories(c *gin.Context) {
	q := ctl.validator.ParsePagination(c)

	categories, total, err := ctl.service.ListCategories(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, repository.NewPage(categories, q, total))
}

// GetCategoryByID handles GET /categories/getById/:id.
func (ctl *CategoryController) GetCategoryByID(c *gin.Context) {
	category, err := ctl.service.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// UpdateCategory handles PUT /categories/update/:id.
func (ctl *CategoryController) UpdateCategory(c *gin.Context) {
	var req CategoryRequest
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

	category, err := ctl.service.UpdateCategory(c.Request.Context(), c.Param("id"), req.Name, image)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Category updated successfully!",
		"data":    category,
	})
}

// DeleteCategory handles DELETE /categories/delete/:id.
func (ctl *CategoryController) DeleteCategory(c *gin.Context) {
	if err := ctl.service.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
