package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-service/models"
	"catalog-service/services"
)

// DropdownServiceAPI defines the interface for the dropdown bundle operations
type DropdownServiceAPI interface {
	GetDropdowns(ctx context.Context) (*models.Dropdowns, error)
	CreateDropdowns(ctx context.Context, in services.DropdownsInput) (*models.Dropdowns, error)
	UpdateDropdowns(ctx context.Context, in services.DropdownsInput) (*models.Dropdowns, error)
	DeleteDropdowns(ctx context.Context, in services.DropdownsInput) (*models.Dropdowns, error)
}

type DropdownTypeItem struct {
	ID          string `json:"id"`
	ProductType string `json:"product_type" validate:"required"`
}

type DropdownListingTypeItem struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required"`
}

type DropdownMonthItem struct {
	ID        string `json:"id"`
	MonthName string `json:"month_name" validate:"required"`
}

// DropdownsRequest is the bundle body of create/update.
type DropdownsRequest struct {
	ProductsType        []DropdownTypeItem        `json:"products_type" validate:"dive"`
	ProductsListingType []DropdownListingTypeItem `json:"products_listing_type" validate:"dive"`
	ProductsMonths      []DropdownMonthItem       `json:"products_months" validate:"dive"`
}

// DropdownIDItem names one record in a bulk delete.
type DropdownIDItem struct {
	ID string `json:"id" validate:"required"`
}

// DropdownsDeleteRequest is the bundle body of delete: explicit id lists.
type DropdownsDeleteRequest struct {
	ProductsType        []DropdownIDItem `json:"products_type" validate:"dive"`
	ProductsListingType []DropdownIDItem `json:"products_listing_type" validate:"dive"`
	ProductsMonths      []DropdownIDItem `json:"products_months" validate:"dive"`
}

func (req *DropdownsRequest) toInput() services.DropdownsInput {
	in := services.DropdownsInput{}
	for _, t := range req.ProductsType {
		in.ProductsType = append(in.ProductsType, services.ProductTypeItem{ID: t.ID, ProductType: t.ProductType})
	}
	for _, lt := range req.ProductsListingType {
		in.ProductsListingType = append(in.ProductsListingType, services.ListingTypeItem{ID: lt.ID, Name: lt.Name})
	}
	for _, m := range req.ProductsMonths {
		in.ProductsMonths = append(in.ProductsMonths, services.MonthItem{ID: m.ID, MonthName: m.MonthName})
	}
	return in
}

func (req *DropdownsDeleteRequest) toInput() services.DropdownsInput {
	in := services.DropdownsInput{}
	for _, t := range req.ProductsType {
		in.ProductsType = append(in.ProductsType, services.ProductTypeItem{ID: t.ID})
	}
	for _, lt := range req.ProductsListingType {
		in.ProductsListingType = append(in.ProductsListingType, services.ListingTypeItem{ID: lt.ID})
	}
	for _, m := range req.ProductsMonths {
		in.ProductsMonths = append(in.ProductsMonths, services.MonthItem{ID: m.ID})
	}
	return in
}

type DropdownController struct {
	service   DropdownServiceAPI
	validator *RequestValidator
}

func NewDropdownController(service DropdownServiceAPI) *DropdownController {
	return &DropdownController{
		service:   service,
		validator: NewRequestValidator(),
	}
}

func dropdownsBody(message string, d *models.Dropdowns) gin.H {
	return gin.H{
		"success":               true,
		"message":               message,
		"products_type":         d.ProductsType,
		"products_listing_type": d.ProductsListingType,
		"products_months":       d.ProductsMonths,
	}
}

// GetDropdowns handles GET /dropdowns.
func (ctl *DropdownController) GetDropdowns(c *gin.Context) {
	dropdowns, err := ctl.service.GetDropdowns(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dropdowns)
}

// CreateDropdowns handles POST /dropdowns.
func (ctl *DropdownController) CreateDropdowns(c *gin.Context) {
	var req DropdownsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := ctl.validator.Struct(req); err != nil {
		respondBadRequest(c, err)
		return
	}

	dropdowns, err := ctl.service.CreateDropdowns(c.Request.Context(), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dropdownsBody("Product dropdowns created successfully", dropdowns))
}

// UpdateDropdowns handles PUT /dropdowns.
func (ctl *DropdownController) UpdateDropdowns(c *gin.Context) {
	var req DropdownsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := ctl.validator.Struct(req); err != nil {
		respondBadRequest(c, err)
		return
	}

	dropdowns, err := ctl.service.UpdateDropdowns(c.Request.Context(), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dropdownsBody("Product dropdowns updated successfully", dropdowns))
}

// DeleteDropdowns handles DELETE /dropdowns.
func (ctl *DropdownController) DeleteDropdowns(c *gin.Context) {
	var req DropdownsDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := ctl.validator.Struct(req); err != nil {
		respondBadRequest(c, err)
		return
	}

	dropdowns, err := ctl.service.DeleteDropdowns(c.Request.Context(), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dropdownsBody("Product dropdowns deleted successfully", dropdowns))
}
