package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"catalog-service/apierror"
	"catalog-service/models"
	"catalog-service/repository"
	"catalog-service/services"
)

type fakeProductService struct {
	createCalls int
	lastInput   services.ProductInput
	lastParams  services.ListProductsParams
	lastQuery   repository.PageQuery
	lastID      string

	product *models.Product
	list    []models.Product
	total   int64
	err     error
}

func (f *fakeProductService) CreateProduct(ctx context.Context, in services.ProductInput) (*models.Product, error) {
	f.createCalls++
	f.lastInput = in
	return f.product, f.err
}

func (f *fakeProductService) ListProducts(ctx context.Context, params services.ListProductsParams, q repository.PageQuery) ([]models.Product, int64, error) {
	f.lastParams = params
	f.lastQuery = q
	return f.list, f.total, f.err
}

func (f *fakeProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	f.lastID = id
	return f.product, f.err
}

func (f *fakeProductService) UpdateProduct(ctx context.Context, id string, in services.ProductInput) (*models.Product, error) {
	f.lastID = id
	f.lastInput = in
	return f.product, f.err
}

func (f *fakeProductService) DeleteProduct(ctx context.Context, id string) error {
	f.lastID = id
	return f.err
}

func newProductRouter(service ProductServiceAPI) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctl := NewProductController(service)
	r.POST("/v1/products/create-product", ctl.CreateProduct)
	r.GET("/v1/products/getall", ctl.GetProducts)
	r.GET("/v1/products/getById/:id", ctl.GetProductByID)
	r.PUT("/v1/products/update/:id", ctl.UpdateProduct)
	r.DELETE("/v1/products/delete/:id", ctl.DeleteProduct)
	return r
}

func postJSON(r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validProductRequest() ProductRequest {
	return ProductRequest{
		CategoryID:           primitive.NewObjectID().Hex(),
		SubCategoryID:        primitive.NewObjectID().Hex(),
		ProductTypeID:        primitive.NewObjectID().Hex(),
		ProductListingTypeID: primitive.NewObjectID().Hex(),
		ProductName:          "Red Rose Bouquet",
		Price:                "45",
	}
}

func TestCreateProductHandler(t *testing.T) {
	service := &fakeProductService{
		product: &models.Product{ID: primitive.NewObjectID(), ProductName: "Red Rose Bouquet"},
	}
	r := newProductRouter(service)

	w := postJSON(r, http.MethodPost, "/v1/products/create-product", validProductRequest())
	if w.Code != http.StatusCreated {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}

	var body struct {
		Success bool           `json:"success"`
		Message string         `json:"message"`
		Product models.Product `json:"product"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.Message != "Product created successfully" || body.Product.ProductName != "Red Rose Bouquet" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if service.lastInput.ProductName != "Red Rose Bouquet" {
		t.Fatalf("service received input %+v", service.lastInput)
	}
}

func TestCreateProductMissingRequiredFields(t *testing.T) {
	service := &fakeProductService{}
	r := newProductRouter(service)

	req := validProductRequest()
	req.Price = ""
	w := postJSON(r, http.MethodPost, "/v1/products/create-product", req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
	if service.createCalls != 0 {
		t.Fatal("service must not be called on a validation failure")
	}
}

func TestCreateProductConflict(t *testing.T) {
	service := &fakeProductService{err: apierror.Conflict("Product with this name already exists")}
	r := newProductRouter(service)

	w := postJSON(r, http.MethodPost, "/v1/products/create-product", validProductRequest())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["message"] != "Product with this name already exists" {
		t.Fatalf("unexpected error body: %s", w.Body.String())
	}
}

func TestGetProductsForwardsFilters(t *testing.T) {
	service := &fakeProductService{list: []models.Product{}}
	r := newProductRouter(service)

	req := httptest.NewRequest(http.MethodGet,
		"/v1/products/getall?category_id=cat-1&product_type_id=pt-1&page=3&limit=5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if service.lastParams.CategoryID != "cat-1" || service.lastParams.ProductTypeID != "pt-1" {
		t.Fatalf("filters not forwarded: %+v", service.lastParams)
	}
	if service.lastParams.SubCategoryID != "" || service.lastParams.ProductListingTypeID != "" {
		t.Fatalf("absent filters must stay empty: %+v", service.lastParams)
	}
	if service.lastQuery.Page != 3 || service.lastQuery.Limit != 5 {
		t.Fatalf("pagination not forwarded: %+v", service.lastQuery)
	}
}

func TestGetProductByIDPassesRawIdentifier(t *testing.T) {
	service := &fakeProductService{product: &models.Product{ProductID: "SKU-100"}}
	r := newProductRouter(service)

	// The handler forwards the identifier untouched; hex-or-SKU resolution
	// lives in the workflow.
	req := httptest.NewRequest(http.MethodGet, "/v1/products/getById/SKU-100", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if service.lastID != "SKU-100" {
		t.Fatalf("service received id %q", service.lastID)
	}
}

func TestUpdateProductInvalidIDMapsTo400(t *testing.T) {
	service := &fakeProductService{err: apierror.InvalidID("Invalid product id")}
	r := newProductRouter(service)

	w := postJSON(r, http.MethodPut, "/v1/products/update/not-a-hex-id", validProductRequest())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
}

func TestDeleteProductHandler(t *testing.T) {
	service := &fakeProductService{}
	r := newProductRouter(service)

	id := primitive.NewObjectID().Hex()
	req := httptest.NewRequest(http.MethodDelete, "/v1/products/delete/"+id, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["message"] != "Product deleted successfully" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
