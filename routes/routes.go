package routes

import (
	"github.com/gin-gonic/gin"

	"catalog-service/controllers"
)

// Controllers bundles the resource controllers the router mounts.
type Controllers struct {
	Categories    *controllers.CategoryController
	SubCategories *controllers.SubCategoryController
	Products      *controllers.ProductController
	Dropdowns     *controllers.DropdownController
}

func RegisterRoutes(r *gin.Engine, ctl Controllers) {
	v1 := r.Group("/v1")

	categoryRoutes := v1.Group("/categories")
	{
		categoryRoutes.POST("/create-category", ctl.Categories.CreateCategory)
		categoryRoutes.GET("/getall", ctl.Categories.GetCategories)
		categoryRoutes.GET("/getById/:id", ctl.Categories.GetCategoryByID)
		categoryRoutes.PUT("/update/:id", ctl.Categories.UpdateCategory)
		categoryRoutes.DELETE("/delete/:id", ctl.Categories.DeleteCategory)
	}

	subCategoryRoutes := v1.Group("/subcategories")
	{
		subCategoryRoutes.POST("/create-subcategory", ctl.SubCategories.CreateSubCategory)
		subCategoryRoutes.GET("/getall", ctl.SubCategories.GetSubCategories)
		subCategoryRoutes.GET("/getById/:id", ctl.SubCategories.GetSubCategoryByID)
		subCategoryRoutes.PUT("/update/:id", ctl.SubCategories.UpdateSubCategory)
		subCategoryRoutes.DELETE("/delete/:id", ctl.SubCategories.DeleteSubCategory)
	}

	productRoutes := v1.Group("/products")
	{
		productRoutes.POST("/create-product", ctl.Products.CreateProduct)
		productRoutes.GET("/getall", ctl.Products.GetProducts)
		productRoutes.GET("/getById/:id", ctl.Products.GetProductByID)
		productRoutes.PUT("/update/:id", ctl.Products.UpdateProduct)
		productRoutes.DELETE("/delete/:id", ctl.Products.DeleteProduct)
	}

	dropdownRoutes := v1.Group("/dropdowns")
	{
		dropdownRoutes.GET("", ctl.Dropdowns.GetDropdowns)
		dropdownRoutes.POST("", ctl.Dropdowns.CreateDropdowns)
		dropdownRoutes.PUT("", ctl.Dropdowns.UpdateDropdowns)
		dropdownRoutes.DELETE("", ctl.Dropdowns.DeleteDropdowns)
	}
}
