package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MonthPrice is a month/price pair embedded in a product.
type MonthPrice struct {
	MonthPrice       string `json:"month_price" bson:"month_price"`
	MonthCancelPrice string `json:"month_cancel_price" bson:"month_cancel_price"`
	MonthsID         string `json:"months_id" bson:"months_id"`
	ProductMonthsID  string `json:"product_months_id" bson:"product_months_id"`
}

// ProductImage is an image id/url pair embedded in a product.
type ProductImage struct {
	ProductImageID string `json:"product_image_id" bson:"product_image_id"`
	Image          string `json:"image" bson:"image"`
}

// ProductDetail is a specification/detail pair embedded in a product.
type ProductDetail struct {
	SpecificationID string `json:"specification_id" bson:"specification_id"`
	Specification   string `json:"specification" bson:"specification"`
	Detail          string `json:"detail" bson:"detail"`
}

// Product is a catalog listing. ProductID is a secondary key that defaults
// to the document identity when the caller does not supply one; the name
// snapshots and vendor fields are denormalized copies owned by the caller.
// (product_name, category_id, sub_category_id) is unique.
type Product struct {
	ID                     primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProductID              string             `json:"product_id" bson:"product_id"`
	CategoryID             string             `json:"category_id" bson:"category_id"`
	SubCategoryID          string             `json:"sub_category_id" bson:"sub_category_id"`
	ProductTypeID          string             `json:"product_type_id" bson:"product_type_id"`
	ProductListingTypeID   string             `json:"product_listing_type_id" bson:"product_listing_type_id"`
	ProductName            string             `json:"product_name" bson:"product_name"`
	Price                  string             `json:"price" bson:"price"`
	CancelPrice            string             `json:"cancel_price" bson:"cancel_price"`
	Description            string             `json:"description" bson:"description"`
	ProductMainImage       string             `json:"product_main_image" bson:"product_main_image"`
	CategoryName           string             `json:"category_name" bson:"category_name"`
	SubCategoryName        string             `json:"sub_category_name" bson:"sub_category_name"`
	No                     string             `json:"no" bson:"no"`
	ProductTypeName        string             `json:"product_type_name" bson:"product_type_name"`
	ProductListingTypeName string             `json:"product_listing_type_name" bson:"product_listing_type_name"`
	VendorID               string             `json:"vendor_id" bson:"vendor_id"`
	VendorName             string             `json:"vendor_name" bson:"vendor_name"`
	VendorImage            string             `json:"vendor_image" bson:"vendor_image"`
	MonthArr               []MonthPrice       `json:"month_arr" bson:"month_arr"`
	Images                 []ProductImage     `json:"images" bson:"images"`
	ProductDetails         []ProductDetail    `json:"product_details" bson:"product_details"`
	CreatedAt              time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt              time.Time          `json:"updated_at" bson:"updated_at"`
}
