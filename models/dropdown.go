package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductType is a dropdown reference record.
type ProductType struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProductType string             `json:"product_type" bson:"product_type"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// ProductListingType is a dropdown reference record.
type ProductListingType struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// ProductMonth is a dropdown reference record.
type ProductMonth struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	MonthName string             `json:"month_name" bson:"month_name"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// ProductTypeView is the dropdown response shape for product types.
type ProductTypeView struct {
	ID          primitive.ObjectID `json:"id"`
	ProductType string             `json:"product_type"`
}

// ProductListingTypeView is the dropdown response shape for listing types.
type ProductListingTypeView struct {
	ID   primitive.ObjectID `json:"id"`
	Name string             `json:"name"`
}

// ProductMonthView is the dropdown response shape for months.
type ProductMonthView struct {
	ID        primitive.ObjectID `json:"id"`
	MonthName string             `json:"month_name"`
}

// Dropdowns bundles the three reference collections into the shape every
// dropdown endpoint responds with.
type Dropdowns struct {
	ProductsType        []ProductTypeView        `json:"products_type"`
	ProductsListingType []ProductListingTypeView `json:"products_listing_type"`
	ProductsMonths      []ProductMonthView       `json:"products_months"`
}
