package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubCategory belongs to a Category. The (category_id, name) pair is unique.
type SubCategory struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CategoryID primitive.ObjectID `json:"categoryId" bson:"category_id"`
	Name       string             `json:"name" bson:"name"`
	Image      string             `json:"image" bson:"image"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`
}

// SubCategoryView is the allow-listed shape every subcategory response uses.
type SubCategoryView struct {
	ID         primitive.ObjectID `json:"id"`
	CategoryID primitive.ObjectID `json:"categoryId"`
	Name       string             `json:"name"`
	Image      string             `json:"image"`
}

// View projects a subcategory onto its response shape.
func (s *SubCategory) View() SubCategoryView {
	return SubCategoryView{
		ID:         s.ID,
		CategoryID: s.CategoryID,
		Name:       s.Name,
		Image:      s.Image,
	}
}
