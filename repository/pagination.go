package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultLimit is the page size used when the caller supplies none.
const DefaultLimit = 10

// PageQuery is a normalized page/limit pair.
type PageQuery struct {
	Page  int
	Limit int
}

// NormalizePageQuery clamps raw page/limit values to usable ones; anything
// non-positive falls back to page 1 and the default limit.
func NormalizePageQuery(page, limit int) PageQuery {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return PageQuery{Page: page, Limit: limit}
}

// Page is the envelope every list endpoint responds with.
type Page struct {
	Data       interface{} `json:"data"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	Total      int64       `json:"total"`
	TotalPages int64       `json:"totalPages"`
}

// NewPage assembles the response envelope for one page of records.
func NewPage(data interface{}, q PageQuery, total int64) *Page {
	return &Page{
		Data:       data,
		Page:       q.Page,
		Limit:      q.Limit,
		Total:      total,
		TotalPages: TotalPages(total, q.Limit),
	}
}

// TotalPages is ceil(total / limit).
func TotalPages(total int64, limit int) int64 {
	if limit < 1 {
		return 0
	}
	tp := total / int64(limit)
	if total%int64(limit) != 0 {
		tp++
	}
	return tp
}

// Paginate runs a filtered, sorted skip/limit find over the collection,
// decodes the page into results (a pointer to a slice) and returns the total
// count of records matching the filter. Sort defaults to creation order.
func Paginate(ctx context.Context, coll *mongo.Collection, filter bson.M, sort bson.D, q PageQuery, results interface{}) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	if sort == nil {
		sort = bson.D{{Key: "created_at", Value: 1}}
	}

	findOptions := options.Find().
		SetSort(sort).
		SetSkip(int64((q.Page - 1) * q.Limit)).
		SetLimit(int64(q.Limit))

	cursor, err := coll.Find(ctx, filter, findOptions)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, results); err != nil {
		return 0, err
	}

	return coll.CountDocuments(ctx, filter)
}
