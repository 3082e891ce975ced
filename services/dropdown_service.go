package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"catalog-service/apierror"
	"catalog-service/models"
	"catalog-service/repository"
)

// ProductTypeItem, ListingTypeItem and MonthItem are bundle entries; an
// entry with an ID updates in place, one without is inserted as new.
type ProductTypeItem struct {
	ID          string
	ProductType string
}

type ListingTypeItem struct {
	ID   string
	Name string
}

type MonthItem struct {
	ID        string
	MonthName string
}

// DropdownsInput is one bundle request across the three reference
// collections. The collections are processed independently; there is no
// cross-collection atomicity.
type DropdownsInput struct {
	ProductsType        []ProductTypeItem
	ProductsListingType []ListingTypeItem
	ProductsMonths      []MonthItem
}

type DropdownService struct {
	types        repository.ProductTypeRepo
	listingTypes repository.ProductListingTypeRepo
	months       repository.ProductMonthRepo
}

func NewDropdownService(types repository.ProductTypeRepo, listingTypes repository.ProductListingTypeRepo, months repository.ProductMonthRepo) *DropdownService {
	return &DropdownService{
		types:        types,
		listingTypes: listingTypes,
		months:       months,
	}
}

// GetDropdowns returns the full reference snapshot in creation order.
func (s *DropdownService) GetDropdowns(ctx context.Context) (*models.Dropdowns, error) {
	types, err := s.types.FindAll(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	listingTypes, err := s.listingTypes.FindAll(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	months, err := s.months.FindAll(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	out := &models.Dropdowns{
		ProductsType:        make([]models.ProductTypeView, 0, len(types)),
		ProductsListingType: make([]models.ProductListingTypeView, 0, len(listingTypes)),
		ProductsMonths:      make([]models.ProductMonthView, 0, len(months)),
	}
	for _, t := range types {
		out.ProductsType = append(out.ProductsType, models.ProductTypeView{ID: t.ID, ProductType: t.ProductType})
	}
	for _, lt := range listingTypes {
		out.ProductsListingType = append(out.ProductsListingType, models.ProductListingTypeView{ID: lt.ID, Name: lt.Name})
	}
	for _, m := range months {
		out.ProductsMonths = append(out.ProductsMonths, models.ProductMonthView{ID: m.ID, MonthName: m.MonthName})
	}
	return out, nil
}

// CreateDropdowns bulk-inserts every supplied item, trimmed, with no
// per-item duplicate check, then returns the rebuilt snapshot.
func (s *DropdownService) CreateDropdowns(ctx context.Context, in DropdownsInput) (*models.Dropdowns, error) {
	if len(in.ProductsType) > 0 {
		docs := make([]models.ProductType, 0, len(in.ProductsType))
		for _, t := range in.ProductsType {
			docs = append(docs, models.ProductType{ProductType: strings.TrimSpace(t.ProductType)})
		}
		if err := s.types.CreateMany(ctx, docs); err != nil {
			return nil, apierror.Internal(err)
		}
	}

	if len(in.ProductsListingType) > 0 {
		docs := make([]models.ProductListingType, 0, len(in.ProductsListingType))
		for _, lt := range in.ProductsListingType {
			docs = append(docs, models.ProductListingType{Name: strings.TrimSpace(lt.Name)})
		}
		if err := s.listingTypes.CreateMany(ctx, docs); err != nil {
			return nil, apierror.Internal(err)
		}
	}

	if len(in.ProductsMonths) > 0 {
		docs := make([]models.ProductMonth, 0, len(in.ProductsMonths))
		for _, m := range in.ProductsMonths {
			docs = append(docs, models.ProductMonth{MonthName: strings.TrimSpace(m.MonthName)})
		}
		if err := s.months.CreateMany(ctx, docs); err != nil {
			return nil, apierror.Internal(err)
		}
	}

	return s.GetDropdowns(ctx)
}

// UpdateDropdowns updates entries that carry an id in place and inserts the
// rest as new records.
func (s *DropdownService) UpdateDropdowns(ctx context.Context, in DropdownsInput) (*models.Dropdowns, error) {
	for _, t := range in.ProductsType {
		value := strings.TrimSpace(t.ProductType)
		if t.ID != "" {
			oid, err := primitive.ObjectIDFromHex(t.ID)
			if err != nil {
				return nil, apierror.InvalidID("Invalid product type id")
			}
			if err := s.types.Update(ctx, oid, bson.M{"product_type": value}); err != nil {
				return nil, apierror.Internal(err)
			}
		} else {
			if err := s.types.Create(ctx, &models.ProductType{ProductType: value}); err != nil {
				return nil, apierror.Internal(err)
			}
		}
	}

	for _, lt := range in.ProductsListingType {
		value := strings.TrimSpace(lt.Name)
		if lt.ID != "" {
			oid, err := primitive.ObjectIDFromHex(lt.ID)
			if err != nil {
				return nil, apierror.InvalidID("Invalid listing type id")
			}
			if err := s.listingTypes.Update(ctx, oid, bson.M{"name": value}); err != nil {
				return nil, apierror.Internal(err)
			}
		} else {
			if err := s.listingTypes.Create(ctx, &models.ProductListingType{Name: value}); err != nil {
				return nil, apierror.Internal(err)
			}
		}
	}

	for _, m := range in.ProductsMonths {
		value := strings.TrimSpace(m.MonthName)
		if m.ID != "" {
			oid, err := primitive.ObjectIDFromHex(m.ID)
			if err != nil {
				return nil, apierror.InvalidID("Invalid month id")
			}
			if err := s.months.Update(ctx, oid, bson.M{"month_name": value}); err != nil {
				return nil, apierror.Internal(err)
			}
		} else {
			if err := s.months.Create(ctx, &models.ProductMonth{MonthName: value}); err != nil {
				return nil, apierror.Internal(err)
			}
		}
	}

	return s.GetDropdowns(ctx)
}

// DeleteDropdowns removes the listed ids from each collection.
func (s *DropdownService) DeleteDropdowns(ctx context.Context, in DropdownsInput) (*models.Dropdowns, error) {
	typeIDs := make([]primitive.ObjectID, 0, len(in.ProductsType))
	for _, t := range in.ProductsType {
		oid, err := primitive.ObjectIDFromHex(t.ID)
		if err != nil {
			return nil, apierror.InvalidID("Invalid product type id")
		}
		typeIDs = append(typeIDs, oid)
	}

	listingIDs := make([]primitive.ObjectID, 0, len(in.ProductsListingType))
	for _, lt := range in.ProductsListingType {
		oid, err := primitive.ObjectIDFromHex(lt.ID)
		if err != nil {
			return nil, apierror.InvalidID("Invalid listing type id")
		}
		listingIDs = append(listingIDs, oid)
	}

	monthIDs := make([]primitive.ObjectID, 0, len(in.ProductsMonths))
	for _, m := range in.ProductsMonths {
		oid, err := primitive.ObjectIDFromHex(m.ID)
		if err != nil {
			return nil, apierror.InvalidID("Invalid month id")
		}
		monthIDs = append(monthIDs, oid)
	}

	if err := s.types.DeleteMany(ctx, typeIDs); err != nil {
		return nil, apierror.Internal(err)
	}
	if err := s.listingTypes.DeleteMany(ctx, listingIDs); err != nil {
		return nil, apierror.Internal(err)
	}
	if err := s.months.DeleteMany(ctx, monthIDs); err != nil {
		return nil, apierror.Internal(err)
	}

	return s.GetDropdowns(ctx)
}
