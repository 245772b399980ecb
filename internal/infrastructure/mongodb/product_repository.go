package mongodb

import (
	"context"
	"fmt"

	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository catálogo de productos. Reseñas embebidas en el documento.
type ProductRepository struct {
	coll *mongo.Collection
}

// NewProductRepository construye el repositorio.
func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(collProducts)}
}

// Create persiste el producto. SKU o slug repetido → ErrDuplicate.
func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	return insert(ctx, r.coll, p)
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return findOne[entity.Product](ctx, r.coll, bson.M{"_id": id})
}

func (r *ProductRepository) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	return findOne[entity.Product](ctx, r.coll, bson.M{"sku": sku})
}

func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return findOne[entity.Product](ctx, r.coll, bson.M{"slug": slug})
}

func (r *ProductRepository) Update(ctx context.Context, p *entity.Product) error {
	return replaceByID(ctx, r.coll, p.ID, p)
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

func (r *ProductRepository) List(ctx context.Context, f repository.ProductFilter, sortBy string, page repository.Page) ([]*entity.Product, int64, error) {
	return paged[entity.Product](ctx, r.coll, productFilter(f), productSort(sortBy), page)
}

// productFilter traduce ProductFilter a un filtro BSON. Campos vacíos no filtran.
func productFilter(f repository.ProductFilter) bson.M {
	filter := bson.M{}
	if f.Search != "" {
		filter["$or"] = anyContains(f.Search, "name", "description", "sku")
	}
	if f.CategoryID != "" {
		filter["category_id"] = f.CategoryID
	}
	if len(f.Statuses) > 0 {
		filter["status"] = bson.M{"$in": f.Statuses}
	}
	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}
	if f.Featured != nil {
		filter["is_featured"] = *f.Featured
	}
	if f.Recommended != nil {
		filter["is_recommended"] = *f.Recommended
	}
	if f.Bestseller != nil {
		filter["is_bestseller"] = *f.Bestseller
	}
	if f.CreatedAfter != nil {
		filter["created_at"] = bson.M{"$gte": *f.CreatedAfter}
	}
	if f.IDs != nil {
		filter["_id"] = bson.M{"$in": f.IDs}
	}
	return filter
}

func productSort(sortBy string) bson.D {
	switch sortBy {
	case repository.SortOldest:
		return bson.D{{Key: "created_at", Value: 1}}
	case repository.SortPopular, repository.SortSoldDesc:
		return bson.D{{Key: "sold", Value: -1}, {Key: "created_at", Value: -1}}
	case repository.SortPriceAsc:
		return bson.D{{Key: "price", Value: 1}, {Key: "created_at", Value: -1}}
	case repository.SortPriceDesc:
		return bson.D{{Key: "price", Value: -1}, {Key: "created_at", Value: -1}}
	case repository.SortRating:
		return bson.D{{Key: "rating_average", Value: -1}, {Key: "created_at", Value: -1}}
	default:
		return bson.D{{Key: "created_at", Value: -1}}
	}
}

func (r *ProductRepository) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"$or": bson.A{
		bson.M{"category_id": categoryID},
		bson.M{"sub_category_id": categoryID},
	}})
	if err != nil {
		return 0, fmt.Errorf("contar productos por categoría: %w", err)
	}
	return n, nil
}

func (r *ProductRepository) IncrementViewCount(ctx context.Context, id string) error {
	return r.inc(ctx, id, bson.M{"view_count": 1})
}

func (r *ProductRepository) AdjustCounters(ctx context.Context, id string, soldDelta, qtyDelta int) error {
	return r.inc(ctx, id, bson.M{"sold": soldDelta, "quantity": qtyDelta})
}

func (r *ProductRepository) inc(ctx context.Context, id string, fields bson.M) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": fields})
	if err != nil {
		return fmt.Errorf("actualizar contadores de producto: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
