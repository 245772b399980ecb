package mongodb

import (
	"context"

	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

// CategoryRepository categorías del catálogo.
type CategoryRepository struct {
	coll *mongo.Collection
}

// NewCategoryRepository construye el repositorio.
func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{coll: db.Collection(collCategories)}
}

func (r *CategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	return insert(ctx, r.coll, c)
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	return findOne[entity.Category](ctx, r.coll, bson.M{"_id": id})
}

func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	return findOne[entity.Category](ctx, r.coll, bson.M{"name": equalFold(name)})
}

func (r *CategoryRepository) Update(ctx context.Context, c *entity.Category) error {
	return replaceByID(ctx, r.coll, c.ID, c)
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

func (r *CategoryRepository) List(ctx context.Context, search string, page repository.Page) ([]*entity.Category, int64, error) {
	filter := bson.M{}
	if search != "" {
		filter["name"] = contains(search)
	}
	return paged[entity.Category](ctx, r.coll, filter, bson.D{{Key: "created_at", Value: -1}}, page)
}
