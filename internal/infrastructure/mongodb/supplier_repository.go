package mongodb

import (
	"context"

	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ repository.SupplierRepository = (*SupplierRepository)(nil)

// SupplierRepository proveedores.
type SupplierRepository struct {
	coll *mongo.Collection
}

// NewSupplierRepository construye el repositorio.
func NewSupplierRepository(db *mongo.Database) *SupplierRepository {
	return &SupplierRepository{coll: db.Collection(collSuppliers)}
}

func (r *SupplierRepository) Create(ctx context.Context, s *entity.Supplier) error {
	return insert(ctx, r.coll, s)
}

func (r *SupplierRepository) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	return findOne[entity.Supplier](ctx, r.coll, bson.M{"_id": id})
}

func (r *SupplierRepository) Update(ctx context.Context, s *entity.Supplier) error {
	return replaceByID(ctx, r.coll, s.ID, s)
}

func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

func (r *SupplierRepository) List(ctx context.Context, search string, page repository.Page) ([]*entity.Supplier, int64, error) {
	filter := bson.M{}
	if search != "" {
		filter["$or"] = anyContains(search, "name", "phone", "email", "address", "tax_code")
	}
	return paged[entity.Supplier](ctx, r.coll, filter, bson.D{{Key: "created_at", Value: -1}}, page)
}

func (r *SupplierRepository) FindIDsByName(ctx context.Context, search string) ([]string, error) {
	return distinctIDs(ctx, r.coll, bson.M{"name": contains(search)})
}

func (r *SupplierRepository) GetByIDs(ctx context.Context, ids []string) ([]*entity.Supplier, error) {
	return findAll[entity.Supplier](ctx, r.coll, bson.M{"_id": bson.M{"$in": ids}})
}
