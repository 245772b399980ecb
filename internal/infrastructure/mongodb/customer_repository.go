package mongodb

import (
	"context"

	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repository.CustomerRepository = (*CustomerRepository)(nil)

// CustomerRepository clientes invitados y registrados.
type CustomerRepository struct {
	coll *mongo.Collection
}

// NewCustomerRepository construye el repositorio.
func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{coll: db.Collection(collCustomers)}
}

func (r *CustomerRepository) Create(ctx context.Context, c *entity.Customer) error {
	return insert(ctx, r.coll, c)
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	return findOne[entity.Customer](ctx, r.coll, bson.M{"_id": id})
}

// GetByEmail prioriza el cliente registrado si hay varios con el mismo email.
func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "is_registered", Value: -1}, {Key: "created_at", Value: 1}})
	return findOne[entity.Customer](ctx, r.coll, bson.M{"email": equalFold(email)}, opts)
}

func (r *CustomerRepository) Update(ctx context.Context, c *entity.Customer) error {
	return replaceByID(ctx, r.coll, c.ID, c)
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

func (r *CustomerRepository) List(ctx context.Context, search string, page repository.Page) ([]*entity.Customer, int64, error) {
	filter := bson.M{}
	if search != "" {
		filter["$or"] = anyContains(search, "full_name", "phone_number", "email")
	}
	return paged[entity.Customer](ctx, r.coll, filter, bson.D{{Key: "created_at", Value: -1}}, page)
}

func (r *CustomerRepository) FindIDsByName(ctx context.Context, search string) ([]string, error) {
	return distinctIDs(ctx, r.coll, bson.M{"full_name": contains(search)})
}

func (r *CustomerRepository) GetByIDs(ctx context.Context, ids []string) ([]*entity.Customer, error) {
	return findAll[entity.Customer](ctx, r.coll, bson.M{"_id": bson.M{"$in": ids}})
}
