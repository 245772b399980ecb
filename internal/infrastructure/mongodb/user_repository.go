package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repository.UserRepository = (*UserRepository)(nil)

// UserRepository usuarios del back-office.
type UserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository construye el repositorio.
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(collUsers)}
}

// Create persiste el usuario. Email repetido → ErrEmailAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	err := insert(ctx, r.coll, u)
	if errors.Is(err, domain.ErrDuplicate) {
		return domain.ErrEmailAlreadyExists
	}
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return findOne[entity.User](ctx, r.coll, bson.M{"_id": id})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return findOne[entity.User](ctx, r.coll, bson.M{"email": equalFold(email)})
}

func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	return findAll[entity.User](ctx, r.coll, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
}

func (r *UserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"role": role})
	if err != nil {
		return 0, fmt.Errorf("contar usuarios: %w", err)
	}
	return n, nil
}
