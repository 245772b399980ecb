package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	_ repository.WarehouseRepository     = (*WarehouseRepository)(nil)
	_ repository.StockMovementRepository = (*StockMovementRepository)(nil)
)

// WarehouseRepository registros de bodega; product_id es único.
type WarehouseRepository struct {
	coll *mongo.Collection
}

// NewWarehouseRepository construye el repositorio.
func NewWarehouseRepository(db *mongo.Database) *WarehouseRepository {
	return &WarehouseRepository{coll: db.Collection(collWarehouses)}
}

func (r *WarehouseRepository) GetByProduct(ctx context.Context, productID string) (*entity.WarehouseRecord, error) {
	return findOne[entity.WarehouseRecord](ctx, r.coll, bson.M{"product_id": productID})
}

func (r *WarehouseRepository) List(ctx context.Context) ([]*entity.WarehouseRecord, error) {
	return findAll[entity.WarehouseRecord](ctx, r.coll, bson.M{}, options.Find().SetSort(bson.D{{Key: "last_updated", Value: -1}}))
}

// Upsert conserva el _id y created_at del registro existente.
func (r *WarehouseRepository) Upsert(ctx context.Context, rec *entity.WarehouseRecord) error {
	existing, err := r.GetByProduct(ctx, rec.ProductID)
	if err != nil {
		return err
	}
	if existing != nil {
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
	}
	_, err = r.coll.ReplaceOne(ctx, bson.M{"product_id": rec.ProductID}, rec, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("guardar registro de bodega: %w", err)
	}
	return nil
}

// Adjust incrementa con $inc y crea el registro si no existe.
func (r *WarehouseRepository) Adjust(ctx context.Context, productID string, delta int) (*entity.WarehouseRecord, error) {
	now := time.Now()
	update := bson.M{
		"$inc": bson.M{"quantity": delta},
		"$set": bson.M{"last_updated": now, "updated_at": now},
		"$setOnInsert": bson.M{
			"_id":        uuid.NewString(),
			"location":   "",
			"created_at": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var rec entity.WarehouseRecord
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"product_id": productID}, update, opts).Decode(&rec); err != nil {
		return nil, fmt.Errorf("ajustar existencia: %w", err)
	}
	return &rec, nil
}

func (r *WarehouseRepository) DeleteByProduct(ctx context.Context, productID string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"product_id": productID}); err != nil {
		return fmt.Errorf("eliminar registro de bodega: %w", err)
	}
	return nil
}

// StockMovementRepository historial de existencias.
type StockMovementRepository struct {
	coll *mongo.Collection
}

// NewStockMovementRepository construye el repositorio.
func NewStockMovementRepository(db *mongo.Database) *StockMovementRepository {
	return &StockMovementRepository{coll: db.Collection(collMovements)}
}

func (r *StockMovementRepository) Create(ctx context.Context, m *entity.StockMovement) error {
	return insert(ctx, r.coll, m)
}

func (r *StockMovementRepository) ListByProduct(ctx context.Context, productID string, page repository.Page) ([]*entity.StockMovement, int64, error) {
	return paged[entity.StockMovement](ctx, r.coll, bson.M{"product_id": productID}, bson.D{{Key: "created_at", Value: -1}}, page)
}
