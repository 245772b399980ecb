package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	_ repository.OrderRepository         = (*OrderRepository)(nil)
	_ repository.PurchaseOrderRepository = (*PurchaseOrderRepository)(nil)
)

// OrderRepository pedidos de venta con sus líneas embebidas.
type OrderRepository struct {
	coll *mongo.Collection
}

// NewOrderRepository construye el repositorio.
func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(collOrders)}
}

func (r *OrderRepository) Create(ctx context.Context, o *entity.Order) error {
	return insert(ctx, r.coll, o)
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return findOne[entity.Order](ctx, r.coll, bson.M{"_id": id})
}

func (r *OrderRepository) Update(ctx context.Context, o *entity.Order) error {
	return replaceByID(ctx, r.coll, o.ID, o)
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

func (r *OrderRepository) List(ctx context.Context, f repository.OrderFilter, page repository.Page) ([]*entity.Order, int64, error) {
	return paged[entity.Order](ctx, r.coll, orderFilter(f), bson.D{{Key: "created_at", Value: -1}}, page)
}

func orderFilter(f repository.OrderFilter) bson.M {
	filter := bson.M{}
	if f.UserID != "" {
		filter["user_id"] = f.UserID
	}
	if f.CustomerID != "" {
		filter["customer_id"] = f.CustomerID
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Search != "" {
		or := anyContains(f.Search, "transaction_id", "code")
		if len(f.CustomerIDs) > 0 {
			or = append(or, bson.M{"customer_id": bson.M{"$in": f.CustomerIDs}})
		}
		filter["$or"] = or
	}
	return filter
}

func (r *OrderRepository) LastCode(ctx context.Context, prefix string) (string, error) {
	return lastCode(ctx, r.coll, prefix)
}

func (r *OrderRepository) SalesBetween(ctx context.Context, from, to time.Time) (repository.SalesTotals, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"status":     bson.M{"$ne": entity.OrderCancelled},
			"created_at": bson.M{"$gte": from, "$lt": to},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":    nil,
			"count":  bson.M{"$sum": 1},
			"amount": bson.M{"$sum": "$amount"},
		}}},
	}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return repository.SalesTotals{}, fmt.Errorf("ventas por rango: %w", err)
	}
	defer cur.Close(ctx)

	totals := repository.SalesTotals{Amount: decimal.Zero}
	if cur.Next(ctx) {
		var row struct {
			Count  int64           `bson:"count"`
			Amount decimal.Decimal `bson:"amount"`
		}
		if err := cur.Decode(&row); err != nil {
			return totals, fmt.Errorf("ventas por rango: %w", err)
		}
		totals.Count, totals.Amount = row.Count, row.Amount
	}
	return totals, cur.Err()
}

// PurchaseOrderRepository órdenes de compra con sus líneas embebidas.
type PurchaseOrderRepository struct {
	coll *mongo.Collection
}

// NewPurchaseOrderRepository construye el repositorio.
func NewPurchaseOrderRepository(db *mongo.Database) *PurchaseOrderRepository {
	return &PurchaseOrderRepository{coll: db.Collection(collPurchaseOrders)}
}

func (r *PurchaseOrderRepository) Create(ctx context.Context, po *entity.PurchaseOrder) error {
	return insert(ctx, r.coll, po)
}

func (r *PurchaseOrderRepository) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	return findOne[entity.PurchaseOrder](ctx, r.coll, bson.M{"_id": id})
}

func (r *PurchaseOrderRepository) Update(ctx context.Context, po *entity.PurchaseOrder) error {
	return replaceByID(ctx, r.coll, po.ID, po)
}

func (r *PurchaseOrderRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

func (r *PurchaseOrderRepository) List(ctx context.Context, supplierIDs []string, page repository.Page) ([]*entity.PurchaseOrder, int64, error) {
	filter := bson.M{}
	if supplierIDs != nil {
		filter["supplier_id"] = bson.M{"$in": supplierIDs}
	}
	return paged[entity.PurchaseOrder](ctx, r.coll, filter, bson.D{{Key: "created_at", Value: -1}}, page)
}

func (r *PurchaseOrderRepository) CountBySupplier(ctx context.Context, supplierID string) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"supplier_id": supplierID})
	if err != nil {
		return 0, fmt.Errorf("contar órdenes de compra: %w", err)
	}
	return n, nil
}

func (r *PurchaseOrderRepository) LastCode(ctx context.Context, prefix string) (string, error) {
	return lastCode(ctx, r.coll, prefix)
}

// lastCode usa el índice único de code: regex anclado y orden descendente.
func lastCode(ctx context.Context, coll *mongo.Collection, prefix string) (string, error) {
	var doc struct {
		Code string `bson:"code"`
	}
	err := coll.FindOne(ctx,
		bson.M{"code": bson.M{"$regex": "^" + regexp.QuoteMeta(prefix)}},
		options.FindOne().SetSort(bson.D{{Key: "code", Value: -1}}).SetProjection(bson.M{"code": 1}),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%s: último código: %w", coll.Name(), err)
	}
	return doc.Code, nil
}
