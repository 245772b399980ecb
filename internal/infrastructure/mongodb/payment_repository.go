package mongodb

import (
	"context"
	"fmt"

	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	_ repository.PaymentRepository  = (*PaymentRepository)(nil)
	_ repository.CashbookRepository = (*CashbookRepository)(nil)
)

// PaymentRepository pagos de pedidos y órdenes de compra.
type PaymentRepository struct {
	coll *mongo.Collection
}

// NewPaymentRepository construye el repositorio.
func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{coll: db.Collection(collPayments)}
}

// Create persiste el pago. Clave de idempotencia repetida → ErrDuplicate.
func (r *PaymentRepository) Create(ctx context.Context, p *entity.Payment) error {
	return insert(ctx, r.coll, p)
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	return findOne[entity.Payment](ctx, r.coll, bson.M{"_id": id})
}

func (r *PaymentRepository) GetByIdempotencyKey(ctx context.Context, key string) (*entity.Payment, error) {
	if key == "" {
		return nil, nil
	}
	return findOne[entity.Payment](ctx, r.coll, bson.M{"idempotency_key": key})
}

func (r *PaymentRepository) Update(ctx context.Context, p *entity.Payment) error {
	return replaceByID(ctx, r.coll, p.ID, p)
}

func (r *PaymentRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

// targetFilter con destino vacío no coincide con ningún documento.
func targetFilter(t repository.PaymentTarget) bson.M {
	if t.OrderID != "" {
		return bson.M{"order_id": t.OrderID}
	}
	if t.PurchaseOrderID != "" {
		return bson.M{"purchase_order_id": t.PurchaseOrderID}
	}
	return bson.M{"_id": bson.M{"$in": bson.A{}}}
}

func (r *PaymentRepository) ListByTarget(ctx context.Context, t repository.PaymentTarget, search string, page repository.Page) ([]*entity.Payment, int64, error) {
	filter := targetFilter(t)
	if search != "" {
		filter["$or"] = anyContains(search, "note", "payment_method")
	}
	sort := bson.D{{Key: "payment_date", Value: -1}, {Key: "created_at", Value: -1}}
	return paged[entity.Payment](ctx, r.coll, filter, sort, page)
}

func (r *PaymentRepository) SumByTarget(ctx context.Context, t repository.PaymentTarget, excludeID string) (decimal.Decimal, error) {
	match := targetFilter(t)
	if excludeID != "" {
		match["_id"] = bson.M{"$ne": excludeID}
	}
	return sumAmount(ctx, r.coll, match)
}

// sumAmount suma el campo amount de los documentos que cumplen match.
func sumAmount(ctx context.Context, coll *mongo.Collection, match bson.M) (decimal.Decimal, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}}}},
	}
	cur, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: sumar montos: %w", coll.Name(), err)
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		return decimal.Zero, cur.Err()
	}
	var row struct {
		Total decimal.Decimal `bson:"total"`
	}
	if err := cur.Decode(&row); err != nil {
		return decimal.Zero, fmt.Errorf("%s: sumar montos: %w", coll.Name(), err)
	}
	return row.Total, nil
}

func (r *PaymentRepository) CountByTarget(ctx context.Context, t repository.PaymentTarget) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, targetFilter(t))
	if err != nil {
		return 0, fmt.Errorf("contar pagos: %w", err)
	}
	return n, nil
}

// CashbookRepository libro de caja; payment_id es único.
type CashbookRepository struct {
	coll *mongo.Collection
}

// NewCashbookRepository construye el repositorio.
func NewCashbookRepository(db *mongo.Database) *CashbookRepository {
	return &CashbookRepository{coll: db.Collection(collCashbook)}
}

func (r *CashbookRepository) Create(ctx context.Context, e *entity.CashbookEntry) error {
	return insert(ctx, r.coll, e)
}

func (r *CashbookRepository) GetByPaymentID(ctx context.Context, paymentID string) (*entity.CashbookEntry, error) {
	return findOne[entity.CashbookEntry](ctx, r.coll, bson.M{"payment_id": paymentID})
}

func (r *CashbookRepository) Update(ctx context.Context, e *entity.CashbookEntry) error {
	return replaceByID(ctx, r.coll, e.ID, e)
}

func (r *CashbookRepository) DeleteByPaymentID(ctx context.Context, paymentID string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"payment_id": paymentID}); err != nil {
		return fmt.Errorf("eliminar asiento de caja: %w", err)
	}
	return nil
}

func (r *CashbookRepository) SumByTarget(ctx context.Context, t repository.PaymentTarget) (decimal.Decimal, error) {
	return sumAmount(ctx, r.coll, targetFilter(t))
}

func cashbookFilter(f repository.CashbookFilter) bson.M {
	filter := bson.M{}
	date := bson.M{}
	if f.From != nil {
		date["$gte"] = *f.From
	}
	if f.To != nil {
		date["$lte"] = *f.To
	}
	if len(date) > 0 {
		filter["payment_date"] = date
	}
	if f.Direction != "" {
		filter["direction"] = f.Direction
	}
	if f.Search != "" {
		filter["$or"] = anyContains(f.Search, "note", "payment_method")
	}
	return filter
}

func (r *CashbookRepository) List(ctx context.Context, f repository.CashbookFilter, page repository.Page) ([]*entity.CashbookEntry, int64, error) {
	sort := bson.D{{Key: "payment_date", Value: -1}, {Key: "created_at", Value: -1}}
	return paged[entity.CashbookEntry](ctx, r.coll, cashbookFilter(f), sort, page)
}

// Totals agrega entradas y salidas sobre todo el conjunto filtrado.
func (r *CashbookRepository) Totals(ctx context.Context, f repository.CashbookFilter) (repository.CashbookTotals, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: cashbookFilter(f)}},
		{{Key: "$group", Value: bson.M{"_id": "$direction", "total": bson.M{"$sum": "$amount"}}}},
	}
	totals := repository.CashbookTotals{TotalIn: decimal.Zero, TotalOut: decimal.Zero}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return totals, fmt.Errorf("totales de caja: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var row struct {
			Direction string          `bson:"_id"`
			Total     decimal.Decimal `bson:"total"`
		}
		if err := cur.Decode(&row); err != nil {
			return totals, fmt.Errorf("totales de caja: %w", err)
		}
		switch row.Direction {
		case entity.DirectionIn:
			totals.TotalIn = row.Total
		case entity.DirectionOut:
			totals.TotalOut = row.Total
		}
	}
	return totals, cur.Err()
}
