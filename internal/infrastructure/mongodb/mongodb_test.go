package mongodb

import (
	"testing"
	"time"

	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

type amountDoc struct {
	Amount decimal.Decimal `bson:"amount"`
}

func TestDecimalCodec_GuardaComoDecimal128(t *testing.T) {
	reg := NewCodecRegistry()
	raw, err := bson.MarshalWithRegistry(reg, amountDoc{Amount: decimal.RequireFromString("1250000.50")})
	require.NoError(t, err)
	assert.Equal(t, bsontype.Decimal128, bson.Raw(raw).Lookup("amount").Type)

	var out amountDoc
	require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &out))
	assert.True(t, out.Amount.Equal(decimal.RequireFromString("1250000.5")), out.Amount.String())
}

func TestDecimalCodec_LeeNumerosHeredados(t *testing.T) {
	reg := NewCodecRegistry()
	for _, v := range []any{int32(7), int64(7), 7.0, "7"} {
		raw, err := bson.Marshal(bson.M{"amount": v})
		require.NoError(t, err)
		var out amountDoc
		require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &out))
		assert.True(t, out.Amount.Equal(decimal.NewFromInt(7)), "%T", v)
	}

	raw, err := bson.Marshal(bson.M{"amount": nil})
	require.NoError(t, err)
	var out amountDoc
	require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &out))
	assert.True(t, out.Amount.IsZero())
}

func TestProductFilter(t *testing.T) {
	minPrice := decimal.NewFromInt(100)
	featured := true
	after := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	f := productFilter(repository.ProductFilter{
		Search:       "sofa",
		Statuses:     []string{entity.ProductActive},
		MinPrice:     &minPrice,
		Featured:     &featured,
		CreatedAfter: &after,
	})

	assert.Len(t, f["$or"], 3)
	assert.Equal(t, bson.M{"$in": []string{entity.ProductActive}}, f["status"])
	assert.Equal(t, bson.M{"$gte": minPrice}, f["price"])
	assert.Equal(t, true, f["is_featured"])
	assert.NotContains(t, f, "_id")
	assert.NotContains(t, f, "category_id")

	// slice vacío de ids no devuelve nada, nil no filtra
	assert.Equal(t, bson.M{"$in": []string{}}, productFilter(repository.ProductFilter{IDs: []string{}})["_id"])
	assert.Empty(t, productFilter(repository.ProductFilter{}))
}

func TestProductSort(t *testing.T) {
	assert.Equal(t, "price", productSort(repository.SortPriceAsc)[0].Key)
	assert.Equal(t, -1, productSort(repository.SortPopular)[0].Value)
	assert.Equal(t, bson.D{{Key: "created_at", Value: -1}}, productSort(""))
}

func TestOrderFilter_BuscaPorClientes(t *testing.T) {
	f := orderFilter(repository.OrderFilter{Search: "ORD-2026", CustomerIDs: []string{"c1"}, Status: entity.OrderShipped})
	assert.Len(t, f["$or"], 3)
	assert.Equal(t, entity.OrderShipped, f["status"])

	f = orderFilter(repository.OrderFilter{Search: "ORD-2026"})
	assert.Len(t, f["$or"], 2)
}

func TestCashbookFilter_RangoInclusivo(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)
	f := cashbookFilter(repository.CashbookFilter{From: &from, To: &to, Direction: entity.DirectionOut})
	assert.Equal(t, bson.M{"$gte": from, "$lte": to}, f["payment_date"])
	assert.Equal(t, entity.DirectionOut, f["direction"])
}

func TestTargetFilter(t *testing.T) {
	assert.Equal(t, bson.M{"order_id": "o1"}, targetFilter(repository.PaymentTarget{OrderID: "o1"}))
	assert.Equal(t, bson.M{"purchase_order_id": "p1"}, targetFilter(repository.PaymentTarget{PurchaseOrderID: "p1"}))
	assert.Contains(t, targetFilter(repository.PaymentTarget{}), "_id")
}

func TestIndexModels_CubrenTodasLasColecciones(t *testing.T) {
	models := indexModels()
	for _, c := range []string{collUsers, collCustomers, collCategories, collProducts, collWarehouses,
		collMovements, collOrders, collPayments, collCashbook, collSuppliers, collPurchaseOrders} {
		assert.NotEmpty(t, models[c], c)
	}
}
