package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func asc(keys ...string) bson.D {
	d := make(bson.D, 0, len(keys))
	for _, k := range keys {
		d = append(d, bson.E{Key: k, Value: 1})
	}
	return d
}

func unique(keys ...string) mongo.IndexModel {
	return mongo.IndexModel{Keys: asc(keys...), Options: options.Index().SetUnique(true)}
}

func plain(keys ...string) mongo.IndexModel {
	return mongo.IndexModel{Keys: asc(keys...)}
}

// indexModels índices por colección.
func indexModels() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		collUsers:      {unique("email")},
		collCustomers:  {plain("email"), plain("full_name")},
		collCategories: {plain("name")},
		collProducts: {
			unique("sku"),
			unique("slug"),
			plain("category_id", "status"),
			plain("status", "created_at"),
			{Keys: bson.D{{Key: "sold", Value: -1}}},
		},
		collWarehouses: {unique("product_id")},
		collMovements:  {{Keys: bson.D{{Key: "product_id", Value: 1}, {Key: "created_at", Value: -1}}}},
		collOrders: {
			unique("code"),
			plain("customer_id"),
			plain("user_id"),
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
		collPayments: {
			{Keys: asc("idempotency_key"), Options: options.Index().SetUnique(true).SetSparse(true)},
			plain("order_id"),
			plain("purchase_order_id"),
		},
		collCashbook: {
			unique("payment_id"),
			{Keys: bson.D{{Key: "payment_date", Value: -1}, {Key: "created_at", Value: -1}}},
		},
		collSuppliers:      {plain("name")},
		collPurchaseOrders: {unique("code"), plain("supplier_id")},
	}
}

// EnsureIndexes crea los índices de todas las colecciones. Es idempotente.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for coll, models := range indexModels() {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("índices de %s: %w", coll, err)
		}
	}
	return nil
}
