// Package mongodb implementa los repositorios sobre MongoDB.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/furnistore-api/pkg/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Nombres de colecciones.
const (
	collUsers          = "users"
	collCustomers      = "customers"
	collCategories     = "categories"
	collProducts       = "products"
	collWarehouses     = "warehouses"
	collMovements      = "stock_movements"
	collOrders         = "orders"
	collPayments       = "payments"
	collCashbook       = "cashbook_entries"
	collSuppliers      = "suppliers"
	collPurchaseOrders = "purchase_orders"
)

// Connect abre el cliente con el codec de decimales registrado y verifica la conexión con Ping.
func Connect(ctx context.Context, cfg config.DBConfig) (*mongo.Client, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetRegistry(NewCodecRegistry()).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("conectar a mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return client, nil
}
