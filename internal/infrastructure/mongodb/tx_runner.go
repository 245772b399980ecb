package mongodb

import (
	"context"
	"fmt"

	"github.com/jhoicas/furnistore-api/internal/application/ports"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

var _ ports.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción de sesión de MongoDB.
type TxRunner struct {
	client  *mongo.Client
	enabled bool
}

// NewTxRunner construye el runner. Con enabled=false fn corre sin transacción
// (servidores standalone sin replica set).
func NewTxRunner(client *mongo.Client, enabled bool) *TxRunner {
	return &TxRunner{client: client, enabled: enabled}
}

// Run ejecuta fn con WithTransaction. Si ctx ya lleva una sesión, fn se une a esa transacción.
func (r *TxRunner) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	if !r.enabled || mongo.SessionFromContext(ctx) != nil {
		return fn(ctx)
	}
	sess, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("iniciar sesión: %w", err)
	}
	defer sess.EndSession(context.Background())

	txOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())
	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	}, txOpts)
	return err
}
