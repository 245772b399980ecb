package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// isDuplicateKey verifica si el error es una violación de índice único (E11000).
func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// contains regex literal sin distinguir mayúsculas.
func contains(s string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(s), "$options": "i"}
}

// equalFold coincidencia exacta sin distinguir mayúsculas.
func equalFold(s string) bson.M {
	return bson.M{"$regex": "^" + regexp.QuoteMeta(s) + "$", "$options": "i"}
}

// anyContains $or de contains sobre varios campos.
func anyContains(s string, fields ...string) bson.A {
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: contains(s)})
	}
	return or
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOneOptions) (*T, error) {
	var v T
	err := coll.FindOne(ctx, filter, opts...).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: buscar: %w", coll.Name(), err)
	}
	return &v, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOptions) ([]*T, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: listar: %w", coll.Name(), err)
	}
	defer cur.Close(ctx)

	out := make([]*T, 0)
	for cur.Next(ctx) {
		var v T
		if err := cur.Decode(&v); err != nil {
			return nil, fmt.Errorf("%s: decodificar: %w", coll.Name(), err)
		}
		out = append(out, &v)
	}
	return out, cur.Err()
}

// paged devuelve la ventana pedida y el total del filtro. Limit 0 = sin límite.
func paged[T any](ctx context.Context, coll *mongo.Collection, filter any, sort bson.D, page repository.Page) ([]*T, int64, error) {
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: contar: %w", coll.Name(), err)
	}
	opts := options.Find().SetSort(sort)
	if page.Limit > 0 {
		opts.SetLimit(int64(page.Limit))
	}
	if page.Offset > 0 {
		opts.SetSkip(int64(page.Offset))
	}
	items, err := findAll[T](ctx, coll, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func insert(ctx context.Context, coll *mongo.Collection, doc any) error {
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("%s: insertar: %w", coll.Name(), err)
	}
	return nil
}

func replaceByID(ctx context.Context, coll *mongo.Collection, id string, doc any) error {
	res, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("%s: actualizar: %w", coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%s: eliminar: %w", coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func distinctIDs(ctx context.Context, coll *mongo.Collection, filter any) ([]string, error) {
	vals, err := coll.Distinct(ctx, "_id", filter)
	if err != nil {
		return nil, fmt.Errorf("%s: ids: %w", coll.Name(), err)
	}
	ids := make([]string, 0, len(vals))
	for _, v := range vals {
		if s, ok := v.(string); ok {
			ids = append(ids, s)
		}
	}
	return ids, nil
}
