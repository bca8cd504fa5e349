package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// entry is one stored key/value document.
type entry struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Mongo keeps each key as one document in a collection.
type Mongo struct {
	coll *mongo.Collection
}

func NewMongo(db *mongo.Database, collection string) *Mongo {
	if collection == "" {
		collection = "content"
	}
	return &Mongo{coll: db.Collection(collection)}
}

// Get retrieves a value by key
func (m *Mongo) Get(ctx context.Context, key string) (string, bool, error) {
	var e entry
	err := m.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("find %s: %w", key, err)
	}
	return e.Value, true, nil
}

// Set upserts a single key
func (m *Mongo) Set(ctx context.Context, key, value string) error {
	_, err := m.coll.UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": value, "updated_at": time.Now()}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// SetMany upserts all entries in one transaction. Only a standalone
// server, which rejects transactions outright, gets a plain ordered bulk
// write instead.
func (m *Mongo) SetMany(ctx context.Context, entries map[string]string) error {
	if len(entries) == 0 {
		return nil
	}

	now := time.Now()
	models := make([]mongo.WriteModel, 0, len(entries))
	for k, v := range entries {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": k}).
			SetUpdate(bson.M{"$set": bson.M{"value": v, "updated_at": now}}).
			SetUpsert(true))
	}

	write := func(ctx context.Context) error {
		_, err := m.coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))
		return err
	}

	sess, err := m.coll.Database().Client().StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, write(sc)
	})
	if err == nil {
		return nil
	}
	if !transactionsUnsupported(err) {
		return fmt.Errorf("bulk set: %w", err)
	}
	if err := write(ctx); err != nil {
		return fmt.Errorf("bulk set: %w", err)
	}
	return nil
}

// codeIllegalOperation is what a standalone server answers to a
// transaction.
const codeIllegalOperation = 20

// transactionsUnsupported reports whether err means the deployment cannot
// run transactions at all, as opposed to a failed transaction.
func transactionsUnsupported(err error) bool {
	var se mongo.ServerError
	return errors.As(err, &se) && se.HasErrorCode(codeIllegalOperation)
}

// Delete removes a key. Deleting a missing key is not an error.
func (m *Mongo) Delete(ctx context.Context, key string) error {
	if _, err := m.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.coll.Database().Client().Disconnect(ctx)
}
