package store

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Mongo implements Backend on top of a MongoDB database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// ConnectMongo opens the client and pings it before returning, so a broken
// connection string fails process startup instead of the first request.
func ConnectMongo(uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	log.Println("✅ Connected to MongoDB")
	return &Mongo{client: client, db: client.Database(dbName)}, nil
}

func (m *Mongo) Insert(ctx context.Context, collection string, doc Document) (string, error) {
	result, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	return idToString(result.InsertedID), nil
}

func (m *Mongo) FindOne(ctx context.Context, collection string, filter Document) (Document, error) {
	var doc Document
	err := m.db.Collection(collection).FindOne(ctx, orEmpty(filter)).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return normalizeID(doc), nil
}

func (m *Mongo) FindMany(ctx context.Context, collection string, filter Document, limit int64) ([]Document, error) {
	opts := options.Find()
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cursor, err := m.db.Collection(collection).Find(ctx, orEmpty(filter), opts)
	if err != nil {
		return nil, err
	}
	var docs []Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	for _, doc := range docs {
		normalizeID(doc)
	}
	return docs, nil
}

func (m *Mongo) UpdateOne(ctx context.Context, collection string, filter, set Document) (int64, error) {
	result, err := m.db.Collection(collection).UpdateOne(ctx, orEmpty(filter), bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (m *Mongo) DeleteMany(ctx context.Context, collection string, filter Document) (int64, error) {
	result, err := m.db.Collection(collection).DeleteMany(ctx, orEmpty(filter))
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (m *Mongo) Count(ctx context.Context, collection string, filter Document) (int64, error) {
	return m.db.Collection(collection).CountDocuments(ctx, orEmpty(filter))
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

// Close releases the underlying client. Called from the process entry point
// on shutdown.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the service relies on: unique emails,
// TTL cleanup for one-time codes, and user back-reference lookups.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.db.Collection(Users).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = m.db.Collection(OTPs).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
		},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0), // TTL index — auto-delete expired codes
		},
	})
	if err != nil {
		return err
	}

	for _, collection := range []string{Payments, Questionnaires, DashboardData, Signals} {
		_, err = m.db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "user_id", Value: 1}},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func orEmpty(filter Document) Document {
	if filter == nil {
		return Document{}
	}
	return filter
}

// normalizeID rewrites a native ObjectID into its hex form so callers only
// ever see string identifiers.
func normalizeID(doc Document) Document {
	if oid, ok := doc["_id"].(bson.ObjectID); ok {
		doc["_id"] = oid.Hex()
	}
	return doc
}

func idToString(id any) string {
	switch v := id.(type) {
	case string:
		return v
	case bson.ObjectID:
		return v.Hex()
	default:
		return ""
	}
}
