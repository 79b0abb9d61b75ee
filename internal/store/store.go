package store

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Collection names used throughout the service.
const (
	Users          = "users"
	OTPs           = "otps"
	Payments       = "payments"
	Questionnaires = "questionnaires"
	DashboardData  = "dashboard_data"
	Signals        = "signals"
)

// Document is a schemaless record as stored in a collection. Reads always
// carry the record identifier under "_id" as a plain string, regardless of
// the backend's native ID type.
type Document = bson.M

// Backend is the document-store gateway. Handlers and repositories talk to
// collections only through this interface, so the real MongoDB client and the
// in-memory fallback are interchangeable at startup.
//
// UpdateOne merges: only the fields present in set are written, everything
// else on the stored document is left untouched. Nothing retries — a failed
// call surfaces its error to the caller as-is.
type Backend interface {
	Insert(ctx context.Context, collection string, doc Document) (string, error)
	FindOne(ctx context.Context, collection string, filter Document) (Document, error)
	FindMany(ctx context.Context, collection string, filter Document, limit int64) ([]Document, error)
	UpdateOne(ctx context.Context, collection string, filter, set Document) (int64, error)
	DeleteMany(ctx context.Context, collection string, filter Document) (int64, error)
	Count(ctx context.Context, collection string, filter Document) (int64, error)
	Ping(ctx context.Context) error
}

// ToDocument converts a typed model into a Document via a bson round-trip,
// so tags on the struct decide the stored field names.
func ToDocument(v any) (Document, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// DecodeDocument is the inverse of ToDocument.
func DecodeDocument(doc Document, dest any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, dest)
}
