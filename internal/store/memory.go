package store

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Memory implements Backend entirely in-process. It is the fallback
// deployment profile used when no MongoDB is reachable: the same handler set
// runs against it with the identical contract, just without durability.
type Memory struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]Document)}
}

func (m *Memory) Insert(ctx context.Context, collection string, doc Document) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := copyDocument(doc)
	id, ok := stored["_id"].(string)
	if !ok || id == "" {
		id = uuid.NewString()
		stored["_id"] = id
	}
	m.collections[collection] = append(m.collections[collection], stored)
	return id, nil
}

func (m *Memory) FindOne(ctx context.Context, collection string, filter Document) (Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			return copyDocument(doc), nil
		}
	}
	return nil, nil
}

func (m *Memory) FindMany(ctx context.Context, collection string, filter Document, limit int64) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var results []Document
	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			results = append(results, copyDocument(doc))
			if limit > 0 && int64(len(results)) >= limit {
				break
			}
		}
	}
	return results, nil
}

func (m *Memory) UpdateOne(ctx context.Context, collection string, filter, set Document) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			for key, value := range set {
				doc[key] = value
			}
			return 1, nil
		}
	}
	return 0, nil
}

func (m *Memory) DeleteMany(ctx context.Context, collection string, filter Document) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var kept []Document
	var deleted int64
	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			deleted++
			continue
		}
		kept = append(kept, doc)
	}
	m.collections[collection] = kept
	return deleted, nil
}

func (m *Memory) Count(ctx context.Context, collection string, filter Document) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var count int64
	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			count++
		}
	}
	return count, nil
}

func (m *Memory) Ping(ctx context.Context) error {
	return nil
}

// matches supports the filter shapes the repositories actually use: field
// equality plus {"$gt": ...} / {"$gte": ...} on timestamps.
func matches(doc, filter Document) bool {
	for key, want := range filter {
		have, ok := doc[key]
		if !ok {
			return false
		}
		if operators, ok := want.(Document); ok {
			if !matchOperators(have, operators) {
				return false
			}
			continue
		}
		if !equalValues(have, want) {
			return false
		}
	}
	return true
}

func matchOperators(have any, operators Document) bool {
	haveTime, ok := asTime(have)
	if !ok {
		return false
	}
	for op, bound := range operators {
		boundTime, ok := asTime(bound)
		if !ok {
			return false
		}
		switch op {
		case "$gt":
			if !haveTime.After(boundTime) {
				return false
			}
		case "$gte":
			if haveTime.Before(boundTime) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// equalValues compares loosely across the type drift a bson round-trip
// introduces (int vs int32 vs int64, time.Time vs bson.DateTime).
func equalValues(a, b any) bool {
	if ta, ok := asTime(a); ok {
		tb, ok := asTime(b)
		return ok && ta.Equal(tb)
	}
	if na, ok := asFloat(a); ok {
		nb, ok := asFloat(b)
		return ok && na == nb
	}
	return reflect.DeepEqual(a, b)
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case bson.DateTime:
		return t.Time(), true
	}
	return time.Time{}, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func copyDocument(doc Document) Document {
	out := make(Document, len(doc))
	for key, value := range doc {
		out[key] = value
	}
	return out
}
