package store

import (
	"context"
	"testing"
	"time"
)

func TestMemoryInsertAndFindOne(t *testing.T) {
	ctx := context.Background()
	backend := NewMemory()

	id, err := backend.Insert(ctx, Users, Document{"_id": "u1", "email": "a@b.com"})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if id != "u1" {
		t.Errorf("Insert returned id %q, want u1", id)
	}

	doc, err := backend.FindOne(ctx, Users, Document{"email": "a@b.com"})
	if err != nil {
		t.Fatalf("FindOne failed: %v", err)
	}
	if doc == nil || doc["_id"] != "u1" {
		t.Errorf("FindOne returned %v, want _id u1", doc)
	}

	missing, err := backend.FindOne(ctx, Users, Document{"email": "nobody@b.com"})
	if err != nil {
		t.Fatalf("FindOne failed: %v", err)
	}
	if missing != nil {
		t.Errorf("FindOne for absent document returned %v, want nil", missing)
	}
}

func TestMemoryInsertGeneratesID(t *testing.T) {
	ctx := context.Background()
	backend := NewMemory()

	id, err := backend.Insert(ctx, Signals, Document{"signal_id": "s1"})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if id == "" {
		t.Error("Insert without _id returned empty id")
	}
}

func TestMemoryUpdateOneMerges(t *testing.T) {
	ctx := context.Background()
	backend := NewMemory()

	if _, err := backend.Insert(ctx, DashboardData, Document{"_id": "d1", "user_id": "u1", "win_rate": 60.0}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	modified, err := backend.UpdateOne(ctx, DashboardData, Document{"user_id": "u1"}, Document{"total_pnl": 120.5})
	if err != nil {
		t.Fatalf("UpdateOne failed: %v", err)
	}
	if modified != 1 {
		t.Errorf("UpdateOne modified %d documents, want 1", modified)
	}

	doc, err := backend.FindOne(ctx, DashboardData, Document{"_id": "d1"})
	if err != nil {
		t.Fatalf("FindOne failed: %v", err)
	}
	if doc["total_pnl"] != 120.5 {
		t.Errorf("total_pnl = %v, want 120.5", doc["total_pnl"])
	}
	if doc["win_rate"] != 60.0 {
		t.Errorf("win_rate = %v after partial update, want 60.0 untouched", doc["win_rate"])
	}
}

func TestMemoryDeleteManyAndCount(t *testing.T) {
	ctx := context.Background()
	backend := NewMemory()

	for i := 0; i < 3; i++ {
		if _, err := backend.Insert(ctx, OTPs, Document{"email": "a@b.com"}); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}
	if _, err := backend.Insert(ctx, OTPs, Document{"email": "c@d.com"}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	deleted, err := backend.DeleteMany(ctx, OTPs, Document{"email": "a@b.com"})
	if err != nil {
		t.Fatalf("DeleteMany failed: %v", err)
	}
	if deleted != 3 {
		t.Errorf("DeleteMany deleted %d, want 3", deleted)
	}

	count, err := backend.Count(ctx, OTPs, nil)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Count = %d, want 1", count)
	}
}

func TestMemoryTimeFilters(t *testing.T) {
	ctx := context.Background()
	backend := NewMemory()
	now := time.Now().UTC()

	if _, err := backend.Insert(ctx, OTPs, Document{"email": "a@b.com", "expires_at": now.Add(10 * time.Minute)}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if _, err := backend.Insert(ctx, OTPs, Document{"email": "a@b.com", "expires_at": now.Add(-time.Minute)}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	live, err := backend.Count(ctx, OTPs, Document{"email": "a@b.com", "expires_at": Document{"$gt": now}})
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if live != 1 {
		t.Errorf("unexpired count = %d, want 1", live)
	}
}

func TestMemoryFindManyLimit(t *testing.T) {
	ctx := context.Background()
	backend := NewMemory()

	for i := 0; i < 5; i++ {
		if _, err := backend.Insert(ctx, Signals, Document{"user_id": "u1"}); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	docs, err := backend.FindMany(ctx, Signals, Document{"user_id": "u1"}, 3)
	if err != nil {
		t.Fatalf("FindMany failed: %v", err)
	}
	if len(docs) != 3 {
		t.Errorf("FindMany returned %d documents, want 3", len(docs))
	}
}

func TestMemoryNumericEqualityAcrossCodec(t *testing.T) {
	ctx := context.Background()
	backend := NewMemory()

	// A bson round-trip stores small ints as int32; filters use plain ints
	doc, err := ToDocument(struct {
		Level int `bson:"milestone_access_level"`
	}{Level: 4})
	if err != nil {
		t.Fatalf("ToDocument failed: %v", err)
	}
	if _, err := backend.Insert(ctx, Questionnaires, doc); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	count, err := backend.Count(ctx, Questionnaires, Document{"milestone_access_level": 4})
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Count = %d, want 1", count)
	}
}
