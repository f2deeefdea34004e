package store

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"remindbot/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_fk=1", name, time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite memory: %v", err)
	}
	if err := db.AutoMigrate(&model.Reminder{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return New(db)
}

func TestCreateAssignsIDAndTruncatesDueAt(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	due := time.Date(2022, time.January, 5, 20, 0, 42, 123, time.UTC)
	r := &model.Reminder{ChatID: 100, Note: "тест", DueAt: due}
	if err := s.Create(r); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if r.ID == 0 {
		t.Fatalf("Create did not assign an ID")
	}

	// Seconds are discarded on insert, so the exact-minute lookup hits.
	found, err := s.FindDueAt(time.Date(2022, time.January, 5, 20, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("FindDueAt returned error: %v", err)
	}
	if len(found) != 1 || found[0].ID != r.ID || found[0].Note != "тест" || found[0].ChatID != 100 {
		t.Fatalf("unexpected lookup result: %+v", found)
	}
}

func TestFindDueAtMatchesExactMinuteOnly(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	due := time.Date(2022, time.January, 5, 20, 0, 0, 0, time.UTC)
	if err := s.Create(&model.Reminder{ChatID: 1, Note: "a", DueAt: due}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	for _, at := range []time.Time{
		due.Add(-time.Minute),
		due.Add(time.Minute),
		due.Add(time.Hour),
	} {
		found, err := s.FindDueAt(at)
		if err != nil {
			t.Fatalf("FindDueAt(%v) returned error: %v", at, err)
		}
		if len(found) != 0 {
			t.Fatalf("FindDueAt(%v) = %+v, want empty", at, found)
		}
	}

	// Sub-minute noise in the query time is irrelevant.
	found, err := s.FindDueAt(due.Add(37 * time.Second))
	if err != nil {
		t.Fatalf("FindDueAt returned error: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected a match at the due minute, got %+v", found)
	}
}

func TestFindDueAtReturnsAllRecordsForMinute(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	due := time.Date(2023, time.March, 8, 9, 30, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		r := &model.Reminder{ChatID: int64(i + 1), Note: fmt.Sprintf("note %d", i), DueAt: due}
		if err := s.Create(r); err != nil {
			t.Fatalf("Create %d returned error: %v", i, err)
		}
	}
	if err := s.Create(&model.Reminder{ChatID: 9, Note: "later", DueAt: due.Add(time.Minute)}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	found, err := s.FindDueAt(due)
	if err != nil {
		t.Fatalf("FindDueAt returned error: %v", err)
	}
	if len(found) != 3 {
		t.Fatalf("FindDueAt returned %d records, want 3: %+v", len(found), found)
	}
}

func TestDeleteByIDIsIdempotent(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	r := &model.Reminder{ChatID: 5, Note: "once", DueAt: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)}
	if err := s.Create(r); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	found, err := s.DeleteByID(r.ID)
	if err != nil {
		t.Fatalf("first DeleteByID returned error: %v", err)
	}
	if !found {
		t.Fatalf("first DeleteByID reported not found")
	}

	found, err = s.DeleteByID(r.ID)
	if err != nil {
		t.Fatalf("second DeleteByID returned error: %v", err)
	}
	if found {
		t.Fatalf("second DeleteByID reported found, want not found")
	}
}
