package repository

import (
	"context"
	"testing"

	"skillupTracker/internal/db"
	"skillupTracker/models"
)

// newSkillDeps opens an in-memory DB and creates two users to exercise scoping.
func newSkillDeps(t *testing.T, name string) (*SkillRepository, *models.User, *models.User) {
	t.Helper()
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	users := NewUserRepository(d)
	ctx := context.Background()
	a, err := users.Create(ctx, "alice", "alice@example.com", "h")
	if err != nil {
		t.Fatalf("create alice: %v", err)
	}
	b, err := users.Create(ctx, "bob", "bob@example.com", "h")
	if err != nil {
		t.Fatalf("create bob: %v", err)
	}
	return NewSkillRepository(d), a, b
}

func TestSkillRepository_CRUDAndScoping(t *testing.T) {
	skills, alice, bob := newSkillDeps(t, "skillrepo")
	ctx := context.Background()

	// Create for both users, interleaved.
	s1, err := skills.Create(ctx, alice.ID, "Go", 40)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if s1.ID == 0 || s1.Progress != 40 || s1.UserID != alice.ID {
		t.Fatalf("unexpected created skill: %+v", s1)
	}
	if _, err := skills.Create(ctx, bob.ID, "SQL", 10); err != nil {
		t.Fatalf("create for bob: %v", err)
	}
	if _, err := skills.Create(ctx, alice.ID, "Rust", 5); err != nil {
		t.Fatalf("create second for alice: %v", err)
	}

	// Listing is owner-scoped and in insertion order.
	list, err := skills.ListByUser(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Name != "Go" || list[1].Name != "Rust" {
		t.Fatalf("unexpected list for alice: %+v", list)
	}
	for _, s := range list {
		if s.UserID != alice.ID {
			t.Fatalf("foreign skill leaked into list: %+v", s)
		}
	}

	// Update own skill; the returned row is the full record, not just the
	// fields the caller sent.
	upd, err := skills.UpdateProgress(ctx, s1.ID, alice.ID, 90)
	if err != nil || upd == nil || upd.Progress != 90 {
		t.Fatalf("update: %v %+v", err, upd)
	}
	if upd.ID != s1.ID || upd.Name != "Go" || upd.UserID != alice.ID {
		t.Fatalf("updated row incomplete: %+v", upd)
	}

	// Bob cannot update or delete alice's skill; both look like not-found.
	if upd, err := skills.UpdateProgress(ctx, s1.ID, bob.ID, 1); err != nil || upd != nil {
		t.Fatalf("expected nil for foreign update, got %+v err=%v", upd, err)
	}
	if ok, err := skills.Delete(ctx, s1.ID, bob.ID); err != nil || ok {
		t.Fatalf("expected no-op for foreign delete, got ok=%v err=%v", ok, err)
	}
	if upd, _ := skills.UpdateProgress(ctx, s1.ID, alice.ID, 91); upd == nil || upd.Progress != 91 {
		t.Fatalf("skill should be intact after foreign attempts: %+v", upd)
	}

	// Delete own skill.
	ok, err := skills.Delete(ctx, s1.ID, alice.ID)
	if err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}
	list, err = skills.ListByUser(ctx, alice.ID)
	if err != nil || len(list) != 1 || list[0].Name != "Rust" {
		t.Fatalf("unexpected list after delete: %v %+v", err, list)
	}

	// Absent id is nil / false, not an error.
	if upd, err := skills.UpdateProgress(ctx, 99999, alice.ID, 50); err != nil || upd != nil {
		t.Fatalf("expected nil for absent id, got %+v err=%v", upd, err)
	}
	if ok, err := skills.Delete(ctx, 99999, alice.ID); err != nil || ok {
		t.Fatalf("expected false for absent id, got ok=%v err=%v", ok, err)
	}
}

func TestSkillRepository_ProgressBounds(t *testing.T) {
	skills, alice, _ := newSkillDeps(t, "skillrepo_bounds")
	ctx := context.Background()

	for _, p := range []int{-1, 101, 150} {
		if _, err := skills.Create(ctx, alice.ID, "Go", p); err != ErrInvalidProgress {
			t.Fatalf("create with progress=%d: expected ErrInvalidProgress, got %v", p, err)
		}
	}
	s, err := skills.Create(ctx, alice.ID, "Go", 0)
	if err != nil {
		t.Fatalf("create with progress=0: %v", err)
	}
	if _, err := skills.UpdateProgress(ctx, s.ID, alice.ID, 101); err != ErrInvalidProgress {
		t.Fatalf("update with progress=101: expected ErrInvalidProgress, got %v", err)
	}
	if upd, err := skills.UpdateProgress(ctx, s.ID, alice.ID, 100); err != nil || upd.Progress != 100 {
		t.Fatalf("update with progress=100: %v %+v", err, upd)
	}

	// No rows were created by the rejected writes.
	list, err := skills.ListByUser(ctx, alice.ID)
	if err != nil || len(list) != 1 {
		t.Fatalf("unexpected list: %v %+v", err, list)
	}
}

func TestSkillRepository_EmptyListIsNotNil(t *testing.T) {
	skills, alice, _ := newSkillDeps(t, "skillrepo_empty")

	list, err := skills.ListByUser(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", list)
	}
}
