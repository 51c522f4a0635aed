package storage

import (
	"path/filepath"
	"testing"

	"csiface/pkg/types"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := OpenHistory(filepath.Join(t.TempDir(), ".csiface"))
	if err != nil {
		t.Fatalf("OpenHistory: %v", err)
	}
	t.Cleanup(func() { h.Close() })
	return h
}

func TestRecordFillsIDAndTimestamp(t *testing.T) {
	h := openTestHistory(t)

	op, err := h.Record(types.Operation{
		Kind:      "extract",
		ClassName: "Dice",
		Interface: "IDice",
		File:      "Game/Dice.cs",
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if op.ID == "" {
		t.Error("ID not assigned")
	}
	if op.CreatedAt.IsZero() {
		t.Error("CreatedAt not assigned")
	}
}

func TestRecent(t *testing.T) {
	h := openTestHistory(t)

	kinds := []string{"extract", "add-method", "implement"}
	for _, kind := range kinds {
		if _, err := h.Record(types.Operation{Kind: kind, ClassName: "Dice"}); err != nil {
			t.Fatalf("Record(%s): %v", kind, err)
		}
	}

	ops, err := h.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(ops) != 3 {
		t.Fatalf("got %d operations, want 3", len(ops))
	}

	ops, err = h.Recent(2)
	if err != nil {
		t.Fatalf("Recent with limit: %v", err)
	}
	if len(ops) != 2 {
		t.Errorf("limit not applied: got %d operations", len(ops))
	}
}

func TestSearch(t *testing.T) {
	h := openTestHistory(t)

	if _, err := h.Record(types.Operation{Kind: "extract", ClassName: "Dice", Interface: "IDice"}); err != nil {
		t.Fatal(err)
	}
	if _, err := h.Record(types.Operation{Kind: "implement", ClassName: "Portal", Interface: "IPortal"}); err != nil {
		t.Fatal(err)
	}

	ops, err := h.Search("Portal", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(ops) != 1 {
		t.Fatalf("got %d results, want 1: %+v", len(ops), ops)
	}
	if ops[0].ClassName != "Portal" || ops[0].Kind != "implement" {
		t.Errorf("wrong operation matched: %+v", ops[0])
	}

	ops, err = h.Search("Nothing", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(ops) != 0 {
		t.Errorf("empty query space returned %d results", len(ops))
	}
}

func TestReopenPersists(t *testing.T) {
	base := filepath.Join(t.TempDir(), ".csiface")

	h, err := OpenHistory(base)
	if err != nil {
		t.Fatalf("OpenHistory: %v", err)
	}
	if _, err := h.Record(types.Operation{Kind: "extract", ClassName: "Dice"}); err != nil {
		t.Fatal(err)
	}
	h.Close()

	h, err = OpenHistory(base)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer h.Close()

	ops, err := h.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(ops) != 1 || ops[0].ClassName != "Dice" {
		t.Errorf("recorded operation lost on reopen: %+v", ops)
	}
}
