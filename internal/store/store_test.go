package store

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pershop/pershop-pilote/internal/catalog"
	"github.com/pershop/pershop-pilote/internal/matching"
)

func testShopper(id string) *catalog.Shopper {
	return &catalog.Shopper{ID: id, Name: "Camille", Zone: "Paris"}
}

func testClient(first string) *matching.Client {
	return &matching.Client{
		FirstName: first,
		LastName:  "Martin",
		City:      "Paris",
		Budget:    "100 - 300€",
		Styles:    []string{"chic"},
		Mode:      matching.ModeInPerson,
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assignments.jsonl")
	s := NewFileStore(path)

	var appended []*Assignment
	for i := 0; i < 3; i++ {
		a := NewAssignment(testShopper("ps-001"), testClient(fmt.Sprintf("Client%d", i)), "**Pré-brief**\nligne deux")
		if err := s.Append(a); err != nil {
			t.Fatalf("append: %v", err)
		}
		appended = append(appended, a)
	}

	loaded, err := s.LoadAll()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(loaded) != len(appended) {
		t.Fatalf("expected %d assignments, got %d", len(appended), len(loaded))
	}

	for i, got := range loaded {
		want := appended[i]
		if got.ID != want.ID {
			t.Fatalf("assignment %d: expected id %q, got %q", i, want.ID, got.ID)
		}
		if !got.Timestamp.Equal(want.Timestamp) {
			t.Fatalf("assignment %d: expected timestamp %v, got %v", i, want.Timestamp, got.Timestamp)
		}
		if got.ShopperID != want.ShopperID || got.ShopperName != want.ShopperName {
			t.Fatalf("assignment %d: shopper fields differ: %+v", i, got)
		}
		if got.Prebrief != want.Prebrief {
			t.Fatalf("assignment %d: prebrief differs: %q", i, got.Prebrief)
		}
		if got.Client == nil || got.Client.FirstName != want.Client.FirstName {
			t.Fatalf("assignment %d: embedded client differs: %+v", i, got.Client)
		}
		if len(got.Client.Styles) != 1 || got.Client.Styles[0] != "chic" {
			t.Fatalf("assignment %d: client styles differ: %v", i, got.Client.Styles)
		}
	}
}

func TestFileStoreSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assignments.jsonl")
	s := NewFileStore(path)

	first := NewAssignment(testShopper("ps-001"), testClient("Clara"), "brief 1")
	if err := s.Append(first); err != nil {
		t.Fatalf("append: %v", err)
	}

	// A partially written record between two good ones.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := f.WriteString("{\"id\": \"truncated\n\n"); err != nil {
		t.Fatalf("write garbage: %v", err)
	}
	f.Close()

	second := NewAssignment(testShopper("ps-002"), testClient("Jules"), "brief 2")
	if err := s.Append(second); err != nil {
		t.Fatalf("append: %v", err)
	}

	loaded, err := s.LoadAll()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(loaded) != 2 {
		t.Fatalf("expected 2 parseable assignments, got %d", len(loaded))
	}
	if loaded[0].ID != first.ID || loaded[1].ID != second.ID {
		t.Fatalf("expected file order to be preserved, got %s then %s", loaded[0].ID, loaded[1].ID)
	}
}

func TestFileStoreMissingFileIsEmptyHistory(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nothing-here.jsonl"))

	loaded, err := s.LoadAll()
	if err != nil {
		t.Fatalf("expected no error for a missing file, got %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty history, got %d", len(loaded))
	}
}

func TestForShopperNewestFirst(t *testing.T) {
	assignments := []*Assignment{
		{ID: "1", ShopperID: "ps-001", Timestamp: time.Now().UTC()},
		{ID: "2", ShopperID: "ps-002", Timestamp: time.Now().UTC()},
		{ID: "3", ShopperID: "ps-001", Timestamp: time.Now().UTC()},
	}

	mine := ForShopper(assignments, "ps-001")
	if len(mine) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(mine))
	}
	if mine[0].ID != "3" || mine[1].ID != "1" {
		t.Fatalf("expected newest first, got %s then %s", mine[0].ID, mine[1].ID)
	}

	if got := ForShopper(assignments, "ps-404"); len(got) != 0 {
		t.Fatalf("expected no assignments for unknown shopper, got %d", len(got))
	}
}

func TestNewAssignmentStampsIdentityAndTime(t *testing.T) {
	before := time.Now().UTC()
	a := NewAssignment(testShopper("ps-001"), testClient("Clara"), "brief")
	after := time.Now().UTC()

	if a.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if b := NewAssignment(testShopper("ps-001"), testClient("Clara"), "brief"); b.ID == a.ID {
		t.Fatalf("expected unique ids")
	}
	if a.Timestamp.Before(before) || a.Timestamp.After(after) {
		t.Fatalf("timestamp %v outside [%v, %v]", a.Timestamp, before, after)
	}
	if a.Timestamp.Location() != time.UTC {
		t.Fatalf("expected UTC timestamp, got %v", a.Timestamp.Location())
	}
}
