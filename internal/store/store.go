// Package store persists assignments as an append-only line-delimited JSON
// log. Appends never rewrite existing lines; reads scan the whole file.
package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pershop/pershop-pilote/internal/catalog"
	"github.com/pershop/pershop-pilote/internal/matching"
)

const defaultFileMode = 0o644

// Assignment links a client submission to its matched shopper and the
// generated pre-brief. Created once per successful match, never updated.
type Assignment struct {
	ID          string           `json:"id"`
	Timestamp   time.Time        `json:"timestamp"`
	ShopperID   string           `json:"shopper_id"`
	ShopperName string           `json:"shopper_nom"`
	Client      *matching.Client `json:"client"`
	Prebrief    string           `json:"prebrief"`
}

// NewAssignment stamps a fresh assignment with a unique id and the current
// UTC time.
func NewAssignment(shopper *catalog.Shopper, client *matching.Client, prebrief string) *Assignment {
	return &Assignment{
		ID:          uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		ShopperID:   shopper.ID,
		ShopperName: shopper.Name,
		Client:      client,
		Prebrief:    prebrief,
	}
}

// Store is the persistence contract for assignments. Implementations append
// whole records and return the full history in write order.
type Store interface {
	Append(a *Assignment) error
	LoadAll() ([]*Assignment, error)
}

// FileStore keeps assignments in a single shared JSONL file. Each append is
// one write of one line; no file locking is done, which is accepted for a
// single-instance deployment.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Append serializes the assignment to one JSON line and appends it.
func (s *FileStore) Append(a *Assignment) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal assignment: %w", err)
	}

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, defaultFileMode)
	if err != nil {
		return fmt.Errorf("open assignments file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("append assignment: %w", err)
	}

	return nil
}

// LoadAll reads every stored assignment in file order. Blank lines and
// malformed lines are skipped, so one corrupt record never blocks the rest
// of the history. A missing file is an empty history.
func (s *FileStore) LoadAll() ([]*Assignment, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open assignments file: %w", err)
	}
	defer file.Close()

	var assignments []*Assignment

	scanner := bufio.NewScanner(file)
	// Pre-briefs are multi-paragraph Markdown, so lines can get long.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var a Assignment
		if err := json.Unmarshal([]byte(line), &a); err != nil {
			continue
		}
		assignments = append(assignments, &a)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read assignments file: %w", err)
	}

	return assignments, nil
}

// ForShopper filters assignments for one shopper, most recent first.
func ForShopper(assignments []*Assignment, shopperID string) []*Assignment {
	var mine []*Assignment
	for i := len(assignments) - 1; i >= 0; i-- {
		if assignments[i].ShopperID == shopperID {
			mine = append(mine, assignments[i])
		}
	}
	return mine
}
