package cas_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"go.trai.ch/deparse/internal/adapters/cas"
	"go.trai.ch/deparse/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	tmpDir := t.TempDir()
	storePath := filepath.Join(tmpDir, ".deparse", "state.json")

	store, err := cas.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	got, err := store.Get("out/tree.json")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for unknown target, got %+v", got)
	}

	info := domain.ExportInfo{
		Target:    "out/tree.json",
		InputHash: "abc",
		Timestamp: time.Now(),
	}
	if err := store.Put(info); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err = store.Get("out/tree.json")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil")
	}
	if got.InputHash != info.InputHash {
		t.Errorf("expected InputHash %q, got %q", info.InputHash, got.InputHash)
	}
}

func TestStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()
	storePath := filepath.Join(tmpDir, "state.json")

	store1, err := cas.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore 1 failed: %v", err)
	}
	if err := store1.Put(domain.ExportInfo{Target: "graph.json", InputHash: "xyz"}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	store2, err := cas.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore 2 failed: %v", err)
	}
	got, err := store2.Get("graph.json")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil")
	}
	if got.InputHash != "xyz" {
		t.Errorf("expected InputHash %q, got %q", "xyz", got.InputHash)
	}
}

func TestStore_OmitZero(t *testing.T) {
	tmpDir := t.TempDir()
	storePath := filepath.Join(tmpDir, "state.json")

	store, err := cas.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if err := store.Put(domain.ExportInfo{Target: "tree.json"}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	//nolint:gosec // Test file with controlled path
	content, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	jsonStr := string(content)
	if strings.Contains(jsonStr, "input_hash") {
		t.Error("JSON should not contain 'input_hash' for zero value")
	}
	if strings.Contains(jsonStr, "timestamp") {
		t.Error("JSON should not contain 'timestamp' for zero value")
	}
	if !strings.Contains(jsonStr, `"target": "tree.json"`) {
		t.Errorf("JSON should contain the target, got %s", jsonStr)
	}
}

func TestStore_CorruptFile(t *testing.T) {
	tmpDir := t.TempDir()
	storePath := filepath.Join(tmpDir, "state.json")
	if err := os.WriteFile(storePath, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := cas.NewStore(storePath); err == nil {
		t.Fatal("expected error for corrupt state file")
	}
}

func TestStore_ConcurrentPut(t *testing.T) {
	const writers = 16

	for round := range 20 {
		storePath := filepath.Join(t.TempDir(), "state.json")
		store, err := cas.NewStore(storePath)
		if err != nil {
			t.Fatalf("NewStore failed: %v", err)
		}

		var wg sync.WaitGroup
		errs := make(chan error, writers)
		for i := range writers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- store.Put(domain.ExportInfo{
					Target:    fmt.Sprintf("out/%d.json", i),
					InputHash: fmt.Sprintf("hash-%d", i),
				})
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			if err != nil {
				t.Fatalf("round %d: Put failed: %v", round, err)
			}
		}

		reopened, err := cas.NewStore(storePath)
		if err != nil {
			t.Fatalf("round %d: reopening state failed: %v", round, err)
		}
		for i := range writers {
			got, err := reopened.Get(fmt.Sprintf("out/%d.json", i))
			if err != nil {
				t.Fatalf("round %d: Get failed: %v", round, err)
			}
			if got == nil || got.InputHash != fmt.Sprintf("hash-%d", i) {
				t.Fatalf("round %d: entry %d lost, got %+v", round, i, got)
			}
		}
	}
}
