package workflows

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quietfox/keyfold/internal/configs"
	kerrors "github.com/quietfox/keyfold/internal/errors"
	"github.com/quietfox/keyfold/internal/store"
)

func TestInitCreatesStore(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	result, err := Init(context.Background())
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if !result.Created {
		t.Error("expected Created=true on a fresh home")
	}
	if result.StoreUUID == "" {
		t.Error("expected a store UUID")
	}

	info, err := os.Stat(filepath.Join(result.StorePath, store.IssuerConfigFilename))
	if err != nil {
		t.Fatalf("issuer marker missing: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("issuer marker should be empty, got %d bytes", info.Size())
	}
}

func TestInitIdempotent(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	first, err := Init(context.Background())
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	second, err := Init(context.Background())
	if err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	if second.Created {
		t.Error("second Init should not report Created")
	}
	if second.StoreUUID != first.StoreUUID {
		t.Errorf("store UUID changed: %q vs %q", first.StoreUUID, second.StoreUUID)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if _, err := Init(context.Background()); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	ctx := context.Background()
	saved, err := Save(ctx, SaveOptions{
		Name:      "gitlab",
		Plaintext: []byte("refresh_token=abc"),
		Password:  []byte("pw"),
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if saved.Overwritten {
		t.Error("first save should not report Overwritten")
	}

	loaded, err := Load(ctx, LoadOptions{Name: "gitlab", Password: []byte("pw")})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(loaded.Plaintext) != "refresh_token=abc" {
		t.Errorf("Plaintext = %q", loaded.Plaintext)
	}
}

func TestSaveRefusesOverwriteWithoutForce(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if _, err := Init(context.Background()); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	ctx := context.Background()
	opts := SaveOptions{Name: "gitlab", Plaintext: []byte("v1"), Password: []byte("pw")}
	if _, err := Save(ctx, opts); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := Save(ctx, opts); !errors.Is(err, kerrors.ErrConfigExists) {
		t.Errorf("expected ErrConfigExists, got: %v", err)
	}

	opts.Force = true
	opts.Plaintext = []byte("v2")
	result, err := Save(ctx, opts)
	if err != nil {
		t.Fatalf("forced Save failed: %v", err)
	}
	if !result.Overwritten {
		t.Error("forced save should report Overwritten")
	}
}

func TestSaveWithoutStore(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Save(context.Background(), SaveOptions{
		Name:      "gitlab",
		Plaintext: []byte("x"),
		Password:  []byte("pw"),
	})
	if !errors.Is(err, kerrors.ErrStoreNotFound) {
		t.Errorf("expected ErrStoreNotFound, got: %v", err)
	}
}

func TestLoadWrongSuppliedPassword(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if _, err := Init(context.Background()); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	ctx := context.Background()
	if _, err := Save(ctx, SaveOptions{Name: "gitlab", Plaintext: []byte("x"), Password: []byte("right")}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	_, err := Load(ctx, LoadOptions{Name: "gitlab", Password: []byte("wrong")})
	if !errors.Is(err, kerrors.ErrWrongPassword) {
		t.Errorf("expected ErrWrongPassword, got: %v", err)
	}
}

func TestListSortedByName(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	result, err := Init(context.Background())
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	for _, name := range []string{"zeta", "alpha", "mike"} {
		if err := os.WriteFile(filepath.Join(result.StorePath, name), []byte("x"), 0600); err != nil {
			t.Fatalf("Failed to write fixture: %v", err)
		}
	}

	listing, err := List(context.Background(), ListOptions{Kind: KindAccounts, SortBy: configs.SortByName})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{"alpha", "mike", "zeta"}
	if len(listing.Names) != len(want) {
		t.Fatalf("Names = %v, want %v", listing.Names, want)
	}
	for i := range want {
		if listing.Names[i] != want[i] {
			t.Fatalf("Names = %v, want %v", listing.Names, want)
		}
	}
}

func TestListMostRecentlyModifiedFirst(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	result, err := Init(context.Background())
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"oldest", "middle", "newest"} {
		path := filepath.Join(result.StorePath, name)
		if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
			t.Fatalf("Failed to write fixture: %v", err)
		}
		when := base.Add(time.Duration(i) * time.Minute)
		if err := os.Chtimes(path, when, when); err != nil {
			t.Fatalf("Failed to set times: %v", err)
		}
	}

	listing, err := List(context.Background(), ListOptions{Kind: KindAccounts, SortBy: configs.SortByModified})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{"newest", "middle", "oldest"}
	for i := range want {
		if listing.Names[i] != want[i] {
			t.Fatalf("Names = %v, want %v", listing.Names, want)
		}
	}
}

func TestListClientsQualified(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	result, err := Init(context.Background())
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	path := filepath.Join(result.StorePath, "gitlab.clientconfig")
	if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	listing, err := List(context.Background(), ListOptions{Kind: KindClients})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listing.Names) != 1 || listing.Names[0] != path {
		t.Errorf("Names = %v, want [%s]", listing.Names, path)
	}
}

func TestRemove(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if _, err := Init(context.Background()); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	ctx := context.Background()
	if _, err := Save(ctx, SaveOptions{Name: "gitlab", Plaintext: []byte("x"), Password: []byte("pw")}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := Remove(ctx, RemoveOptions{Name: "gitlab"}); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := Remove(ctx, RemoveOptions{Name: "gitlab"}); !errors.Is(err, kerrors.ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound on second remove, got: %v", err)
	}
}
