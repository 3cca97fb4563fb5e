package store

import (
	"context"
	"path/filepath"
	"testing"

	"bookhaven/internal/config"
	"bookhaven/internal/log"
	"bookhaven/internal/store/db"
)

// Initialize the logger and config
func init() {
	config.Opts = config.GetDefaultOptions()
	config.Opts.LogFile = "/tmp/bookhaven-test.log"
	log.Logger = log.NewLogger()
}

func newTestStore(t *testing.T) *Store {
	t.Helper()

	database, err := db.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := database.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}
	return NewStore(database.DB)
}

func TestMigrateSeedsDefaults(t *testing.T) {
	s := newTestStore(t)

	definitions, err := s.ListQualityDefinitions()
	if err != nil {
		t.Fatal(err)
	}
	if len(definitions) == 0 {
		t.Fatal("Expected seeded quality definitions")
	}

	profiles, err := s.ListQualityProfiles()
	if err != nil {
		t.Fatal(err)
	}
	if len(profiles) == 0 {
		t.Fatal("Expected a seeded quality profile")
	}

	settings, err := s.ListSettings()
	if err != nil {
		t.Fatal(err)
	}
	if len(settings) == 0 {
		t.Fatal("Expected seeded settings")
	}
}

func TestGetOrCreateJWTSecret(t *testing.T) {
	s := newTestStore(t)

	first, err := s.GetOrCreateJWTSecret()
	if err != nil {
		t.Fatal(err)
	}
	if first == "" {
		t.Fatal("Expected a generated secret")
	}

	second, err := s.GetOrCreateJWTSecret()
	if err != nil {
		t.Fatal(err)
	}
	if second != first {
		t.Fatal("Expected the secret to be stable across calls")
	}
}
