package app

import (
	"testing"
)

// TestNew verifies app construction with version information.
func TestNew(t *testing.T) {
	application, err := New("1.2.3", "abc123", "2026-08-29")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if application.Version() != "1.2.3" {
		t.Errorf("Version() = %s, want 1.2.3", application.Version())
	}
	if application.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", application.Commit())
	}
	if application.Date() != "2026-08-29" {
		t.Errorf("Date() = %s, want 2026-08-29", application.Date())
	}
	if application.Config() == nil {
		t.Error("Config() returned nil")
	}
	if application.Logger() == nil {
		t.Error("Logger() returned nil")
	}
}

// TestApp_AtlasSingleton verifies the atlas is lazily created exactly once.
func TestApp_AtlasSingleton(t *testing.T) {
	application, err := New("dev", "unknown", "unknown")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	first, err := application.Atlas()
	if err != nil {
		t.Fatalf("Atlas() failed: %v", err)
	}

	second, err := application.Atlas()
	if err != nil {
		t.Fatalf("Atlas() failed on second call: %v", err)
	}

	if first != second {
		t.Error("Atlas() returned different instances")
	}
}

// TestApp_AtlasWithOptions verifies custom instances are not cached.
func TestApp_AtlasWithOptions(t *testing.T) {
	application, err := New("dev", "unknown", "unknown")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	cached, err := application.Atlas()
	if err != nil {
		t.Fatalf("Atlas() failed: %v", err)
	}

	custom, err := application.AtlasWithOptions()
	if err != nil {
		t.Fatalf("AtlasWithOptions() failed: %v", err)
	}

	if cached == custom {
		t.Error("AtlasWithOptions() returned the cached instance")
	}
}
