package config

import (
    "os"
    "path/filepath"
    "testing"

    "dealdesk/internal/domain"
)

func TestDefaultCatalogLookup(t *testing.T) {
    c := DefaultCatalog()

    a, ok := c.Lookup("sam_outreach")
    if !ok {
        t.Fatal("expected sam_outreach in default catalog")
    }
    if a.Category != domain.CategoryOutreach {
        t.Errorf("category = %s, want outreach", a.Category)
    }

    if _, ok := c.Lookup("no_such_workflow"); ok {
        t.Error("unexpected hit for unknown key")
    }
}

func TestDefaultCatalogCoversAllCategories(t *testing.T) {
    cats := DefaultCatalog().Categories()
    if len(cats) != 4 {
        t.Fatalf("got %d categories, want 4: %v", len(cats), cats)
    }
}

func TestLoadCatalogFromYAML(t *testing.T) {
    path := filepath.Join(t.TempDir(), "catalog.yaml")
    data := `automations:
  - key: custom_sms
    category: outreach
    webhook_path: /hooks/custom-sms
`
    if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
        t.Fatal(err)
    }

    c, err := LoadCatalog(path)
    if err != nil {
        t.Fatalf("LoadCatalog: %v", err)
    }
    if _, ok := c.Lookup("custom_sms"); !ok {
        t.Error("expected custom_sms from file")
    }
    if _, ok := c.Lookup("sam_outreach"); ok {
        t.Error("file catalog must replace the default set, not merge")
    }
}

func TestLoadCatalogRejectsBadCategory(t *testing.T) {
    path := filepath.Join(t.TempDir(), "catalog.yaml")
    data := `automations:
  - key: custom_sms
    category: sorcery
`
    if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
        t.Fatal(err)
    }
    if _, err := LoadCatalog(path); err == nil {
        t.Fatal("expected error for unknown category")
    }
}

func TestLoadCatalogRejectsDuplicateKeys(t *testing.T) {
    path := filepath.Join(t.TempDir(), "catalog.yaml")
    data := `automations:
  - key: custom_sms
    category: outreach
  - key: custom_sms
    category: outreach
`
    if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
        t.Fatal(err)
    }
    if _, err := LoadCatalog(path); err == nil {
        t.Fatal("expected error for duplicate key")
    }
}

func TestLoadCatalogEmptyPathFallsBack(t *testing.T) {
    c, err := LoadCatalog("")
    if err != nil {
        t.Fatalf("LoadCatalog(\"\"): %v", err)
    }
    if len(c.Automations) == 0 {
        t.Fatal("expected default automations")
    }
}
