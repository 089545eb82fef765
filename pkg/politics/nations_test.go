package politics

import (
	"sync"
	"testing"
)

func TestNationsOrderedOperations(t *testing.T) {
	ns := NewNations()

	for _, slug := range []NationID{"terran_directorate", "felgenland_union", "neutral_zone"} {
		if err := ns.Add(&Nation{ID: slug, Name: string(slug)}); err != nil {
			t.Fatalf("Add(%s): %v", slug, err)
		}
	}

	if ns.Len() != 3 {
		t.Fatalf("expected 3 nations, got %d", ns.Len())
	}

	// Duplicate slugs are rejected
	if err := ns.Add(&Nation{ID: "neutral_zone"}); err == nil {
		t.Fatal("expected error adding duplicate slug")
	}

	// Upsert keeps the original position
	if err := ns.Set("felgenland_union", &Nation{ID: "felgenland_union", Name: "Felgenland Union"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	slugs := ns.Slugs()
	want := []NationID{"terran_directorate", "felgenland_union", "neutral_zone"}
	for i, slug := range want {
		if slugs[i] != slug {
			t.Fatalf("slug order: got %v, want %v", slugs, want)
		}
	}

	if err := ns.Delete("felgenland_union"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if ns.Exists("felgenland_union") {
		t.Fatal("nation should be gone after Delete")
	}
	if len(ns.Slugs()) != 2 {
		t.Fatalf("order slice not trimmed: %v", ns.Slugs())
	}

	if err := ns.Delete("felgenland_union"); err == nil {
		t.Fatal("expected error deleting missing slug")
	}
	if err := ns.Set("x", nil); err == nil {
		t.Fatal("expected error setting nil nation")
	}
}

func TestZonesOrderedOperations(t *testing.T) {
	zs := NewZones()

	if err := zs.Add(&EconomicZone{ID: "felgenland_trade_zone"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := zs.Add(&EconomicZone{ID: "terran_core_zone"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	zone, ok := zs.Get("terran_core_zone")
	if !ok || zone.ID != "terran_core_zone" {
		t.Fatalf("Get returned %v, %v", zone, ok)
	}

	list := zs.List()
	if len(list) != 2 || list[0].ID != "felgenland_trade_zone" {
		t.Fatalf("List order wrong: %v", list)
	}
}

func TestNationsConcurrentReaders(t *testing.T) {
	ns := NewNations()
	_ = ns.Add(&Nation{ID: "terran_directorate", Territories: []StarID{0}})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, ok := ns.Get("terran_directorate"); !ok {
					t.Error("nation disappeared during concurrent reads")
					return
				}
				_ = ns.List()
				_ = ns.Len()
			}
		}()
	}
	wg.Wait()
}
