package reminders

import (
	"testing"
	"time"

	"almanac/internal/calendar"
)

func day(t *testing.T, ymd string) time.Time {
	t.Helper()
	d, err := calendar.ParseDate(ymd)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", ymd, err)
	}
	return d
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name  string
		asset Asset
		want  string
	}{
		{
			name:  "year make model",
			asset: Asset{Year: "2019", Make: "Honda", Model: "Civic"},
			want:  "2019 Honda Civic",
		},
		{
			name:  "partial identity",
			asset: Asset{Make: "Trek"},
			want:  "Trek",
		},
		{
			name:  "vin fallback",
			asset: Asset{VIN: " 1HGCM82633A004352 "},
			want:  "1HGCM82633A004352",
		},
		{
			name:  "plate fallback",
			asset: Asset{Plate: "ABC-123"},
			want:  "ABC-123",
		},
		{
			name:  "category fallback",
			asset: Asset{Category: "appliance"},
			want:  "appliance",
		},
		{
			name:  "nothing known",
			asset: Asset{},
			want:  "Asset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(tt.asset); got != tt.want {
				t.Errorf("Label = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpiringWarrantiesWindow(t *testing.T) {
	now := day(t, "2025-05-01")
	assets := []Asset{
		{
			Key: "car", Year: "2019", Make: "Honda", Model: "Civic",
			Maintenance: []Maintenance{
				{Type: "Extended Warranty", EndDate: "2025-05-20"},
				{Type: "Warranty", EndDate: "2025-07-01"},  // beyond window
				{Type: "Warranty", EndDate: "2025-04-30"},  // already past
				{Type: "Oil Change", EndDate: "2025-05-10"}, // not a warranty
				{Type: "Warranty", EndDate: "someday"},     // unparseable, skipped
			},
		},
		{
			Key: "bike", Category: "bike",
			Maintenance: []Maintenance{
				{Type: "warranty", Desc: "frame", EndDate: "2025-05-05"},
			},
		},
	}

	items := ExpiringWarranties(assets, now, DefaultWindow)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2: %+v", len(items), items)
	}
	// Sorted soonest first.
	if items[0].AssetKey != "bike" || items[1].AssetKey != "car" {
		t.Errorf("order = %s, %s; want bike, car", items[0].AssetKey, items[1].AssetKey)
	}
	if items[0].Desc != "frame" {
		t.Errorf("Desc = %q, want %q", items[0].Desc, "frame")
	}
	if items[1].AssetLabel != "2019 Honda Civic" {
		t.Errorf("AssetLabel = %q", items[1].AssetLabel)
	}
}

func TestUpcomingMaintenanceTypes(t *testing.T) {
	now := day(t, "2025-05-01")
	assets := []Asset{
		{
			Key: "car",
			Maintenance: []Maintenance{
				{Type: "Oil Change", EndDate: "2025-05-15"},
				{Type: "Tire Rotation", EndDate: "2025-05-03"},
				{Type: "Brake Pads", EndDate: "2025-05-04"}, // not a tracked type
			},
		},
	}

	items := UpcomingMaintenance(assets, now, DefaultWindow)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2: %+v", len(items), items)
	}
	if items[0].Type != "Tire Rotation" || items[1].Type != "Oil Change" {
		t.Errorf("order = %s, %s", items[0].Type, items[1].Type)
	}
}

func TestCollectZeroWindowUsesDefault(t *testing.T) {
	now := day(t, "2025-05-01")
	assets := []Asset{{
		Key:         "car",
		Maintenance: []Maintenance{{Type: "warranty", EndDate: "2025-05-20"}},
	}}

	if items := ExpiringWarranties(assets, now, 0); len(items) != 1 {
		t.Errorf("zero window: got %d items, want 1", len(items))
	}
}

func TestWindowBoundariesInclusive(t *testing.T) {
	now := day(t, "2025-05-01")
	assets := []Asset{{
		Key: "car",
		Maintenance: []Maintenance{
			{Type: "warranty", EndDate: "2025-05-01"}, // due today
			{Type: "warranty", EndDate: "2025-05-31"}, // due on the window's last day
		},
	}}

	items := ExpiringWarranties(assets, now, DefaultWindow)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
}
