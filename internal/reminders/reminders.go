package reminders

import (
	"sort"
	"strings"
	"time"

	"almanac/internal/calendar"
)

// DefaultWindow is the look-ahead used for "expiring soon" and "upcoming".
const DefaultWindow = 30 * 24 * time.Hour

// Maintenance is one logged maintenance item on an asset. EndDate is the
// stored "YYYY-MM-DD" due date and may be empty or malformed.
type Maintenance struct {
	Type    string
	Desc    string
	EndDate string
}

// Asset is a tracked possession (vehicle, bike, household item).
type Asset struct {
	Key         string
	Year        string
	Make        string
	Model       string
	VIN         string
	Plate       string
	Category    string
	Maintenance []Maintenance
}

// Item is a dashboard line: one maintenance entry due on one asset.
type Item struct {
	AssetKey   string
	AssetLabel string
	Type       string
	Desc       string
	Due        time.Time
}

// Label derives a display name for an asset: year/make/model when present,
// then VIN, then plate, then category.
func Label(a Asset) string {
	var parts []string
	for _, p := range []string{a.Year, a.Make, a.Model} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	if v := strings.TrimSpace(a.VIN); v != "" {
		return v
	}
	if p := strings.TrimSpace(a.Plate); p != "" {
		return p
	}
	if c := strings.TrimSpace(a.Category); c != "" {
		return c
	}
	return "Asset"
}

// ExpiringWarranties returns warranty entries due within [now, now+window],
// soonest first.
func ExpiringWarranties(assets []Asset, now time.Time, window time.Duration) []Item {
	return collect(assets, now, window, func(typ string) bool {
		return strings.Contains(typ, "warranty")
	})
}

// UpcomingMaintenance returns oil-change and tire-rotation entries due
// within [now, now+window], soonest first.
func UpcomingMaintenance(assets []Asset, now time.Time, window time.Duration) []Item {
	return collect(assets, now, window, func(typ string) bool {
		return strings.Contains(typ, "oil") || strings.Contains(typ, "tire rotation")
	})
}

func collect(assets []Asset, now time.Time, window time.Duration, match func(string) bool) []Item {
	if window <= 0 {
		window = DefaultWindow
	}
	soon := now.Add(window)

	var items []Item
	for _, a := range assets {
		for _, m := range a.Maintenance {
			typ := strings.TrimSpace(m.Type)
			if !match(strings.ToLower(typ)) {
				continue
			}
			due, err := calendar.ParseDate(m.EndDate)
			if err != nil {
				continue
			}
			if due.Before(now) || due.After(soon) {
				continue
			}
			items = append(items, Item{
				AssetKey:   a.Key,
				AssetLabel: Label(a),
				Type:       typ,
				Desc:       strings.TrimSpace(m.Desc),
				Due:        due,
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Due.Before(items[j].Due)
	})
	return items
}
