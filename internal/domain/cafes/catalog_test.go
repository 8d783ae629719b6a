package cafes

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func TestNewCatalog_RejectsInvalid(t *testing.T) {
	cases := map[string][]Cafe{
		"blank id":     {{ID: " ", Animals: []string{"ネコ"}}},
		"duplicate id": {{ID: "a", Animals: []string{"ネコ"}}, {ID: "a", Animals: []string{"イヌ"}}},
		"no animals":   {{ID: "a", Animals: []string{""}}},
	}
	for name, in := range cases {
		if _, err := NewCatalog(in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestCatalog_AllIsACopy(t *testing.T) {
	c, err := NewCatalog(fixtureCafes())
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	all := c.All()
	all[0].Name = "changed"
	all[0].Animals[0] = "changed"

	got, err := c.GetByID("c1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name == "changed" || got.Animals[0] == "changed" {
		t.Fatalf("catalog must be immutable through All()")
	}

	got.Animals[0] = "changed again"
	again, _ := c.GetByID("c1")
	if again.Animals[0] == "changed again" {
		t.Fatalf("catalog must be immutable through GetByID()")
	}
}

func TestCatalog_GetByID_NotFound(t *testing.T) {
	c, _ := NewCatalog(fixtureCafes())
	if _, err := c.GetByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalog_Recommend(t *testing.T) {
	c, _ := NewCatalog(fixtureCafes())
	r := rand.New(rand.NewPCG(1, 2))

	got := c.Recommend(2, r)
	if len(got) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(got))
	}
	if got[0].ID == got[1].ID {
		t.Fatalf("recommendations must be distinct")
	}

	if got := c.Recommend(100, r); len(got) != c.Len() {
		t.Fatalf("expected recommendations capped at %d, got %d", c.Len(), len(got))
	}
	if got := c.Recommend(0, r); len(got) != 0 {
		t.Fatalf("expected no recommendations for n=0")
	}
}

func TestCatalog_Nearby_SortedByDistance(t *testing.T) {
	c, _ := NewCatalog([]Cafe{
		{ID: "tennoji", Animals: []string{"鳥類"}, Latitude: 34.6469, Longitude: 135.5132},
		{ID: "umeda", Animals: []string{"ネコ"}, Latitude: 34.7025, Longitude: 135.4959},
		{ID: "tokyo", Animals: []string{"イヌ"}, Latitude: 35.6812, Longitude: 139.7671},
	})

	// Cerca de Umeda.
	got, err := c.Nearby(34.7055, 135.4983, 10)
	if err != nil {
		t.Fatalf("Nearby: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 cafes within 10km, got %d", len(got))
	}
	if got[0].Cafe.ID != "umeda" || got[1].Cafe.ID != "tennoji" {
		t.Fatalf("unexpected order: %s, %s", got[0].Cafe.ID, got[1].Cafe.ID)
	}
	if got[0].DistanceKm > got[1].DistanceKm {
		t.Fatalf("distances not ascending")
	}
}

func TestCatalog_Nearby_InvalidInput(t *testing.T) {
	c, _ := NewCatalog(fixtureCafes())
	if _, err := c.Nearby(91, 0, 1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for lat=91, got %v", err)
	}
	if _, err := c.Nearby(0, 0, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for radius=0, got %v", err)
	}
}

func TestDistanceKm(t *testing.T) {
	// Osaka (Umeda) → Tokyo ≈ 400km.
	d := DistanceKm(34.7025, 135.4959, 35.6812, 139.7671)
	if math.Abs(d-403) > 10 {
		t.Fatalf("expected ~403km, got %.1f", d)
	}
	if DistanceKm(1, 1, 1, 1) != 0 {
		t.Fatalf("expected zero distance for same point")
	}
}

func TestOptions(t *testing.T) {
	o := Options()
	if len(o.Prefectures) != 47 {
		t.Fatalf("expected 47 prefectures, got %d", len(o.Prefectures))
	}
	if len(o.Prices) != 8 {
		t.Fatalf("expected 8 price bands, got %d", len(o.Prices))
	}
	for i := 1; i < len(o.Tags); i++ {
		if o.Tags[i-1] > o.Tags[i] {
			t.Fatalf("tags must be sorted: %v", o.Tags)
		}
	}
}
