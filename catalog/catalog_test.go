package catalog

import "testing"

func TestGetFallsBackToDefault(t *testing.T) {
	cat := New()

	if got := cat.Get("3"); got.Name != "XL Premium" {
		t.Fatalf("expected XL Premium, got %s", got.Name)
	}
	// Unknown ids serve the default package instead of erroring.
	if got := cat.Get("999"); got.ID != DefaultProductID || got.Name != "XL Regular" {
		t.Fatalf("expected default XL Regular, got %+v", got)
	}

	if _, ok := cat.Lookup("999"); ok {
		t.Fatal("Lookup reported an unknown id as present")
	}
}

func TestAllOrdered(t *testing.T) {
	cat := New()
	all := cat.All()
	if len(all) != 6 {
		t.Fatalf("expected 6 products, got %d", len(all))
	}
	for i, p := range all {
		if want := byte('1' + i); p.ID[0] != want {
			t.Fatalf("position %d: expected id %c, got %s", i, want, p.ID)
		}
	}
}

func TestRelatedExcludesSelf(t *testing.T) {
	cat := New()
	related := cat.Related("2", 4)
	if len(related) != 4 {
		t.Fatalf("expected 4 related products, got %d", len(related))
	}
	for _, p := range related {
		if p.ID == "2" {
			t.Fatal("related products include the product itself")
		}
	}
}

func TestPromos(t *testing.T) {
	cat := New()
	if len(cat.Promos()) != 2 {
		t.Fatalf("expected 2 promos, got %d", len(cat.Promos()))
	}
	if !cat.HasPromo("XL20OFF") || !cat.HasPromo("BONUS5GB") {
		t.Fatal("known promo codes not found")
	}
	if cat.HasPromo("NOPE") {
		t.Fatal("unknown promo code reported as known")
	}
}
