package catalog

import "testing"

func TestSeedLookups(t *testing.T) {
	t.Parallel()

	cat := Seed()

	p, err := cat.Product("pr-ca-phe-sua-da")
	if err != nil {
		t.Fatalf("product: %v", err)
	}
	if p.BasePrice != 29000 {
		t.Fatalf("expected base price 29000, got %d", p.BasePrice)
	}

	if _, err := cat.Product("pr-unknown"); err == nil {
		t.Fatal("expected error for unknown product")
	}
	if _, err := cat.Topping("tp-unknown"); err == nil {
		t.Fatal("expected error for unknown topping")
	}
}

func TestListingsKeepSeedOrder(t *testing.T) {
	t.Parallel()

	cat := Seed()

	products := cat.Products()
	if len(products) != 5 {
		t.Fatalf("expected 5 products, got %d", len(products))
	}
	if products[0].ID != "pr-ca-phe-sua-da" || products[4].ID != "pr-cold-brew" {
		t.Fatalf("unexpected product order: %s ... %s", products[0].ID, products[4].ID)
	}

	toppings := cat.Toppings()
	if len(toppings) != 4 {
		t.Fatalf("expected 4 toppings, got %d", len(toppings))
	}
	if toppings[0].ID != "tp-pearl" {
		t.Fatalf("unexpected topping order: %s", toppings[0].ID)
	}
}
