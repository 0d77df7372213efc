package geocode

import "testing"

func TestResolveKnownLocalities(t *testing.T) {
	t.Parallel()

	resolver := NewResolver()

	tests := []struct {
		name    string
		input   string
		wantLat float64
	}{
		{name: "street address in district 1", input: "45 Nguyen Hue, District 1, HCMC", wantLat: 10.7721},
		{name: "vietnamese district spelling", input: "12 Lê Lợi, Quận 1", wantLat: 10.7721},
		{name: "mixed case", input: "THAO DIEN, thu duc city", wantLat: 10.8031},
		{name: "landmark before containing district", input: "Landmark 81, Binh Thanh", wantLat: 10.7951},
		{name: "phu nhuan", input: "210 phan xich long, phu nhuan", wantLat: 10.7992},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			coord, ok := resolver.Resolve(tc.input)
			if !ok {
				t.Fatalf("expected %q to resolve", tc.input)
			}
			if coord.Lat != tc.wantLat {
				t.Fatalf("expected lat %f, got %f", tc.wantLat, coord.Lat)
			}
		})
	}
}

func TestResolveUnknownAddress(t *testing.T) {
	t.Parallel()

	resolver := NewResolver()
	for _, input := range []string{"", "   ", "somewhere in Hanoi", "123 Main Street"} {
		if _, ok := resolver.Resolve(input); ok {
			t.Fatalf("expected %q to stay unresolved", input)
		}
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	t.Parallel()

	resolver := NewResolver()
	first, ok := resolver.Resolve("quan 7")
	if !ok {
		t.Fatal("expected quan 7 to resolve")
	}
	for i := 0; i < 5; i++ {
		coord, ok := resolver.Resolve("quan 7")
		if !ok || coord != first {
			t.Fatalf("expected stable result, got %+v ok=%v", coord, ok)
		}
	}
}
