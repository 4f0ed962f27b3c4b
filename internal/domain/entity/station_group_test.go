package entity

import "testing"

func TestGroupIndexResolve(t *testing.T) {
	idx := BuildGroupIndex([]StationGroup{
		{Group: "G1", Sector: "HAN-SGN", Station: "HAN"},
		{Group: "G2", Sector: "SGN-HAN", Station: "HAN"},
		{Group: "DUP", Sector: "HAN-SGN", Station: "HAN"}, // first entry wins
	})

	if got, ok := idx.Resolve(" han ", "han-sgn"); !ok || got != "G1" {
		t.Errorf("Resolve(han, han-sgn) = %q, %v; want G1", got, ok)
	}
	if got, ok := idx.Resolve("HAN", "SGN-HAN"); !ok || got != "G2" {
		t.Errorf("Resolve(HAN, SGN-HAN) = %q, %v; want G2", got, ok)
	}
	if got, ok := idx.Resolve("DAD", "HAN-SGN"); ok || got != UnknownGroup {
		t.Errorf("Resolve(DAD, HAN-SGN) = %q, %v; want Unknown, false", got, ok)
	}
}

func TestOriginDestination(t *testing.T) {
	tests := []struct {
		Sector string
		Ori    string
		Des    string
	}{
		{"HAN-SGN", "HAN", "SGN"},
		{" han-sgn ", "HAN", "SGN"},
		{"SGNCDG", "", ""},
		{"", "", ""},
	}
	for _, test := range tests {
		k := FlightKey{Sector: test.Sector}
		ori, des := k.OriginDestination()
		if ori != test.Ori || des != test.Des {
			t.Errorf("OriginDestination(%q) = %q, %q; want %q, %q", test.Sector, ori, des, test.Ori, test.Des)
		}
	}
}

func TestCanon(t *testing.T) {
	if got := Canon("  vn123 "); got != "VN123" {
		t.Errorf("Canon = %q", got)
	}
}
