package browse

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/theirongolddev/shelf/internal/catalog"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		in   Orientation
		want Mode
	}{
		{Landscape, Split},
		{Portrait, Stacked},
		{OrientationUnknown, Stacked},
		{Orientation(42), Stacked},
	}
	for _, tt := range tests {
		if got := Resolve(tt.in); got != tt.want {
			t.Errorf("Resolve(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		in   string
		want Orientation
		ok   bool
	}{
		{"landscape", Landscape, true},
		{" Portrait ", Portrait, true},
		{"auto", OrientationUnknown, false},
		{"", OrientationUnknown, false},
	}
	for _, tt := range tests {
		got, ok := ParseOrientation(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseOrientation(%q) = %v,%v want %v,%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSelectionClearIdempotent(t *testing.T) {
	var s Selection
	s.Clear()
	if !s.Empty() {
		t.Fatal("expected empty after first clear")
	}
	s.Clear()
	if _, ok := s.Current(); ok {
		t.Fatal("expected empty after second clear")
	}
}

func TestSelectionRoundTrip(t *testing.T) {
	c := catalog.Default()
	for _, p := range c.Products() {
		var s Selection
		s.Select(p)
		got, ok := s.Current()
		if !ok || got != p {
			t.Errorf("Select(%v) then Current() = %v,%v", p, got, ok)
		}
	}
}

func TestSelectionAcceptsForeignProduct(t *testing.T) {
	var s Selection
	foreign := catalog.Product{Name: "Elsewhere", Price: "$1", Description: "not listed"}
	s.Select(foreign)
	if got, ok := s.Current(); !ok || got != foreign {
		t.Fatalf("Current() = %v,%v", got, ok)
	}
}

func TestRotateNeverChangesSelection(t *testing.T) {
	c := catalog.Default()
	products := c.Products()
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		withRotations := NewScreen(c, Portrait)
		without := NewScreen(c, Portrait)

		for step := 0; step < 12; step++ {
			switch rng.Intn(3) {
			case 0:
				p := products[rng.Intn(len(products))]
				withRotations.Apply(Activate{Product: p})
				without.Apply(Activate{Product: p})
			case 1:
				withRotations.Apply(Deselect{})
				without.Apply(Deselect{})
			default:
				o := []Orientation{Landscape, Portrait, OrientationUnknown}[rng.Intn(3)]
				withRotations.Apply(Rotate{Orientation: o})
			}
		}

		if withRotations.Selection() != without.Selection() {
			t.Fatalf("trial %d: selection diverged: %v vs %v", trial, withRotations.Selection(), without.Selection())
		}
	}
}

func names(ps []catalog.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

var allNames = []string{"Product A", "Product B", "Product C", "Product D", "Product E"}

func TestScenarios(t *testing.T) {
	c := catalog.Default()
	productC, _ := c.Lookup("Product C")
	productA, _ := c.Lookup("Product A")

	// A: portrait, nothing selected.
	s := NewScreen(c, Portrait)
	a := s.Frame()
	if !reflect.DeepEqual(a.Panes(), []string{"list"}) {
		t.Fatalf("scenario A panes = %v", a.Panes())
	}
	if got := names(a.List.Entries); !reflect.DeepEqual(got, allNames) {
		t.Fatalf("scenario A entries = %v", got)
	}
	if a.BackVisible {
		t.Fatal("scenario A should not show back control")
	}

	// B: activate Product C.
	b := s.Apply(Activate{Product: productC})
	if !reflect.DeepEqual(b.Panes(), []string{"detail"}) {
		t.Fatalf("scenario B panes = %v", b.Panes())
	}
	want := []Field{
		{"Name", "Product C"},
		{"Price", "$200"},
		{"Description", "Premium product C."},
	}
	if got := b.Detail.Fields(); !reflect.DeepEqual(got, want) {
		t.Fatalf("scenario B fields = %v", got)
	}
	if !b.BackVisible {
		t.Fatal("scenario B should show back control")
	}

	// C: back returns to A exactly.
	back := s.Apply(Deselect{})
	if !reflect.DeepEqual(back, a) {
		t.Fatalf("scenario C frame = %+v, want %+v", back, a)
	}
	if !s.Selection().Empty() {
		t.Fatal("scenario C selection should be empty")
	}

	// D: landscape, nothing selected.
	s = NewScreen(c, Landscape)
	d := s.Frame()
	if !reflect.DeepEqual(d.Panes(), []string{"list", "detail"}) {
		t.Fatalf("scenario D panes = %v", d.Panes())
	}
	if d.Detail.Product != nil || d.Detail.Placeholder != Placeholder {
		t.Fatalf("scenario D detail = %+v", d.Detail)
	}
	if d.BackVisible {
		t.Fatal("scenario D should not show back control")
	}

	// E: activate Product A in landscape.
	e := s.Apply(Activate{Product: productA})
	if !reflect.DeepEqual(e.Panes(), []string{"list", "detail"}) {
		t.Fatalf("scenario E panes = %v", e.Panes())
	}
	if e.Detail.Product == nil || *e.Detail.Product != productA {
		t.Fatalf("scenario E detail = %+v", e.Detail)
	}
	if !reflect.DeepEqual(e.List, d.List) {
		t.Fatal("scenario E list pane changed")
	}
	if e.BackVisible {
		t.Fatal("scenario E should not show back control")
	}
}

func TestRotateKeepsDetail(t *testing.T) {
	c := catalog.Default()
	p, _ := c.At(1)

	s := NewScreen(c, Landscape)
	s.Apply(Activate{Product: p})
	f := s.Apply(Rotate{Orientation: Portrait})

	if f.Mode != Stacked || f.Detail == nil || *f.Detail.Product != p || !f.BackVisible {
		t.Fatalf("unexpected frame after rotation: %+v", f)
	}

	f = s.Apply(Rotate{Orientation: Landscape})
	if f.Mode != Split || f.List == nil || f.BackVisible {
		t.Fatalf("unexpected frame after rotating back: %+v", f)
	}
}

func TestEventStrings(t *testing.T) {
	p := catalog.Product{Name: "Product B"}
	if got := (Activate{Product: p}).String(); got != "activate Product B" {
		t.Errorf("Activate.String() = %q", got)
	}
	if got := (Rotate{Orientation: Landscape}).String(); got != "rotate landscape" {
		t.Errorf("Rotate.String() = %q", got)
	}
	if got := (Deselect{}).String(); got != "deselect" {
		t.Errorf("Deselect.String() = %q", got)
	}
}
