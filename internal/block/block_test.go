package block_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/orbit-careers/page-builder/internal/block"
)

// ── New ────────────────────────────────────────────────────────────────────

func TestNew_AssignsUniqueIDs(t *testing.T) {
	a, err := block.New(block.TypeHero)
	if err != nil {
		t.Fatalf("New(hero) returned unexpected error: %v", err)
	}
	b, err := block.New(block.TypeHero)
	if err != nil {
		t.Fatalf("New(hero) returned unexpected error: %v", err)
	}
	if a.ID == "" || b.ID == "" {
		t.Error("New should assign a non-empty ID")
	}
	if a.ID == b.ID {
		t.Errorf("New assigned the same ID twice: %q", a.ID)
	}
}

func TestNew_HeroDefaults(t *testing.T) {
	b, err := block.New(block.TypeHero)
	if err != nil {
		t.Fatalf("New(hero) returned unexpected error: %v", err)
	}
	if b.Hero == nil {
		t.Fatal("New(hero) should set the Hero variant")
	}
	if b.Hero.Heading != "" || b.Hero.Subheading != "" {
		t.Errorf("New(hero) should start empty, got %+v", b.Hero)
	}
}

func TestNew_FeatureSplitDefaultsToImageLeft(t *testing.T) {
	b, err := block.New(block.TypeFeatureSplit)
	if err != nil {
		t.Fatalf("New(feature_split) returned unexpected error: %v", err)
	}
	if b.FeatureSplit == nil {
		t.Fatal("New(feature_split) should set the FeatureSplit variant")
	}
	if b.FeatureSplit.Layout != block.LayoutImageLeft {
		t.Errorf("New(feature_split) layout = %q, want %q", b.FeatureSplit.Layout, block.LayoutImageLeft)
	}
}

func TestNew_ValuesGridStartsWithThreeEmptyItems(t *testing.T) {
	b, err := block.New(block.TypeValuesGrid)
	if err != nil {
		t.Fatalf("New(values_grid) returned unexpected error: %v", err)
	}
	if b.ValuesGrid == nil {
		t.Fatal("New(values_grid) should set the ValuesGrid variant")
	}
	if len(b.ValuesGrid.Items) != 3 {
		t.Fatalf("New(values_grid) should start with 3 items, got %d", len(b.ValuesGrid.Items))
	}
	for i, item := range b.ValuesGrid.Items {
		if item != (block.ValueItem{}) {
			t.Errorf("item %d should be empty, got %+v", i, item)
		}
	}
}

func TestNew_UnknownTypeFails(t *testing.T) {
	if _, err := block.New("carousel"); err == nil {
		t.Error("New(\"carousel\") expected error, got nil")
	}
}

// ── JSON round trip ────────────────────────────────────────────────────────

func TestUnmarshal_KnownVariant(t *testing.T) {
	data := []byte(`{"id":"b1","type":"hero","heading":"Join us","subheading":"We are hiring"}`)
	var b block.Block
	if err := json.Unmarshal(data, &b); err != nil {
		t.Fatalf("Unmarshal returned unexpected error: %v", err)
	}
	if b.ID != "b1" || b.Type != block.TypeHero {
		t.Errorf("header = (%q, %q), want (b1, hero)", b.ID, b.Type)
	}
	if b.Hero == nil || b.Hero.Heading != "Join us" || b.Hero.Subheading != "We are hiring" {
		t.Errorf("hero payload = %+v", b.Hero)
	}
	if !b.Known() {
		t.Error("hero block should be Known")
	}
}

func TestMarshal_IncludesHeaderAndPayload(t *testing.T) {
	b, err := block.New(block.TypeHero)
	if err != nil {
		t.Fatalf("New returned unexpected error: %v", err)
	}
	b.Hero.Heading = "Careers"
	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal returned unexpected error: %v", err)
	}
	var got map[string]interface{}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("re-decode failed: %v", err)
	}
	if got["id"] != b.ID {
		t.Errorf("id = %v, want %q", got["id"], b.ID)
	}
	if got["type"] != "hero" {
		t.Errorf("type = %v, want hero", got["type"])
	}
	if got["heading"] != "Careers" {
		t.Errorf("heading = %v, want Careers", got["heading"])
	}
}

func TestUnknownType_RoundTripsVerbatim(t *testing.T) {
	data := []byte(`{"id":"x1","type":"carousel","slides":[{"caption":"one"}],"speed":5}`)
	var b block.Block
	if err := json.Unmarshal(data, &b); err != nil {
		t.Fatalf("Unmarshal returned unexpected error: %v", err)
	}
	if b.Known() {
		t.Error("carousel should not be Known")
	}
	out, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal returned unexpected error: %v", err)
	}
	var want, got map[string]interface{}
	if err := json.Unmarshal(data, &want); err != nil {
		t.Fatalf("decode want: %v", err)
	}
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("decode got: %v", err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("unknown block did not round trip: got %v, want %v", got, want)
	}
}

// ── Normalize ──────────────────────────────────────────────────────────────

func TestNormalize_ValuesGridNilItems(t *testing.T) {
	b := block.Block{Type: block.TypeValuesGrid, ValuesGrid: &block.ValuesGrid{Heading: "Values"}}
	b.Normalize()
	if b.ValuesGrid.Items == nil {
		t.Error("Normalize should force items to a non-nil slice")
	}
	if len(b.ValuesGrid.Items) != 0 {
		t.Errorf("Normalize should not invent items, got %d", len(b.ValuesGrid.Items))
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	b, err := block.New(block.TypeValuesGrid)
	if err != nil {
		t.Fatalf("New returned unexpected error: %v", err)
	}
	b.ValuesGrid.Items[0].Title = "Honesty"
	before, _ := json.Marshal(b)
	b.Normalize()
	b.Normalize()
	after, _ := json.Marshal(b)
	if string(before) != string(after) {
		t.Errorf("Normalize changed an already-normalized block:\nbefore %s\nafter  %s", before, after)
	}
}

// ── Clone ──────────────────────────────────────────────────────────────────

func TestClone_IsDeep(t *testing.T) {
	b, err := block.New(block.TypeValuesGrid)
	if err != nil {
		t.Fatalf("New returned unexpected error: %v", err)
	}
	b.ValuesGrid.Items[0].Title = "Original"
	c := b.Clone()
	c.ValuesGrid.Items[0].Title = "Changed"
	if b.ValuesGrid.Items[0].Title != "Original" {
		t.Error("mutating a clone should not affect the source block")
	}
}

// ── ParseSequence ──────────────────────────────────────────────────────────

func TestParseSequence(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want int
	}{
		{"empty input", []byte{}, 0},
		{"null", []byte(`null`), 0},
		{"malformed", []byte(`{"not":"an array"`), 0},
		{"wrong shape", []byte(`{"not":"an array"}`), 0},
		{"two blocks", []byte(`[{"id":"a","type":"hero","heading":"h","subheading":"s"},{"id":"b","type":"carousel"}]`), 2},
	}
	for _, c := range cases {
		got := block.ParseSequence(c.in)
		if got == nil {
			t.Errorf("%s: ParseSequence returned nil, want non-nil slice", c.name)
			continue
		}
		if len(got) != c.want {
			t.Errorf("%s: len = %d, want %d", c.name, len(got), c.want)
		}
	}
}
