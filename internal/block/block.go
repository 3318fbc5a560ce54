// Package block defines the closed set of content block variants a careers
// page is composed of. A block is a discriminated union tagged by its type:
// exactly one variant payload is set, which keeps "a hero block has no items"
// a compile-time fact rather than a runtime convention.
package block

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type Type string

const (
	TypeHero         Type = "hero"
	TypeFeatureSplit Type = "feature_split"
	TypeValuesGrid   Type = "values_grid"
	TypeFeatures     Type = "features"
)

// Types lists the supported block types in editor palette order.
var Types = []Type{TypeHero, TypeFeatureSplit, TypeValuesGrid, TypeFeatures}

type Layout string

const (
	LayoutImageLeft  Layout = "image_left"
	LayoutImageRight Layout = "image_right"
)

type Hero struct {
	Heading            string `json:"heading"`
	Subheading         string `json:"subheading"`
	BackgroundImageURL string `json:"backgroundImageUrl,omitempty"`
}

type FeatureSplit struct {
	Layout   Layout `json:"layout"`
	Heading  string `json:"heading"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type ValuesGrid struct {
	Heading string      `json:"heading"`
	Items   []ValueItem `json:"items"`
}

// ValueItem fields carry no omitempty: a saved values grid item always
// serializes concrete title/text/image_url strings.
type ValueItem struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	ImageURL string `json:"image_url"`
}

type Features struct {
	Heading  string    `json:"heading"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Block is one content section of a page. ID is assigned at creation and
// never reused; Type is immutable after creation. A block decoded with an
// unrecognized type keeps its raw payload so it can round-trip unchanged and
// render as a placeholder instead of crashing the page.
type Block struct {
	ID   string
	Type Type

	Hero         *Hero
	FeatureSplit *FeatureSplit
	ValuesGrid   *ValuesGrid
	Features     *Features

	raw json.RawMessage
}

// Known reports whether the block's type is one of the supported variants.
func (b Block) Known() bool {
	switch b.Type {
	case TypeHero, TypeFeatureSplit, TypeValuesGrid, TypeFeatures:
		return true
	}
	return false
}

// New constructs a block of the given type with a fresh unique id and
// variant-appropriate empty defaults. A values grid starts with exactly
// three empty items.
func New(t Type) (Block, error) {
	b := Block{ID: uuid.NewString(), Type: t}
	switch t {
	case TypeHero:
		b.Hero = &Hero{}
	case TypeFeatureSplit:
		b.FeatureSplit = &FeatureSplit{Layout: LayoutImageLeft}
	case TypeValuesGrid:
		b.ValuesGrid = &ValuesGrid{Items: []ValueItem{{}, {}, {}}}
	case TypeFeatures:
		b.Features = &Features{Features: []Feature{}}
	default:
		return Block{}, fmt.Errorf("unknown block type: %q", t)
	}
	return b, nil
}

type header struct {
	ID   string `json:"id"`
	Type Type   `json:"type"`
}

func (b *Block) UnmarshalJSON(data []byte) error {
	var h header
	if err := json.Unmarshal(data, &h); err != nil {
		return err
	}
	b.ID = h.ID
	b.Type = h.Type
	b.Hero, b.FeatureSplit, b.ValuesGrid, b.Features, b.raw = nil, nil, nil, nil, nil
	switch h.Type {
	case TypeHero:
		b.Hero = &Hero{}
		return json.Unmarshal(data, b.Hero)
	case TypeFeatureSplit:
		b.FeatureSplit = &FeatureSplit{}
		return json.Unmarshal(data, b.FeatureSplit)
	case TypeValuesGrid:
		b.ValuesGrid = &ValuesGrid{}
		return json.Unmarshal(data, b.ValuesGrid)
	case TypeFeatures:
		b.Features = &Features{}
		return json.Unmarshal(data, b.Features)
	default:
		// fail-soft: preserve unknown blocks verbatim
		b.raw = append(json.RawMessage(nil), data...)
		return nil
	}
}

func (b Block) MarshalJSON() ([]byte, error) {
	switch b.Type {
	case TypeHero:
		return json.Marshal(struct {
			header
			*Hero
		}{header{b.ID, b.Type}, b.Hero})
	case TypeFeatureSplit:
		return json.Marshal(struct {
			header
			*FeatureSplit
		}{header{b.ID, b.Type}, b.FeatureSplit})
	case TypeValuesGrid:
		return json.Marshal(struct {
			header
			*ValuesGrid
		}{header{b.ID, b.Type}, b.ValuesGrid})
	case TypeFeatures:
		return json.Marshal(struct {
			header
			*Features
		}{header{b.ID, b.Type}, b.Features})
	default:
		if b.raw != nil {
			return b.raw, nil
		}
		return json.Marshal(header{b.ID, b.Type})
	}
}

// Normalize forces a values grid's items to concrete title/text/image_url
// strings and a non-nil slice. Normalizing an already-normalized block is a
// no-op; other variants are left untouched.
func (b *Block) Normalize() {
	if b.Type != TypeValuesGrid || b.ValuesGrid == nil {
		return
	}
	if b.ValuesGrid.Items == nil {
		b.ValuesGrid.Items = []ValueItem{}
	}
}

// Clone returns a deep copy of the block.
func (b Block) Clone() Block {
	c := Block{ID: b.ID, Type: b.Type}
	if b.Hero != nil {
		hero := *b.Hero
		c.Hero = &hero
	}
	if b.FeatureSplit != nil {
		fs := *b.FeatureSplit
		c.FeatureSplit = &fs
	}
	if b.ValuesGrid != nil {
		vg := ValuesGrid{Heading: b.ValuesGrid.Heading}
		if b.ValuesGrid.Items != nil {
			vg.Items = append([]ValueItem(nil), b.ValuesGrid.Items...)
		}
		c.ValuesGrid = &vg
	}
	if b.Features != nil {
		f := Features{Heading: b.Features.Heading}
		if b.Features.Features != nil {
			f.Features = append([]Feature(nil), b.Features.Features...)
		}
		c.Features = &f
	}
	if b.raw != nil {
		c.raw = append(json.RawMessage(nil), b.raw...)
	}
	return c
}

// ParseSequence decodes a stored block sequence. Malformed JSON yields an
// empty sequence rather than an error, so a corrupt stored config degrades
// to an empty page instead of propagating a crash.
func ParseSequence(data []byte) []Block {
	if len(data) == 0 {
		return []Block{}
	}
	var blocks []Block
	if err := json.Unmarshal(data, &blocks); err != nil {
		return []Block{}
	}
	if blocks == nil {
		return []Block{}
	}
	return blocks
}
