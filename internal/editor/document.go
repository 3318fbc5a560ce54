// Package editor holds the single editable document for a tenant's page: an
// ordered sequence of content blocks plus the tenant-level design settings,
// with the add/remove/reorder/edit operations the editor exposes.
package editor

import (
	"fmt"

	"github.com/orbit-careers/page-builder/internal/block"
)

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

type Document struct {
	BrandColor        string        `json:"brand_color"`
	LogoURL           string        `json:"logo_url"`
	HeroBackgroundURL string        `json:"hero_background_url"`
	Blocks            []block.Block `json:"config"`
}

// AddBlock appends a fresh block of the given type with empty defaults.
func (d *Document) AddBlock(t block.Type) (block.Block, error) {
	b, err := block.New(t)
	if err != nil {
		return block.Block{}, err
	}
	d.Blocks = append(d.Blocks, b)
	return b, nil
}

// MoveBlock swaps the block at index with its neighbor in the given
// direction. Already at the boundary, or index out of range, is a no-op.
func (d *Document) MoveBlock(index int, dir Direction) {
	if index < 0 || index >= len(d.Blocks) {
		return
	}
	switch dir {
	case DirectionUp:
		if index > 0 {
			d.Blocks[index-1], d.Blocks[index] = d.Blocks[index], d.Blocks[index-1]
		}
	case DirectionDown:
		if index < len(d.Blocks)-1 {
			d.Blocks[index], d.Blocks[index+1] = d.Blocks[index+1], d.Blocks[index]
		}
	}
}

// RemoveBlock deletes the block at index, shifting subsequent blocks down.
func (d *Document) RemoveBlock(index int) error {
	if index < 0 || index >= len(d.Blocks) {
		return fmt.Errorf("block index %d out of range", index)
	}
	d.Blocks = append(d.Blocks[:index], d.Blocks[index+1:]...)
	return nil
}

// UpdateBlock replaces the block at index wholesale. The replacement must
// keep the id and type of the block in place: the type tag is immutable
// after creation.
func (d *Document) UpdateBlock(index int, b block.Block) error {
	if index < 0 || index >= len(d.Blocks) {
		return fmt.Errorf("block index %d out of range", index)
	}
	cur := d.Blocks[index]
	if b.ID != cur.ID {
		return fmt.Errorf("block id mismatch: have %q, got %q", cur.ID, b.ID)
	}
	if b.Type != cur.Type {
		return fmt.Errorf("block type is immutable: have %q, got %q", cur.Type, b.Type)
	}
	d.Blocks[index] = b
	return nil
}

// Normalize normalizes every block in the sequence. Idempotent.
func (d *Document) Normalize() {
	for i := range d.Blocks {
		d.Blocks[i].Normalize()
	}
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	c := d
	c.Blocks = make([]block.Block, len(d.Blocks))
	for i, b := range d.Blocks {
		c.Blocks[i] = b.Clone()
	}
	return c
}
