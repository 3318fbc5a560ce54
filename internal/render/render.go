// Package render maps a tenant's block sequence and job list to the view
// model the public page template consumes. It is pure: all I/O happens
// before BuildPage is called.
package render

import (
	"fmt"
	stdtemplate "html/template"
	"time"

	"github.com/orbit-careers/page-builder/internal/block"
	"github.com/orbit-careers/page-builder/internal/job"
	"github.com/orbit-careers/page-builder/internal/pageconfig"
)

type Mode string

const (
	// ModePublished serves the published snapshot; a tenant that has never
	// published renders the page header with no blocks. Drafts are never
	// shown to anonymous traffic.
	ModePublished Mode = "published"
	// ModePreview always serves the draft.
	ModePreview Mode = "preview"
)

// Blocks selects which slot of the page config the given mode reads.
func Blocks(cfg pageconfig.PageConfig, mode Mode) []block.Block {
	if mode == ModePreview {
		return cfg.Draft
	}
	if cfg.HasPublished {
		return cfg.Published
	}
	return []block.Block{}
}

// Section is one rendered stripe of the page. For a block of an unknown
// type Placeholder carries a visible message instead of dropping the block,
// so schema drift degrades gracefully.
type Section struct {
	Block       block.Block
	Placeholder string
}

func Sections(blocks []block.Block) []Section {
	sections := make([]Section, 0, len(blocks))
	for _, b := range blocks {
		s := Section{Block: b}
		if !b.Known() {
			s.Placeholder = fmt.Sprintf("Unknown block type: %s", b.Type)
		}
		sections = append(sections, s)
	}
	return sections
}

type JobView struct {
	job.Job
	PostedAgo       string
	DescriptionHTML stdtemplate.HTML
}

type Page struct {
	BrandColor        string
	LogoURL           string
	HeroBackgroundURL string
	Sections          []Section
	Jobs              []JobView
	TotalJobCount     int
	Locations         []string
	SalaryRanges      []string
	Filter            Filter
	Preview           bool
}

// BuildPage assembles the full page view model: the mode-selected block
// sequence plus the filtered job list. markdown renders a job description to
// embeddable HTML; pass nil to leave descriptions as plain text.
func BuildPage(cfg pageconfig.PageConfig, mode Mode, jobs []job.Job, f Filter, now time.Time, markdown func(string) stdtemplate.HTML) Page {
	p := Page{
		BrandColor:        cfg.BrandColor,
		LogoURL:           cfg.LogoURL,
		HeroBackgroundURL: cfg.HeroBackgroundURL,
		Sections:          Sections(Blocks(cfg, mode)),
		TotalJobCount:     len(jobs),
		Locations:         Locations(jobs),
		SalaryRanges:      SalaryRanges(jobs),
		Filter:            f,
		Preview:           mode == ModePreview,
	}
	if p.BrandColor == "" {
		p.BrandColor = pageconfig.DefaultBrandColor
	}
	for _, j := range FilterJobs(jobs, f) {
		v := JobView{Job: j, PostedAgo: job.PostedAgo(j.CreatedAt, now)}
		if markdown != nil && j.Description != "" {
			v.DescriptionHTML = markdown(j.Description)
		}
		p.Jobs = append(p.Jobs, v)
	}
	return p
}
