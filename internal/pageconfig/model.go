package pageconfig

import (
	"github.com/orbit-careers/page-builder/internal/block"
)

// DefaultBrandColor is used when a tenant has never saved a design.
const DefaultBrandColor = "#3b82f6"

// PageConfig is a tenant's page document: the draft block sequence the
// editor mutates and the published snapshot anonymous visitors see. A tenant
// has exactly one; it is created implicitly on first save and never deleted.
type PageConfig struct {
	CompanyID         string
	BrandColor        string
	LogoURL           string
	HeroBackgroundURL string
	Draft             []block.Block
	Published         []block.Block
	HasPublished      bool
}
