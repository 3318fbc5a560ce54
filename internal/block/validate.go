package block

import (
	"fmt"
	"net/url"
)

// FieldError reports a single invalid field. Field is a path relative to the
// block, e.g. "heading" or "items[2].title".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

const (
	msgRequired   = "is required"
	msgInvalidURL = "must be a valid URL"
)

// Validate checks the block against its variant shape and returns one error
// per invalid field. An empty string is treated as absent for optional URL
// fields. A bad array element is reported for that element's index only;
// validation of its siblings continues.
func Validate(b Block) []FieldError {
	var errs []FieldError
	req := func(field, val string) {
		if val == "" {
			errs = append(errs, FieldError{field, msgRequired})
		}
	}
	optionalURL := func(field, val string) {
		if val == "" {
			return
		}
		u, err := url.Parse(val)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, FieldError{field, msgInvalidURL})
		}
	}

	switch b.Type {
	case TypeHero:
		req("heading", b.Hero.Heading)
		req("subheading", b.Hero.Subheading)
		optionalURL("backgroundImageUrl", b.Hero.BackgroundImageURL)
	case TypeFeatureSplit:
		if b.FeatureSplit.Layout != LayoutImageLeft && b.FeatureSplit.Layout != LayoutImageRight {
			errs = append(errs, FieldError{"layout", fmt.Sprintf("must be one of %q, %q", LayoutImageLeft, LayoutImageRight)})
		}
		req("heading", b.FeatureSplit.Heading)
		req("content", b.FeatureSplit.Content)
		optionalURL("imageUrl", b.FeatureSplit.ImageURL)
	case TypeValuesGrid:
		req("heading", b.ValuesGrid.Heading)
		for i, item := range b.ValuesGrid.Items {
			req(fmt.Sprintf("items[%d].title", i), item.Title)
			req(fmt.Sprintf("items[%d].text", i), item.Text)
			optionalURL(fmt.Sprintf("items[%d].image_url", i), item.ImageURL)
		}
	case TypeFeatures:
		req("heading", b.Features.Heading)
		for i, f := range b.Features.Features {
			req(fmt.Sprintf("features[%d].title", i), f.Title)
			req(fmt.Sprintf("features[%d].description", i), f.Description)
		}
	default:
		errs = append(errs, FieldError{"type", fmt.Sprintf("unknown block type %q", b.Type)})
	}
	return errs
}
