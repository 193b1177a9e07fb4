package recipe

import "strings"

// CreatedAtLayout is the UTC timestamp format stored in created_at.
const CreatedAtLayout = "2006-01-02T15:04:05.000000Z"

// Recipe is one stored record. Field order matches the persisted document.
type Recipe struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Ingredients []string `json:"ingredients"`
	Steps       string   `json:"steps"`
	Tags        []string `json:"tags"`
	Image       *string  `json:"image"`
	CreatedAt   string   `json:"created_at"`
}

// Collection maps recipe id to recipe.
type Collection map[string]Recipe

// ImageName returns the stored image file name, or "" when the recipe has none.
func (r Recipe) ImageName() string {
	if r.Image == nil {
		return ""
	}
	return *r.Image
}

// HasImage reports whether the recipe references an image.
func (r Recipe) HasImage() bool {
	return r.ImageName() != ""
}

func (r Recipe) normalized() Recipe {
	if r.Ingredients == nil {
		r.Ingredients = []string{}
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
	if r.Image != nil && strings.TrimSpace(*r.Image) == "" {
		r.Image = nil
	}
	return r
}

// NewRecipe is the input to Store.Add. Image is nil when no image was
// uploaded; ImageName is the uploaded file's original name and only supplies
// the extension.
type NewRecipe struct {
	Title       string   `json:"title" validate:"notblank,max=120"`
	Ingredients []string `json:"ingredients"`
	Steps       string   `json:"steps"`
	Tags        []string `json:"tags"`
	Image       []byte   `json:"-"`
	ImageName   string   `json:"-"`
}

func stringPtr(s string) *string { return &s }
