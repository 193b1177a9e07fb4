package recipe

import (
	"context"

	"cookbook/internal/logging"
)

// ImageState describes whether a recipe's image can be shown.
type ImageState string

const (
	ImageNone    ImageState = "none"
	ImagePresent ImageState = "present"
	ImageMissing ImageState = "missing"
)

// ImageState reports whether r has an image and whether it still exists.
// A lookup failure is logged and reported as missing.
func (s *Store) ImageState(ctx context.Context, r Recipe) ImageState {
	if !r.HasImage() {
		return ImageNone
	}
	ok, err := s.images.Exists(ctx, r.ImageName())
	if err != nil {
		logging.WarnWithContext(s.logger, "image lookup failed", "image_lookup_failed",
			logging.String(logging.FieldRecipeID, r.ID),
			logging.String("image", r.ImageName()),
			logging.Error(err),
			logging.String(logging.FieldImpact, "image shown as missing"),
		)
		return ImageMissing
	}
	if !ok {
		return ImageMissing
	}
	return ImagePresent
}

// Label renders the state the way the recipe view shows it.
func (st ImageState) Label() string {
	switch st {
	case ImageMissing:
		return "(image missing)"
	case ImageNone:
		return "(no image)"
	default:
		return ""
	}
}
