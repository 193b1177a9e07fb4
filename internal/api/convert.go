package api

import (
	"net/url"

	"cookbook/internal/journal"
	"cookbook/internal/recipe"
)

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// ImagePathPrefix is the HTTP route images are served under.
const ImagePathPrefix = "/api/images/"

// FromRecipe converts a stored recipe and its image state to the API shape.
func FromRecipe(r recipe.Recipe, state recipe.ImageState) Recipe {
	dto := Recipe{
		ID:          r.ID,
		Title:       r.Title,
		Ingredients: nonNil(r.Ingredients),
		Steps:       r.Steps,
		Tags:        nonNil(r.Tags),
		Image:       r.ImageName(),
		ImageState:  string(state),
		CreatedAt:   r.CreatedAt,
	}
	if state == recipe.ImagePresent {
		dto.ImageURL = ImagePathPrefix + url.PathEscape(r.ImageName())
	}
	return dto
}

// FromEvent converts a journal event.
func FromEvent(ev journal.Event) HistoryEvent {
	out := HistoryEvent{
		ID:       ev.ID,
		Action:   string(ev.Action),
		RecipeID: ev.RecipeID,
		Title:    ev.Title,
		Count:    ev.Count,
	}
	if !ev.OccurredAt.IsZero() {
		out.OccurredAt = ev.OccurredAt.UTC().Format(dateTimeFormat)
	}
	return out
}

// FromEvents converts journal events preserving order.
func FromEvents(events []journal.Event) []HistoryEvent {
	out := make([]HistoryEvent, 0, len(events))
	for _, ev := range events {
		out = append(out, FromEvent(ev))
	}
	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
