package api

// Recipe describes a recipe in a transport-friendly format.
type Recipe struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Ingredients []string `json:"ingredients"`
	Steps       string   `json:"steps"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image,omitempty"`
	ImageState  string   `json:"imageState"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	CreatedAt   string   `json:"createdAt"`
}

// RecipeListResponse wraps a filtered recipe listing.
type RecipeListResponse struct {
	Query   string   `json:"query,omitempty"`
	Count   int      `json:"count"`
	Recipes []Recipe `json:"recipes"`
}

// RecipeResponse wraps a single recipe.
type RecipeResponse struct {
	Recipe Recipe `json:"recipe"`
}

// DeleteResponse reports whether a recipe was removed.
type DeleteResponse struct {
	ID      string `json:"id"`
	Removed bool   `json:"removed"`
}

// ImportResponse reports how many recipes an import wrote.
type ImportResponse struct {
	Imported int `json:"imported"`
}

// HistoryEvent is a journal entry.
type HistoryEvent struct {
	ID         int64  `json:"id"`
	OccurredAt string `json:"occurredAt"`
	Action     string `json:"action"`
	RecipeID   string `json:"recipeId,omitempty"`
	Title      string `json:"title,omitempty"`
	Count      int    `json:"count,omitempty"`
}

// HistoryResponse wraps journal entries, newest first.
type HistoryResponse struct {
	Events []HistoryEvent `json:"events"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Recipes int    `json:"recipes"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
