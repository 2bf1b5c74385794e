package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler         authHandler
	projectHandler      projectHandler
	newsHandler         newsHandler
	categoryHandler     categoryHandler
	heroImageHandler    heroImageHandler
	sectionImageHandler sectionImageHandler
	uploadHandler       uploadHandler
	contactHandler      contactHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
}

// ImageInput is one element of a submitted gallery. Its position in the
// submitted array becomes the stored display order.
type ImageInput struct {
	URL      string  `json:"url"`
	FileName string  `json:"fileName"`
	FileSize *int64  `json:"fileSize,omitempty"`
	MimeType *string `json:"mimeType,omitempty"`
	Caption  *string `json:"caption,omitempty"`
}
