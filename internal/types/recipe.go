package types

// RecipeRequest is the body for creating or replacing a recipe
type RecipeRequest struct {
	Title        string `json:"title" binding:"required,max=255"`
	CuisineType  string `json:"cuisine_type" binding:"max=100"`
	CookingTime  int    `json:"cooking_time" binding:"min=0"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
}

// ImageUploadRequest asks for a presigned upload URL for a recipe image
type ImageUploadRequest struct {
	ContentType string `json:"content_type" binding:"required,oneof=image/jpeg image/png image/webp"`
}

// ImageUploadResponse tells the client where to PUT the image and where it will be served from
type ImageUploadResponse struct {
	UploadURL string `json:"upload_url"`
	ImageURL  string `json:"image_url"`
	ExpiresIn int    `json:"expires_in"`
}

// MessageResponse is a plain acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}

// CountResponse carries a favorite count
type CountResponse struct {
	Count int64 `json:"count"`
}
