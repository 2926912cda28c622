package models

// GenerateAdsRequest is the body of POST /ads/generate.
type GenerateAdsRequest struct {
	// ImageBase64 is the product image, either bare base64 or a data URL.
	ImageBase64 string `json:"imageBase64" example:"data:image/png;base64,iVBORw0KGgo..."`
	Description string `json:"description" example:"Handmade ceramic coffee mug"`
	// Style is one of modern, minimal, bold, elegant, playful. Defaults to modern.
	Style string `json:"style,omitempty" example:"modern"`
	// Platform is one of instagram, facebook, story, twitter. Defaults to instagram.
	Platform string `json:"platform,omitempty" example:"instagram"`
}

// AnimateAdRequest is the body of POST /ads/animate.
type AnimateAdRequest struct {
	ImageBase64 string `json:"imageBase64" example:"data:image/png;base64,iVBORw0KGgo..."`
	// Optional animation instruction. A default instruction is used when empty.
	Description string `json:"description,omitempty" example:"Animate this modern advertisement: ceramic mug"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
