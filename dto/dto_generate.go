package dto

type HashtagRequest struct {
	Description string `json:"description" example:"Our new recycled sneakers are out today"`
}

type ImageRequest struct {
	Prompt string `json:"prompt" example:"a sneaker made of ocean plastic, studio light"`
}

// ImageResponse describes a generated image; the bytes are served from URL.
type ImageResponse struct {
	Handle      string `json:"handle" example:"665f1c2e9b1d4c3a2f0e8a11"`
	URL         string `json:"url" example:"/images/665f1c2e9b1d4c3a2f0e8a11"`
	ContentType string `json:"contentType" example:"image/png"`
	Size        int    `json:"size" example:"482113"`
}

type PostDaysResponse struct {
	PostID string `json:"postId"`
	Year   int    `json:"year"`
	Month  int    `json:"month"`
	Days   []int  `json:"days"`
}
