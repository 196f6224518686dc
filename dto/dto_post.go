package dto

import (
	"strings"

	"content-planner/internal/apperrors"
	"content-planner/internal/models"
)

// PostRequest is the body of POST /posts and PUT /posts/:id.
type PostRequest struct {
	ID          string            `json:"id,omitempty" example:""`
	Title       string            `json:"title" example:"Friday tips"`
	Description string            `json:"description" example:"Five quick tips for the weekend"`
	Category    string            `json:"category,omitempty" example:"Social Media"`
	Frequency   string            `json:"frequency" example:"weekly"`
	StartDate   string            `json:"startDate" example:"2024-03-15"`
	PostTime    string            `json:"postTime,omitempty" example:"09:30"`
	Platforms   []models.Platform `json:"platforms" swaggertype:"array,string" example:"twitter,linkedin"`
}

// ToModel converts the request into a post. A missing start date is left
// zero for the service to report.
func (r PostRequest) ToModel() (models.Post, error) {
	var start models.Date
	if strings.TrimSpace(r.StartDate) != "" {
		d, err := models.ParseDate(r.StartDate)
		if err != nil {
			return models.Post{}, apperrors.Invalid("startDate", err.Error())
		}
		start = d
	}
	return models.Post{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Frequency:   models.Frequency(r.Frequency),
		StartDate:   start,
		PostTime:    r.PostTime,
		Platforms:   r.Platforms,
	}, nil
}

type DeleteResponse struct {
	Deleted bool `json:"deleted" example:"true"`
}

type OptionsResponse struct {
	Frequencies     []models.Frequency `json:"frequencies" swaggertype:"array,string"`
	Platforms       []models.Platform  `json:"platforms" swaggertype:"array,string"`
	DefaultPostTime string             `json:"defaultPostTime" example:"12:00"`
}
