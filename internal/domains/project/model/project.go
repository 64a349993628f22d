package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Project is a portfolio entry. Order governs display position only.
type Project struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Contributions string    `json:"contributions"`
	Stack         []string  `json:"stack"`
	Challenges    string    `json:"challenges"`
	Achievements  string    `json:"achievements"`
	Link          *string   `json:"link,omitempty"`
	GithubURL     *string   `json:"githubUrl,omitempty"`
	LiveURL       *string   `json:"liveUrl,omitempty"`
	Image         *string   `json:"image,omitempty"`
	Order         int       `json:"order"`
	Featured      bool      `json:"featured"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type CreateProjectRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Contributions string   `json:"contributions"`
	Stack         []string `json:"stack"`
	Challenges    string   `json:"challenges"`
	Achievements  string   `json:"achievements"`
	Link          *string  `json:"link,omitempty"`
	GithubURL     *string  `json:"githubUrl,omitempty"`
	LiveURL       *string  `json:"liveUrl,omitempty"`
	Image         *string  `json:"image,omitempty"`
	Order         *int     `json:"order,omitempty"`
	Featured      *bool    `json:"featured,omitempty"`
}

func (r CreateProjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required"), validation.Length(1, 255)),
		validation.Field(&r.Description, validation.Required.Error("description is required")),
		validation.Field(&r.Contributions, validation.Required.Error("contributions is required")),
		validation.Field(&r.Stack, validation.NotNil.Error("stack must be an array")),
		validation.Field(&r.Challenges, validation.Required.Error("challenges is required")),
		validation.Field(&r.Achievements, validation.Required.Error("achievements is required")),
		validation.Field(&r.Link, validation.When(r.Link != nil && *r.Link != "", is.URL.Error("link must be a URL"))),
		validation.Field(&r.GithubURL, validation.When(r.GithubURL != nil && *r.GithubURL != "", is.URL.Error("githubUrl must be a URL"))),
		validation.Field(&r.LiveURL, validation.When(r.LiveURL != nil && *r.LiveURL != "", is.URL.Error("liveUrl must be a URL"))),
	)
}

type UpdateProjectRequest struct {
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Contributions *string  `json:"contributions,omitempty"`
	Stack         []string `json:"stack,omitempty"`
	Challenges    *string  `json:"challenges,omitempty"`
	Achievements  *string  `json:"achievements,omitempty"`
	Link          *string  `json:"link,omitempty"`
	GithubURL     *string  `json:"githubUrl,omitempty"`
	LiveURL       *string  `json:"liveUrl,omitempty"`
	Image         *string  `json:"image,omitempty"`
	Order         *int     `json:"order,omitempty"`
	Featured      *bool    `json:"featured,omitempty"`
}

func (r UpdateProjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.When(r.Name != nil, validation.Required.Error("name cannot be empty"), validation.Length(1, 255)),
		),
		validation.Field(&r.Link, validation.When(r.Link != nil && *r.Link != "", is.URL.Error("link must be a URL"))),
		validation.Field(&r.GithubURL, validation.When(r.GithubURL != nil && *r.GithubURL != "", is.URL.Error("githubUrl must be a URL"))),
		validation.Field(&r.LiveURL, validation.When(r.LiveURL != nil && *r.LiveURL != "", is.URL.Error("liveUrl must be a URL"))),
	)
}
