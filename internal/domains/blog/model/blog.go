package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// DateLayout is the wire format for publishedAt.
const DateLayout = "2006-01-02"

// Blog is a single post. Slug is derived from the title and unique;
// views only ever increases.
type Blog struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	CoverImage  *string   `json:"coverImage,omitempty"`
	Tags        []string  `json:"tags"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
	Views       int       `json:"views"`
	ReadTime    int       `json:"readTime"` // minutes
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateBlogRequest is the admin-facing payload for new posts.
type CreateBlogRequest struct {
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	CoverImage  *string  `json:"coverImage,omitempty"`
	Tags        []string `json:"tags"`
	Author      string   `json:"author"`
	PublishedAt string   `json:"publishedAt,omitempty"` // YYYY-MM-DD, defaults to today
	ReadTime    *int     `json:"readTime,omitempty"`
	Published   *bool    `json:"published,omitempty"`
}

func (r CreateBlogRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Excerpt, validation.Required.Error("excerpt is required")),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
		validation.Field(&r.Author, validation.Required.Error("author is required")),
		validation.Field(&r.Tags, validation.NotNil.Error("tags must be an array")),
		validation.Field(&r.PublishedAt,
			validation.When(r.PublishedAt != "",
				validation.Date(DateLayout).Error("publishedAt must be YYYY-MM-DD"),
			),
		),
		validation.Field(&r.ReadTime,
			validation.When(r.ReadTime != nil, validation.Min(1)),
		),
	)
}

// UpdateBlogRequest carries a partial update. Only the fields listed here
// can be changed; nil means "leave as is".
type UpdateBlogRequest struct {
	Title       *string  `json:"title,omitempty"`
	Excerpt     *string  `json:"excerpt,omitempty"`
	Content     *string  `json:"content,omitempty"`
	CoverImage  *string  `json:"coverImage,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Author      *string  `json:"author,omitempty"`
	PublishedAt *string  `json:"publishedAt,omitempty"`
	ReadTime    *int     `json:"readTime,omitempty"`
	Published   *bool    `json:"published,omitempty"`
}

func (r UpdateBlogRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil,
				validation.Required.Error("title cannot be empty"),
				validation.Length(1, 255),
			),
		),
		validation.Field(&r.Excerpt,
			validation.When(r.Excerpt != nil, validation.Required.Error("excerpt cannot be empty")),
		),
		validation.Field(&r.Content,
			validation.When(r.Content != nil, validation.Required.Error("content cannot be empty")),
		),
		validation.Field(&r.Author,
			validation.When(r.Author != nil, validation.Required.Error("author cannot be empty")),
		),
		validation.Field(&r.PublishedAt,
			validation.When(r.PublishedAt != nil && *r.PublishedAt != "",
				validation.Date(DateLayout).Error("publishedAt must be YYYY-MM-DD"),
			),
		),
		validation.Field(&r.ReadTime,
			validation.When(r.ReadTime != nil, validation.Min(1)),
		),
	)
}

// BlogStats aggregates the whole table; all fields are zero when no
// posts exist.
type BlogStats struct {
	TotalBlogs     int `json:"totalBlogs"`
	PublishedBlogs int `json:"publishedBlogs"`
	TotalViews     int `json:"totalViews"`
}
