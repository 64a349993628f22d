package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Skill categories are a closed set; GroupByCategory always returns all
// four buckets.
const (
	CategoryBackend  = "backend"
	CategoryDatabase = "database"
	CategoryFrontend = "frontend"
	CategoryOther    = "other"
)

// Categories lists the valid category values in display order.
var Categories = []string{CategoryBackend, CategoryDatabase, CategoryFrontend, CategoryOther}

type Skill struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Level     int       `json:"level"` // 0-100
	Icon      *string   `json:"icon,omitempty"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SkillsByCategory holds the fixed four-bucket grouping. Buckets are
// never omitted; an empty category serializes as [].
type SkillsByCategory struct {
	Backend  []*Skill `json:"backend"`
	Database []*Skill `json:"database"`
	Frontend []*Skill `json:"frontend"`
	Other    []*Skill `json:"other"`
}

type CreateSkillRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Level    *int    `json:"level,omitempty"`
	Icon     *string `json:"icon,omitempty"`
	Order    *int    `json:"order,omitempty"`
}

func (r CreateSkillRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required"), validation.Length(1, 100)),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.In(CategoryBackend, CategoryDatabase, CategoryFrontend, CategoryOther).
				Error("category must be one of: backend, database, frontend, other"),
		),
		validation.Field(&r.Level,
			validation.When(r.Level != nil,
				validation.Min(0).Error("level must be at least 0"),
				validation.Max(100).Error("level must be at most 100"),
			),
		),
	)
}

type UpdateSkillRequest struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Level    *int    `json:"level,omitempty"`
	Icon     *string `json:"icon,omitempty"`
	Order    *int    `json:"order,omitempty"`
}

func (r UpdateSkillRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.When(r.Name != nil, validation.Required.Error("name cannot be empty"), validation.Length(1, 100)),
		),
		validation.Field(&r.Category,
			validation.When(r.Category != nil,
				validation.In(CategoryBackend, CategoryDatabase, CategoryFrontend, CategoryOther).
					Error("category must be one of: backend, database, frontend, other"),
			),
		),
		validation.Field(&r.Level,
			validation.When(r.Level != nil,
				validation.Min(0).Error("level must be at least 0"),
				validation.Max(100).Error("level must be at most 100"),
			),
		),
	)
}
