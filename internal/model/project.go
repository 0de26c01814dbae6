package model

import (
	"taskestimate/internal/abstraction"
)

type ProjectEntity struct {
	Name        string  `json:"name" gorm:"size:100;not null"`
	Description *string `json:"description" gorm:"size:1000"`
	Status      string  `json:"status" gorm:"size:20;not null"`

	// Derived totals, written only by the estimation engine.
	TotalMinHours float64 `json:"total_min_hours" gorm:"not null;default:0"`
	TotalMaxHours float64 `json:"total_max_hours" gorm:"not null;default:0"`
}

// ProjectEntityModel ...
type ProjectEntityModel struct {
	ID int `json:"id" param:"id" form:"id" validate:"number,min=1" gorm:"primaryKey;autoIncrement;"`

	// entity
	ProjectEntity

	abstraction.Entity

	// context
	Context *abstraction.Context `json:"-" gorm:"-"`
}

// TableName ...
func (ProjectEntityModel) TableName() string {
	return "project"
}

type ProjectCountDataModel struct {
	Count int `json:"count"`
}
