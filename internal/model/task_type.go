package model

import (
	"taskestimate/internal/abstraction"
)

type TaskTypeEntity struct {
	Name            string  `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Description     *string `json:"description" gorm:"size:500"`
	DefaultMinHours float64 `json:"default_min_hours" gorm:"not null"`
	DefaultMaxHours float64 `json:"default_max_hours" gorm:"not null"`
	Category        *string `json:"category" gorm:"size:50"`
	IsActive        bool    `json:"is_active" gorm:"not null;default:true"`
}

// TaskTypeEntityModel ...
type TaskTypeEntityModel struct {
	ID int `json:"id" param:"id" form:"id" validate:"number,min=1" gorm:"primaryKey;autoIncrement;"`

	// entity
	TaskTypeEntity

	abstraction.Entity

	// context
	Context *abstraction.Context `json:"-" gorm:"-"`
}

// TableName ...
func (TaskTypeEntityModel) TableName() string {
	return "task_type"
}

type TaskTypeCountDataModel struct {
	Count int `json:"count"`
}
