package model

import (
	"taskestimate/internal/abstraction"
)

type ProjectTaskEntity struct {
	ProjectId  int `json:"project_id" gorm:"not null;uniqueIndex:idx_project_task_type"`
	TaskTypeId int `json:"task_type_id" gorm:"not null;uniqueIndex:idx_project_task_type"`
	Quantity   int `json:"quantity" gorm:"not null"`

	CustomMinHours *float64 `json:"custom_min_hours"`
	CustomMaxHours *float64 `json:"custom_max_hours"`
}

// ProjectTaskEntityModel ...
type ProjectTaskEntityModel struct {
	ID int `json:"id" param:"id" form:"id" validate:"number,min=1" gorm:"primaryKey;autoIncrement;"`

	// entity
	ProjectTaskEntity

	abstraction.Entity

	Project  ProjectEntityModel  `json:"project" gorm:"foreignKey:ProjectId"`
	TaskType TaskTypeEntityModel `json:"task_type" gorm:"foreignKey:TaskTypeId"`

	// context
	Context *abstraction.Context `json:"-" gorm:"-"`
}

// TableName ...
func (ProjectTaskEntityModel) TableName() string {
	return "project_task"
}

type ProjectTaskCountDataModel struct {
	Count int `json:"count"`
}

// EffectiveMinHours resolves the override-over-default precedence for the min dimension.
func (m *ProjectTaskEntityModel) EffectiveMinHours() float64 {
	if m.CustomMinHours != nil {
		return *m.CustomMinHours
	}
	return m.TaskType.DefaultMinHours
}

// EffectiveMaxHours resolves the override-over-default precedence for the max dimension.
func (m *ProjectTaskEntityModel) EffectiveMaxHours() float64 {
	if m.CustomMaxHours != nil {
		return *m.CustomMaxHours
	}
	return m.TaskType.DefaultMaxHours
}
