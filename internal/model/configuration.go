package model

import (
	"taskestimate/internal/abstraction"
)

type ConfigurationEntity struct {
	Key   string `json:"key" gorm:"column:config_key;size:100;uniqueIndex;not null"`
	Value string `json:"value" gorm:"column:config_value;size:255;not null"`
}

// ConfigurationEntityModel ...
type ConfigurationEntityModel struct {
	ID int `json:"id" param:"id" form:"id" validate:"number,min=1" gorm:"primaryKey;autoIncrement;"`

	// entity
	ConfigurationEntity

	abstraction.Entity

	// context
	Context *abstraction.Context `json:"-" gorm:"-"`
}

// TableName ...
func (ConfigurationEntityModel) TableName() string {
	return "configuration"
}
