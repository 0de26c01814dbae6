package dto

type TaskTypeCreateRequest struct {
	Name            string  `json:"name" form:"name" validate:"required,max=100"`
	Description     *string `json:"description" form:"description" validate:"omitempty,max=500"`
	DefaultMinHours float64 `json:"default_min_hours" form:"default_min_hours" validate:"required,gt=0,lte=1000"`
	DefaultMaxHours float64 `json:"default_max_hours" form:"default_max_hours" validate:"required,gt=0,lte=1000"`
	Category        *string `json:"category" form:"category" validate:"omitempty,max=50"`
	IsActive        *bool   `json:"is_active" form:"is_active"`
}

type TaskTypeDeleteByIDRequest struct {
	ID int `param:"id" validate:"required"`
}

type TaskTypeUpdateRequest struct {
	ID              int      `param:"id" validate:"required"`
	Name            *string  `json:"name" form:"name" validate:"omitempty,max=100"`
	Description     *string  `json:"description" form:"description" validate:"omitempty,max=500"`
	DefaultMinHours *float64 `json:"default_min_hours" form:"default_min_hours" validate:"omitempty,gt=0,lte=1000"`
	DefaultMaxHours *float64 `json:"default_max_hours" form:"default_max_hours" validate:"omitempty,gt=0,lte=1000"`
	Category        *string  `json:"category" form:"category" validate:"omitempty,max=50"`
	IsActive        *bool    `json:"is_active" form:"is_active"`
}

type TaskTypeBulkUpdateItem struct {
	ID              int      `json:"id" validate:"required"`
	DefaultMinHours *float64 `json:"default_min_hours" validate:"omitempty,gt=0,lte=1000"`
	DefaultMaxHours *float64 `json:"default_max_hours" validate:"omitempty,gt=0,lte=1000"`
}

type TaskTypeBulkUpdateRequest struct {
	Items []TaskTypeBulkUpdateItem `json:"items" validate:"required,min=1,dive"`
}
