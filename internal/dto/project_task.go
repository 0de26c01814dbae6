package dto

type ProjectTaskCreateRequest struct {
	ProjectId      int      `json:"project_id" form:"project_id" validate:"required"`
	TaskTypeId     int      `json:"task_type_id" form:"task_type_id" validate:"required"`
	Quantity       int      `json:"quantity" form:"quantity" validate:"required,min=1,max=1000"`
	CustomMinHours *float64 `json:"custom_min_hours" form:"custom_min_hours" validate:"omitempty,gt=0,lte=1000"`
	CustomMaxHours *float64 `json:"custom_max_hours" form:"custom_max_hours" validate:"omitempty,gt=0,lte=1000"`
}

type ProjectTaskUpdateRequest struct {
	ID                  int      `param:"id" validate:"required"`
	Quantity            *int     `json:"quantity" form:"quantity" validate:"omitempty,min=1,max=1000"`
	CustomMinHours      *float64 `json:"custom_min_hours" form:"custom_min_hours" validate:"omitempty,gt=0,lte=1000"`
	CustomMaxHours      *float64 `json:"custom_max_hours" form:"custom_max_hours" validate:"omitempty,gt=0,lte=1000"`
	ClearCustomMinHours *bool    `json:"clear_custom_min_hours" form:"clear_custom_min_hours"`
	ClearCustomMaxHours *bool    `json:"clear_custom_max_hours" form:"clear_custom_max_hours"`
}

type ProjectTaskDeleteByIDRequest struct {
	ID int `param:"id" validate:"required"`
}
