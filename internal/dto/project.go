package dto

type ProjectCreateRequest struct {
	Name        string  `json:"name" form:"name" validate:"required,max=100"`
	Description *string `json:"description" form:"description" validate:"omitempty,max=1000"`
	Status      *string `json:"status" form:"status" validate:"omitempty,oneof=DRAFT ACTIVE COMPLETED ARCHIVED"`
}

type ProjectFindByIDRequest struct {
	ID int `param:"id" validate:"required"`
}

type ProjectUpdateRequest struct {
	ID          int     `param:"id" validate:"required"`
	Name        *string `json:"name" form:"name" validate:"omitempty,max=100"`
	Description *string `json:"description" form:"description" validate:"omitempty,max=1000"`
	Status      *string `json:"status" form:"status" validate:"omitempty,oneof=DRAFT ACTIVE COMPLETED ARCHIVED"`
}

type ProjectDeleteByIDRequest struct {
	ID int `param:"id" validate:"required"`
}
