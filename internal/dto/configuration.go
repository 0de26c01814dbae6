package dto

type ConfigurationSetRequest struct {
	Key   string `json:"key" form:"key" validate:"required,max=100"`
	Value string `json:"value" form:"value" validate:"required,max=255"`
}
