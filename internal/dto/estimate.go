package dto

type EstimateCalculateRequest struct {
	ProjectId int `param:"id" validate:"required"`
}

type EstimateRecalculateRequest struct {
	ProjectId int `param:"id" validate:"required"`
}

type EstimateExportRequest struct {
	ProjectId int    `param:"id" validate:"required"`
	Format    string `query:"format" validate:"required,oneof=excel pdf"`
}
