package model

import "time"

type EstimateBreakdown struct {
	TaskTypeId       int     `json:"task_type_id"`
	TaskTypeName     string  `json:"task_type_name"`
	Quantity         int     `json:"quantity"`
	MinHours         float64 `json:"min_hours"`
	MaxHours         float64 `json:"max_hours"`
	SubtotalMinHours float64 `json:"subtotal_min_hours"`
	SubtotalMaxHours float64 `json:"subtotal_max_hours"`
}

type Estimate struct {
	ProjectId     int                 `json:"project_id"`
	TotalMinHours float64             `json:"total_min_hours"`
	TotalMaxHours float64             `json:"total_max_hours"`
	TaskBreakdown []EstimateBreakdown `json:"task_breakdown"`
	CalculatedAt  time.Time           `json:"calculated_at"`
}
