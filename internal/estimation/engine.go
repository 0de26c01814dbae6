package estimation

import (
	"sort"

	"taskestimate/internal/abstraction"
	"taskestimate/internal/model"
	"taskestimate/internal/repository"
	"taskestimate/pkg/util/apperror"
	"taskestimate/pkg/util/general"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Engine computes and persists a project's aggregate hour range from its
// current task set. It is the only writer of the project totals columns and
// must always run inside the transaction of the mutation that invalidated
// them.
type Engine interface {
	CalculateEstimate(ctx *abstraction.Context, projectId int) (*model.Estimate, error)
	Recalculate(ctx *abstraction.Context, projectId int) error
}

type engine struct {
	ProjectRepository     repository.Project
	ProjectTaskRepository repository.ProjectTask
}

func NewEngine(projectRepository repository.Project, projectTaskRepository repository.ProjectTask) Engine {
	return &engine{
		ProjectRepository:     projectRepository,
		ProjectTaskRepository: projectTaskRepository,
	}
}

func (e *engine) CalculateEstimate(ctx *abstraction.Context, projectId int) (*model.Estimate, error) {
	_, err := e.ProjectRepository.FindById(ctx, projectId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("project not found")
		}
		return nil, err
	}

	rows, err := e.ProjectTaskRepository.FindByProjectId(ctx, projectId)
	if err != nil {
		return nil, err
	}

	// Stable breakdown order: task-type category, then name. Repeated calls
	// over unchanged data must produce an identical list.
	sort.SliceStable(rows, func(i, j int) bool {
		ci, cj := categoryOf(rows[i]), categoryOf(rows[j])
		if ci != cj {
			return ci < cj
		}
		if rows[i].TaskType.Name != rows[j].TaskType.Name {
			return rows[i].TaskType.Name < rows[j].TaskType.Name
		}
		return rows[i].TaskTypeId < rows[j].TaskTypeId
	})

	breakdown := make([]model.EstimateBreakdown, 0, len(rows))
	var totalMin, totalMax float64
	for _, row := range rows {
		effectiveMin := row.EffectiveMinHours()
		effectiveMax := row.EffectiveMaxHours()
		subtotalMin := float64(row.Quantity) * effectiveMin
		subtotalMax := float64(row.Quantity) * effectiveMax
		totalMin += subtotalMin
		totalMax += subtotalMax
		breakdown = append(breakdown, model.EstimateBreakdown{
			TaskTypeId:       row.TaskTypeId,
			TaskTypeName:     row.TaskType.Name,
			Quantity:         row.Quantity,
			MinHours:         effectiveMin,
			MaxHours:         effectiveMax,
			SubtotalMinHours: subtotalMin,
			SubtotalMaxHours: subtotalMax,
		})
	}

	if err := e.ProjectRepository.UpdateTotals(ctx, projectId, totalMin, totalMax).Error; err != nil {
		return nil, err
	}

	return &model.Estimate{
		ProjectId:     projectId,
		TotalMinHours: totalMin,
		TotalMaxHours: totalMax,
		TaskBreakdown: breakdown,
		CalculatedAt:  *general.NowUTC(),
	}, nil
}

func (e *engine) Recalculate(ctx *abstraction.Context, projectId int) error {
	_, err := e.CalculateEstimate(ctx, projectId)
	return err
}

func categoryOf(row *model.ProjectTaskEntityModel) string {
	if row.TaskType.Category != nil {
		return *row.TaskType.Category
	}
	return ""
}
