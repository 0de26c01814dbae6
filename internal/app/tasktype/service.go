package tasktype

import (
	"fmt"
	"net/http"
	"sort"

	"taskestimate/internal/abstraction"
	"taskestimate/internal/dto"
	"taskestimate/internal/estimation"
	"taskestimate/internal/factory"
	"taskestimate/internal/model"
	"taskestimate/internal/repository"
	"taskestimate/pkg/constant"
	"taskestimate/pkg/util/apperror"
	"taskestimate/pkg/util/response"
	"taskestimate/pkg/util/trxmanager"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Service interface {
	Find(ctx *abstraction.Context) (map[string]interface{}, error)
	Create(ctx *abstraction.Context, payload *dto.TaskTypeCreateRequest) (map[string]interface{}, error)
	Update(ctx *abstraction.Context, payload *dto.TaskTypeUpdateRequest) (map[string]interface{}, error)
	BulkUpdate(ctx *abstraction.Context, payload *dto.TaskTypeBulkUpdateRequest) (map[string]interface{}, error)
	Delete(ctx *abstraction.Context, payload *dto.TaskTypeDeleteByIDRequest) (map[string]interface{}, error)
}

type service struct {
	TaskTypeRepository    repository.TaskType
	ProjectTaskRepository repository.ProjectTask

	Engine estimation.Engine

	DB *gorm.DB
}

func NewService(f *factory.Factory) Service {
	return &service{
		TaskTypeRepository:    f.TaskTypeRepository,
		ProjectTaskRepository: f.ProjectTaskRepository,

		Engine: f.EstimationEngine,

		DB: f.Db,
	}
}

func (s *service) Find(ctx *abstraction.Context) (map[string]interface{}, error) {
	data, err := s.TaskTypeRepository.Find(ctx, false)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	count, err := s.TaskTypeRepository.Count(ctx)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	return map[string]interface{}{
		"count": count,
		"data":  data,
	}, nil
}

func (s *service) Create(ctx *abstraction.Context, payload *dto.TaskTypeCreateRequest) (map[string]interface{}, error) {
	var modelTaskType *model.TaskTypeEntityModel
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		if err := validateDefaultHours(payload.DefaultMinHours, payload.DefaultMaxHours); err != nil {
			return err
		}

		existing, err := s.TaskTypeRepository.FindByName(ctx, payload.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if existing != nil {
			return apperror.Conflict("task type name already exists")
		}

		isActive := true
		if payload.IsActive != nil {
			isActive = *payload.IsActive
		}

		modelTaskType = &model.TaskTypeEntityModel{
			Context: ctx,
			TaskTypeEntity: model.TaskTypeEntity{
				Name:            payload.Name,
				Description:     payload.Description,
				DefaultMinHours: payload.DefaultMinHours,
				DefaultMaxHours: payload.DefaultMaxHours,
				Category:        payload.Category,
				IsActive:        isActive,
			},
		}
		if err := s.TaskTypeRepository.Create(ctx, modelTaskType).Error; err != nil {
			return err
		}

		return nil
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"message": "success create!",
		"data":    modelTaskType,
	}, nil
}

func (s *service) Update(ctx *abstraction.Context, payload *dto.TaskTypeUpdateRequest) (map[string]interface{}, error) {
	var taskTypeData *model.TaskTypeEntityModel
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		data, err := s.TaskTypeRepository.FindById(ctx, payload.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("task type not found")
			}
			return err
		}

		if payload.Name != nil && *payload.Name != data.Name {
			existing, err := s.TaskTypeRepository.FindByName(ctx, *payload.Name)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if existing != nil {
				return apperror.Conflict("task type name already exists")
			}
			data.Name = *payload.Name
		}
		if payload.Description != nil {
			data.Description = payload.Description
		}
		if payload.Category != nil {
			data.Category = payload.Category
		}
		if payload.IsActive != nil {
			data.IsActive = *payload.IsActive
		}

		oldMinHours := data.DefaultMinHours
		oldMaxHours := data.DefaultMaxHours
		if payload.DefaultMinHours != nil {
			data.DefaultMinHours = *payload.DefaultMinHours
		}
		if payload.DefaultMaxHours != nil {
			data.DefaultMaxHours = *payload.DefaultMaxHours
		}
		if err := validateDefaultHours(data.DefaultMinHours, data.DefaultMaxHours); err != nil {
			return err
		}

		data.Context = ctx
		if err := s.TaskTypeRepository.Update(ctx, data).Error; err != nil {
			return err
		}
		taskTypeData = data

		minChanged := data.DefaultMinHours != oldMinHours
		maxChanged := data.DefaultMaxHours != oldMaxHours
		if minChanged || maxChanged {
			affected, err := s.affectedProjectIds(ctx, data, minChanged, maxChanged)
			if err != nil {
				return err
			}
			for _, projectId := range affected {
				if err := s.Engine.Recalculate(ctx, projectId); err != nil {
					return err
				}
			}
		}

		return nil
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"message": "success update!",
		"data":    taskTypeData,
	}, nil
}

func (s *service) BulkUpdate(ctx *abstraction.Context, payload *dto.TaskTypeBulkUpdateRequest) (map[string]interface{}, error) {
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		affectedSet := make(map[int]bool)
		for _, item := range payload.Items {
			data, err := s.TaskTypeRepository.FindById(ctx, item.ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperror.NotFound(fmt.Sprintf("task type %d not found", item.ID))
				}
				return err
			}

			oldMinHours := data.DefaultMinHours
			oldMaxHours := data.DefaultMaxHours
			if item.DefaultMinHours != nil {
				data.DefaultMinHours = *item.DefaultMinHours
			}
			if item.DefaultMaxHours != nil {
				data.DefaultMaxHours = *item.DefaultMaxHours
			}
			if err := validateDefaultHours(data.DefaultMinHours, data.DefaultMaxHours); err != nil {
				return apperror.Validation(fmt.Sprintf("task type %d: %s", item.ID, err.Error()))
			}

			data.Context = ctx
			if err := s.TaskTypeRepository.Update(ctx, data).Error; err != nil {
				return err
			}

			minChanged := data.DefaultMinHours != oldMinHours
			maxChanged := data.DefaultMaxHours != oldMaxHours
			if minChanged || maxChanged {
				affected, err := s.affectedProjectIds(ctx, data, minChanged, maxChanged)
				if err != nil {
					return err
				}
				for _, projectId := range affected {
					affectedSet[projectId] = true
				}
			}
		}

		// Each affected project is recalculated once, however many of its
		// task types were touched.
		affected := make([]int, 0, len(affectedSet))
		for projectId := range affectedSet {
			affected = append(affected, projectId)
		}
		sort.Ints(affected)
		for _, projectId := range affected {
			if err := s.Engine.Recalculate(ctx, projectId); err != nil {
				return err
			}
		}

		return nil
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"message": "success update!",
	}, nil
}

func (s *service) Delete(ctx *abstraction.Context, payload *dto.TaskTypeDeleteByIDRequest) (map[string]interface{}, error) {
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		_, err := s.TaskTypeRepository.FindById(ctx, payload.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("task type not found")
			}
			return err
		}

		count, err := s.ProjectTaskRepository.CountByTaskTypeId(ctx, payload.ID)
		if err != nil {
			return err
		}
		if count != nil && *count > 0 {
			return apperror.Conflict("task type is still referenced by project tasks")
		}

		if err := s.TaskTypeRepository.DeleteById(ctx, payload.ID).Error; err != nil {
			return err
		}

		return nil
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"message": "success delete!",
	}, nil
}

// validateDefaultHours enforces the structural limits at the service boundary,
// independent of the HTTP validator.
func validateDefaultHours(minHours, maxHours float64) error {
	if minHours <= 0 || maxHours <= 0 || minHours > constant.HOURS_MAX || maxHours > constant.HOURS_MAX {
		return apperror.Validation(fmt.Sprintf("default hours must be greater than 0 and at most %v", constant.HOURS_MAX))
	}
	if maxHours < minHours {
		return apperror.Validation("default max hours must be greater than or equal to default min hours")
	}
	return nil
}

// affectedProjectIds scans every project task referencing the updated type,
// rejects updates that would leave an effective max below an effective min,
// and collects the projects whose totals the change invalidates. Overrides
// shield per dimension: a row with a custom min is unaffected by a default
// min change but still affected by a default max change when it has no
// custom max.
func (s *service) affectedProjectIds(ctx *abstraction.Context, taskTypeData *model.TaskTypeEntityModel, minChanged, maxChanged bool) ([]int, error) {
	rows, err := s.ProjectTaskRepository.FindByTaskTypeId(ctx, taskTypeData.ID)
	if err != nil {
		return nil, err
	}

	affectedSet := make(map[int]bool)
	for _, row := range rows {
		effectiveMin := taskTypeData.DefaultMinHours
		if row.CustomMinHours != nil {
			effectiveMin = *row.CustomMinHours
		}
		effectiveMax := taskTypeData.DefaultMaxHours
		if row.CustomMaxHours != nil {
			effectiveMax = *row.CustomMaxHours
		}
		if effectiveMax < effectiveMin {
			return nil, apperror.Validation(fmt.Sprintf("update leaves project %d with effective max hours below effective min hours", row.ProjectId))
		}

		if (minChanged && row.CustomMinHours == nil) || (maxChanged && row.CustomMaxHours == nil) {
			affectedSet[row.ProjectId] = true
		}
	}

	affected := make([]int, 0, len(affectedSet))
	for projectId := range affectedSet {
		affected = append(affected, projectId)
	}
	sort.Ints(affected)
	return affected, nil
}
