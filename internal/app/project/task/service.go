package task

import (
	"fmt"

	"taskestimate/internal/abstraction"
	"taskestimate/internal/dto"
	"taskestimate/internal/estimation"
	"taskestimate/internal/factory"
	"taskestimate/internal/model"
	"taskestimate/internal/repository"
	"taskestimate/pkg/constant"
	"taskestimate/pkg/util/apperror"
	"taskestimate/pkg/util/trxmanager"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx *abstraction.Context, payload *dto.ProjectTaskCreateRequest) (map[string]interface{}, error)
	Update(ctx *abstraction.Context, payload *dto.ProjectTaskUpdateRequest) (map[string]interface{}, error)
	Delete(ctx *abstraction.Context, payload *dto.ProjectTaskDeleteByIDRequest) (map[string]interface{}, error)
}

type service struct {
	ProjectRepository     repository.Project
	TaskTypeRepository    repository.TaskType
	ProjectTaskRepository repository.ProjectTask

	Engine estimation.Engine

	DB *gorm.DB
}

func NewService(f *factory.Factory) Service {
	return &service{
		ProjectRepository:     f.ProjectRepository,
		TaskTypeRepository:    f.TaskTypeRepository,
		ProjectTaskRepository: f.ProjectTaskRepository,

		Engine: f.EstimationEngine,

		DB: f.Db,
	}
}

func (s *service) Create(ctx *abstraction.Context, payload *dto.ProjectTaskCreateRequest) (map[string]interface{}, error) {
	var modelProjectTask *model.ProjectTaskEntityModel
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		_, err := s.ProjectRepository.FindById(ctx, payload.ProjectId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("project not found")
			}
			return err
		}

		taskTypeData, err := s.TaskTypeRepository.FindById(ctx, payload.TaskTypeId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("task type not found")
			}
			return err
		}

		existing, err := s.ProjectTaskRepository.FindByProjectIdAndTaskTypeId(ctx, payload.ProjectId, payload.TaskTypeId)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if existing != nil {
			return apperror.Conflict("task type already added to project")
		}

		if err := validateBounds(payload.Quantity, payload.CustomMinHours, payload.CustomMaxHours); err != nil {
			return err
		}
		if err := validateEffectiveHours(taskTypeData, payload.CustomMinHours, payload.CustomMaxHours); err != nil {
			return err
		}

		modelProjectTask = &model.ProjectTaskEntityModel{
			Context: ctx,
			ProjectTaskEntity: model.ProjectTaskEntity{
				ProjectId:      payload.ProjectId,
				TaskTypeId:     payload.TaskTypeId,
				Quantity:       payload.Quantity,
				CustomMinHours: payload.CustomMinHours,
				CustomMaxHours: payload.CustomMaxHours,
			},
		}
		if err := s.ProjectTaskRepository.Create(ctx, modelProjectTask).Error; err != nil {
			return err
		}

		// Totals must be consistent with the new task set before this unit
		// commits; a recalculation failure rolls the creation back.
		if err := s.Engine.Recalculate(ctx, payload.ProjectId); err != nil {
			return err
		}

		return nil
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"message": "success create!",
		"data":    modelProjectTask,
	}, nil
}

func (s *service) Update(ctx *abstraction.Context, payload *dto.ProjectTaskUpdateRequest) (map[string]interface{}, error) {
	var projectTaskData *model.ProjectTaskEntityModel
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		data, err := s.ProjectTaskRepository.FindById(ctx, payload.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("project task not found")
			}
			return err
		}

		if payload.Quantity != nil {
			data.Quantity = *payload.Quantity
		}
		if payload.CustomMinHours != nil {
			data.CustomMinHours = payload.CustomMinHours
		}
		if payload.CustomMaxHours != nil {
			data.CustomMaxHours = payload.CustomMaxHours
		}
		if payload.ClearCustomMinHours != nil && *payload.ClearCustomMinHours {
			data.CustomMinHours = nil
		}
		if payload.ClearCustomMaxHours != nil && *payload.ClearCustomMaxHours {
			data.CustomMaxHours = nil
		}

		if err := validateBounds(data.Quantity, data.CustomMinHours, data.CustomMaxHours); err != nil {
			return err
		}
		if err := validateEffectiveHours(&data.TaskType, data.CustomMinHours, data.CustomMaxHours); err != nil {
			return err
		}

		data.Context = ctx
		if err := s.ProjectTaskRepository.Update(ctx, data).Error; err != nil {
			return err
		}
		projectTaskData = data

		if err := s.Engine.Recalculate(ctx, data.ProjectId); err != nil {
			return err
		}

		return nil
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"message": "success update!",
		"data":    projectTaskData,
	}, nil
}

func (s *service) Delete(ctx *abstraction.Context, payload *dto.ProjectTaskDeleteByIDRequest) (map[string]interface{}, error) {
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		data, err := s.ProjectTaskRepository.FindById(ctx, payload.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("project task not found")
			}
			return err
		}

		if err := s.ProjectTaskRepository.DeleteById(ctx, payload.ID).Error; err != nil {
			return err
		}

		if err := s.Engine.Recalculate(ctx, data.ProjectId); err != nil {
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

// validateBounds enforces the structural limits at the service boundary, so
// callers that bypass the HTTP validator cannot store out-of-range rows.
func validateBounds(quantity int, customMinHours, customMaxHours *float64) error {
	if quantity < constant.QUANTITY_MIN || quantity > constant.QUANTITY_MAX {
		return apperror.Validation(fmt.Sprintf("quantity must be between %d and %d", constant.QUANTITY_MIN, constant.QUANTITY_MAX))
	}
	for _, hours := range []*float64{customMinHours, customMaxHours} {
		if hours != nil && (*hours <= 0 || *hours > constant.HOURS_MAX) {
			return apperror.Validation(fmt.Sprintf("custom hours must be greater than 0 and at most %v", constant.HOURS_MAX))
		}
	}
	return nil
}

// validateEffectiveHours enforces the post-resolution invariant at write
// time: override if present, else the type default, and the resulting max
// must not drop below the resulting min.
func validateEffectiveHours(taskTypeData *model.TaskTypeEntityModel, customMinHours, customMaxHours *float64) error {
	effectiveMin := taskTypeData.DefaultMinHours
	if customMinHours != nil {
		effectiveMin = *customMinHours
	}
	effectiveMax := taskTypeData.DefaultMaxHours
	if customMaxHours != nil {
		effectiveMax = *customMaxHours
	}
	if effectiveMax < effectiveMin {
		return apperror.Validation("effective max hours must be greater than or equal to effective min hours")
	}
	return nil
}
