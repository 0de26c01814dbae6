package project

import (
	"net/http"

	"taskestimate/internal/abstraction"
	"taskestimate/internal/dto"
	"taskestimate/internal/factory"
	"taskestimate/internal/model"
	"taskestimate/internal/repository"
	"taskestimate/pkg/constant"
	"taskestimate/pkg/util/apperror"
	"taskestimate/pkg/util/general"
	"taskestimate/pkg/util/response"
	"taskestimate/pkg/util/trxmanager"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Service interface {
	Find(ctx *abstraction.Context) (map[string]interface{}, error)
	FindById(ctx *abstraction.Context, payload *dto.ProjectFindByIDRequest) (map[string]interface{}, error)
	Create(ctx *abstraction.Context, payload *dto.ProjectCreateRequest) (map[string]interface{}, error)
	Update(ctx *abstraction.Context, payload *dto.ProjectUpdateRequest) (map[string]interface{}, error)
	Delete(ctx *abstraction.Context, payload *dto.ProjectDeleteByIDRequest) (map[string]interface{}, error)
}

type service struct {
	ProjectRepository       repository.Project
	ProjectTaskRepository   repository.ProjectTask
	ConfigurationRepository repository.Configuration

	DB *gorm.DB
}

func NewService(f *factory.Factory) Service {
	return &service{
		ProjectRepository:       f.ProjectRepository,
		ProjectTaskRepository:   f.ProjectTaskRepository,
		ConfigurationRepository: f.ConfigurationRepository,

		DB: f.Db,
	}
}

func (s *service) Find(ctx *abstraction.Context) (map[string]interface{}, error) {
	data, err := s.ProjectRepository.Find(ctx, false)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	count, err := s.ProjectRepository.Count(ctx)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	return map[string]interface{}{
		"count": count,
		"data":  data,
	}, nil
}

func (s *service) FindById(ctx *abstraction.Context, payload *dto.ProjectFindByIDRequest) (map[string]interface{}, error) {
	data, err := s.ProjectRepository.FindById(ctx, payload.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("project not found")
		}
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	tasks, err := s.ProjectTaskRepository.FindByProjectId(ctx, payload.ID)
	if err != nil {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	return map[string]interface{}{
		"data":  data,
		"tasks": tasks,
	}, nil
}

func (s *service) Create(ctx *abstraction.Context, payload *dto.ProjectCreateRequest) (map[string]interface{}, error) {
	var modelProject *model.ProjectEntityModel
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		status := s.defaultStatus(ctx)
		if payload.Status != nil {
			status = *payload.Status
		}

		modelProject = &model.ProjectEntityModel{
			Context: ctx,
			ProjectEntity: model.ProjectEntity{
				Name:        payload.Name,
				Description: payload.Description,
				Status:      status,
			},
		}
		if err := s.ProjectRepository.Create(ctx, modelProject).Error; err != nil {
			return err
		}

		return nil
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"message": "success create!",
		"data":    modelProject,
	}, nil
}

func (s *service) Update(ctx *abstraction.Context, payload *dto.ProjectUpdateRequest) (map[string]interface{}, error) {
	var projectData *model.ProjectEntityModel
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		data, err := s.ProjectRepository.FindById(ctx, payload.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("project not found")
			}
			return err
		}

		if payload.Name != nil {
			data.Name = *payload.Name
		}
		if payload.Description != nil {
			data.Description = payload.Description
		}
		if payload.Status != nil {
			data.Status = *payload.Status
		}

		data.Context = ctx
		if err := s.ProjectRepository.Update(ctx, data).Error; err != nil {
			return err
		}
		projectData = data

		return nil
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"message": "success update!",
		"data":    projectData,
	}, nil
}

func (s *service) Delete(ctx *abstraction.Context, payload *dto.ProjectDeleteByIDRequest) (map[string]interface{}, error) {
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		_, err := s.ProjectRepository.FindById(ctx, payload.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("project not found")
			}
			return err
		}

		// Deleting a project takes its task rows with it.
		if err := s.ProjectTaskRepository.DeleteByProjectId(ctx, payload.ID).Error; err != nil {
			return err
		}
		if err := s.ProjectRepository.DeleteById(ctx, payload.ID).Error; err != nil {
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

// defaultStatus reads the default_project_status configuration entry, falling
// back to DRAFT when it is absent or holds an unknown status.
func (s *service) defaultStatus(ctx *abstraction.Context) string {
	entry, err := s.ConfigurationRepository.FindByKey(ctx, constant.CONFIG_KEY_DEFAULT_PROJECT_STATUS)
	if err != nil || entry == nil {
		return constant.PROJECT_STATUS_DRAFT
	}
	if !general.StringInSlice(entry.Value, constant.PROJECT_STATUSES) {
		return constant.PROJECT_STATUS_DRAFT
	}
	return entry.Value
}
