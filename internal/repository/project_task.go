package repository

import (
	"taskestimate/internal/abstraction"
	"taskestimate/internal/model"

	"gorm.io/gorm"
)

type ProjectTask interface {
	FindById(ctx *abstraction.Context, id int) (*model.ProjectTaskEntityModel, error)
	FindByProjectId(ctx *abstraction.Context, projectId int) (data []*model.ProjectTaskEntityModel, err error)
	FindByProjectIdAndTaskTypeId(ctx *abstraction.Context, projectId, taskTypeId int) (*model.ProjectTaskEntityModel, error)
	FindByTaskTypeId(ctx *abstraction.Context, taskTypeId int) (data []*model.ProjectTaskEntityModel, err error)
	CountByTaskTypeId(ctx *abstraction.Context, taskTypeId int) (data *int, err error)
	Create(ctx *abstraction.Context, data *model.ProjectTaskEntityModel) *gorm.DB
	Update(ctx *abstraction.Context, data *model.ProjectTaskEntityModel) *gorm.DB
	DeleteById(ctx *abstraction.Context, id int) *gorm.DB
	DeleteByProjectId(ctx *abstraction.Context, projectId int) *gorm.DB
}

type project_task struct {
	abstraction.Repository
}

func NewProjectTask(db *gorm.DB) *project_task {
	return &project_task{
		Repository: abstraction.Repository{
			Db: db,
		},
	}
}

func (r *project_task) FindById(ctx *abstraction.Context, id int) (*model.ProjectTaskEntityModel, error) {
	conn := r.CheckTrx(ctx)

	var data model.ProjectTaskEntityModel
	err := conn.
		Where("id = ?", id).
		Preload("TaskType").
		First(&data).
		Error
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *project_task) FindByProjectId(ctx *abstraction.Context, projectId int) (data []*model.ProjectTaskEntityModel, err error) {
	err = r.CheckTrx(ctx).
		Where("project_id = ?", projectId).
		Preload("TaskType").
		Find(&data).
		Error
	return
}

func (r *project_task) FindByProjectIdAndTaskTypeId(ctx *abstraction.Context, projectId, taskTypeId int) (*model.ProjectTaskEntityModel, error) {
	conn := r.CheckTrx(ctx)

	var data model.ProjectTaskEntityModel
	err := conn.
		Where("project_id = ? AND task_type_id = ?", projectId, taskTypeId).
		First(&data).
		Error
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *project_task) FindByTaskTypeId(ctx *abstraction.Context, taskTypeId int) (data []*model.ProjectTaskEntityModel, err error) {
	err = r.CheckTrx(ctx).
		Where("task_type_id = ?", taskTypeId).
		Find(&data).
		Error
	return
}

func (r *project_task) CountByTaskTypeId(ctx *abstraction.Context, taskTypeId int) (data *int, err error) {
	var count model.ProjectTaskCountDataModel
	err = r.CheckTrx(ctx).
		Table("project_task").
		Select("COUNT(*) AS count").
		Where("task_type_id = ?", taskTypeId).
		Find(&count).
		Error
	data = &count.Count
	return
}

func (r *project_task) Create(ctx *abstraction.Context, data *model.ProjectTaskEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Omit("Project", "TaskType").Create(data)
}

// Update saves the full row so override columns can be cleared back to NULL.
func (r *project_task) Update(ctx *abstraction.Context, data *model.ProjectTaskEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Omit("Project", "TaskType").Save(data)
}

func (r *project_task) DeleteById(ctx *abstraction.Context, id int) *gorm.DB {
	return r.CheckTrx(ctx).Where("id = ?", id).Delete(&model.ProjectTaskEntityModel{})
}

func (r *project_task) DeleteByProjectId(ctx *abstraction.Context, projectId int) *gorm.DB {
	return r.CheckTrx(ctx).Where("project_id = ?", projectId).Delete(&model.ProjectTaskEntityModel{})
}
