package repository

import (
	"taskestimate/internal/abstraction"
	"taskestimate/internal/model"
	"taskestimate/pkg/util/general"

	"gorm.io/gorm"
)

type Project interface {
	FindById(ctx *abstraction.Context, id int) (*model.ProjectEntityModel, error)
	Find(ctx *abstraction.Context, no_paging bool) (data []*model.ProjectEntityModel, err error)
	Count(ctx *abstraction.Context) (data *int, err error)
	Create(ctx *abstraction.Context, data *model.ProjectEntityModel) *gorm.DB
	Update(ctx *abstraction.Context, data *model.ProjectEntityModel) *gorm.DB
	UpdateTotals(ctx *abstraction.Context, id int, totalMinHours, totalMaxHours float64) *gorm.DB
	DeleteById(ctx *abstraction.Context, id int) *gorm.DB
}

type project struct {
	abstraction.Repository
}

func NewProject(db *gorm.DB) *project {
	return &project{
		Repository: abstraction.Repository{
			Db: db,
		},
	}
}

func (r *project) FindById(ctx *abstraction.Context, id int) (*model.ProjectEntityModel, error) {
	conn := r.CheckTrx(ctx)

	var data model.ProjectEntityModel
	err := conn.
		Where("id = ?", id).
		First(&data).
		Error
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *project) Find(ctx *abstraction.Context, no_paging bool) (data []*model.ProjectEntityModel, err error) {
	limit, offset := general.ProcessLimitOffset(ctx, no_paging)
	order := general.ProcessOrder(ctx)
	err = r.CheckTrx(ctx).
		Order(order).
		Limit(limit).
		Offset(offset).
		Find(&data).
		Error
	return
}

func (r *project) Count(ctx *abstraction.Context) (data *int, err error) {
	var count model.ProjectCountDataModel
	err = r.CheckTrx(ctx).
		Table("project").
		Select("COUNT(*) AS count").
		Find(&count).
		Error
	data = &count.Count
	return
}

func (r *project) Create(ctx *abstraction.Context, data *model.ProjectEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Create(data)
}

// Update persists metadata columns only. The derived totals are owned by
// UpdateTotals and must never travel through this path, or a stale read
// would revert a concurrently recalculated value.
func (r *project) Update(ctx *abstraction.Context, data *model.ProjectEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Omit("TotalMinHours", "TotalMaxHours").Save(data)
}

// UpdateTotals is the single write path for the derived totals columns. Only
// the estimation engine calls it, always inside the mutating transaction.
func (r *project) UpdateTotals(ctx *abstraction.Context, id int, totalMinHours, totalMaxHours float64) *gorm.DB {
	return r.CheckTrx(ctx).
		Model(&model.ProjectEntityModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_min_hours": totalMinHours,
			"total_max_hours": totalMaxHours,
			"updated_at":      general.NowUTC(),
		})
}

func (r *project) DeleteById(ctx *abstraction.Context, id int) *gorm.DB {
	return r.CheckTrx(ctx).Where("id = ?", id).Delete(&model.ProjectEntityModel{})
}
