package repository

import (
	"taskestimate/internal/abstraction"
	"taskestimate/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Configuration interface {
	FindByKey(ctx *abstraction.Context, key string) (*model.ConfigurationEntityModel, error)
	Find(ctx *abstraction.Context) (data []*model.ConfigurationEntityModel, err error)
	Upsert(ctx *abstraction.Context, data *model.ConfigurationEntityModel) *gorm.DB
}

type configuration struct {
	abstraction.Repository
}

func NewConfiguration(db *gorm.DB) *configuration {
	return &configuration{
		Repository: abstraction.Repository{
			Db: db,
		},
	}
}

func (r *configuration) FindByKey(ctx *abstraction.Context, key string) (*model.ConfigurationEntityModel, error) {
	conn := r.CheckTrx(ctx)

	var data model.ConfigurationEntityModel
	err := conn.
		Where("config_key = ?", key).
		First(&data).
		Error
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *configuration) Find(ctx *abstraction.Context) (data []*model.ConfigurationEntityModel, err error) {
	err = r.CheckTrx(ctx).
		Order("config_key asc").
		Find(&data).
		Error
	return
}

// Upsert applies last-write-wins per key.
func (r *configuration) Upsert(ctx *abstraction.Context, data *model.ConfigurationEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "config_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"config_value", "updated_at"}),
		}).
		Create(data)
}
