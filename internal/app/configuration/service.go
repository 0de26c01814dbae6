package configuration

import (
	"net/http"

	"taskestimate/internal/abstraction"
	"taskestimate/internal/dto"
	"taskestimate/internal/factory"
	"taskestimate/internal/model"
	"taskestimate/internal/repository"
	"taskestimate/pkg/util/response"
	"taskestimate/pkg/util/trxmanager"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Service interface {
	Find(ctx *abstraction.Context) (map[string]interface{}, error)
	Set(ctx *abstraction.Context, payload *dto.ConfigurationSetRequest) (map[string]interface{}, error)
}

type service struct {
	ConfigurationRepository repository.Configuration

	DB *gorm.DB
}

func NewService(f *factory.Factory) Service {
	return &service{
		ConfigurationRepository: f.ConfigurationRepository,

		DB: f.Db,
	}
}

func (s *service) Find(ctx *abstraction.Context) (map[string]interface{}, error) {
	data, err := s.ConfigurationRepository.Find(ctx)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	return map[string]interface{}{
		"data": data,
	}, nil
}

func (s *service) Set(ctx *abstraction.Context, payload *dto.ConfigurationSetRequest) (map[string]interface{}, error) {
	var modelConfiguration *model.ConfigurationEntityModel
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		modelConfiguration = &model.ConfigurationEntityModel{
			Context: ctx,
			ConfigurationEntity: model.ConfigurationEntity{
				Key:   payload.Key,
				Value: payload.Value,
			},
		}
		if err := s.ConfigurationRepository.Upsert(ctx, modelConfiguration).Error; err != nil {
			return err
		}

		return nil
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"message": "success set!",
		"data":    modelConfiguration,
	}, nil
}
