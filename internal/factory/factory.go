package factory

import (
	"taskestimate/internal/config"
	"taskestimate/internal/estimation"
	"taskestimate/internal/repository"
	"taskestimate/pkg/database"

	"gorm.io/gorm"
)

type Factory struct {
	Db *gorm.DB

	EstimationEngine estimation.Engine

	Repository_initiated
}

type Repository_initiated struct {
	TaskTypeRepository      repository.TaskType
	ProjectRepository       repository.Project
	ProjectTaskRepository   repository.ProjectTask
	ConfigurationRepository repository.Configuration
}

func NewFactory() *Factory {
	f := &Factory{}
	f.SetupDb()
	f.SetupRepository()
	f.SetupEngine()
	return f
}

// NewFactoryWithDb builds a factory around an injected connection, so tests
// can run against an in-memory store.
func NewFactoryWithDb(db *gorm.DB) *Factory {
	f := &Factory{}
	f.Db = db
	f.SetupRepository()
	f.SetupEngine()
	return f
}

func (f *Factory) SetupDb() {
	db, err := database.Connection(config.Get().DB.DbDriver)
	if err != nil {
		panic("Failed setup db, connection is undefined")
	}
	f.Db = db
}

func (f *Factory) SetupRepository() {
	if f.Db == nil {
		panic("Failed setup repository, db is undefined")
	}

	f.TaskTypeRepository = repository.NewTaskType(f.Db)
	f.ProjectRepository = repository.NewProject(f.Db)
	f.ProjectTaskRepository = repository.NewProjectTask(f.Db)
	f.ConfigurationRepository = repository.NewConfiguration(f.Db)
}

func (f *Factory) SetupEngine() {
	f.EstimationEngine = estimation.NewEngine(f.ProjectRepository, f.ProjectTaskRepository)
}
