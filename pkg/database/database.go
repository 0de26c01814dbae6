package database

import (
	"errors"
	"fmt"
	"strings"

	"taskestimate/internal/config"
	"taskestimate/internal/model"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Db interface {
	Init() (*gorm.DB, error)
}

type db struct {
	Host string
	User string
	Pass string
	Port string
	Name string
	Ssl  string
	Tz   string
}

var dbConnections map[string]*gorm.DB

func Init() {

	dbConfigurations := map[string]Db{
		"MYSQL": &dbMySQL{
			db: db{
				Host: config.Get().DB.DbHost,
				User: config.Get().DB.DbUser,
				Pass: config.Get().DB.DbPass,
				Port: config.Get().DB.DbPort,
				Name: config.Get().DB.DbName,
				Ssl:  config.Get().DB.DbSsl,
				Tz:   config.Get().DB.DbTz,
			},
		},
		"SQLITE": &dbSQLite{
			Path: config.Get().DB.DbPath,
		},
	}

	dbConnections = make(map[string]*gorm.DB)
	for k, v := range dbConfigurations {
		db, err := v.Init()
		if err != nil {
			logrus.Error(fmt.Sprintf("Failed to connect to database %s", k))
			continue
		}
		dbConnections[k] = db
		logrus.Info(fmt.Sprintf("Successfully connected to %s", k))
	}
}

func Connection(name string) (*gorm.DB, error) {
	if dbConnections[strings.ToUpper(name)] == nil {
		return nil, errors.New("Connection is undefined")
	}
	return dbConnections[strings.ToUpper(name)], nil
}

func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&model.TaskTypeEntityModel{},
		&model.ProjectEntityModel{},
		&model.ProjectTaskEntityModel{},
		&model.ConfigurationEntityModel{},
	)
}
