package database

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type dbSQLite struct {
	Path string
}

func (c *dbSQLite) Init() (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(c.Path), &gorm.Config{})
}
