package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type dbMySQL struct {
	db
}

func (c *dbMySQL) Init() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=%s&tls=%s",
		c.User, c.Pass, c.Host, c.Port, c.Name, c.Tz, c.Ssl,
	)
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}
