package abstraction

import (
	"gorm.io/gorm"
)

type Repository struct {
	Db *gorm.DB
}

// CheckTrx ...
func (r *Repository) CheckTrx(ctx *Context) *gorm.DB {
	if ctx.Trx != nil {
		return ctx.Trx
	}
	return r.Db
}
