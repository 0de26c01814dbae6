package abstraction

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Context carries the echo request context plus the transaction opened by
// trxmanager, if any. Repositories pick the transaction up via CheckTrx.
type Context struct {
	echo.Context

	Trx *gorm.DB
}
