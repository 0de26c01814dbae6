package trxmanager

import (
	"context"
	"errors"
	"strings"
	"time"

	"taskestimate/internal/abstraction"
	"taskestimate/internal/config"
	"taskestimate/pkg/util/apperror"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	mysqlErrLockWaitTimeout = 1205
	mysqlErrDeadlock        = 1213
)

// Policy bounds a unit of work: how many times a transient conflict is
// retried, the backoff base, and the per-attempt transaction timeout.
type Policy struct {
	MaxRetries int
	BaseDelay  time.Duration
	Timeout    time.Duration
}

func DefaultPolicy() Policy {
	cfg := config.Get().Trx
	return Policy{
		MaxRetries: cfg.MaxRetries,
		BaseDelay:  time.Duration(cfg.BaseDelayMs) * time.Millisecond,
		Timeout:    time.Duration(cfg.TimeoutSeconds) * time.Second,
	}
}

type trxManager struct {
	db     *gorm.DB
	policy Policy
}

func New(db *gorm.DB) *trxManager {
	return NewWithPolicy(db, DefaultPolicy())
}

func NewWithPolicy(db *gorm.DB, policy Policy) *trxManager {
	return &trxManager{
		db:     db,
		policy: policy,
	}
}

// WithTrx executes fn inside a transaction. The caller observes either full
// commit or full rollback. Transient conflicts re-execute the whole fn with
// exponential backoff; every other error aborts immediately.
func (g *trxManager) WithTrx(ctx *abstraction.Context, fn func(ctx *abstraction.Context) error) error {
	if ctx.Trx != nil {
		return fn(ctx)
	}

	var err error
	for attempt := 1; ; attempt++ {
		err = g.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !IsRetryable(err) || attempt > g.policy.MaxRetries {
			return err
		}
		delay := g.policy.BaseDelay * (1 << (attempt - 1))
		logrus.Warnf("transaction attempt %d failed, retrying in %s: %s", attempt, delay, err.Error())
		time.Sleep(delay)
	}
}

func (g *trxManager) runOnce(ctx *abstraction.Context, fn func(ctx *abstraction.Context) error) error {
	reqCtx := context.Background()
	if ctx.Request() != nil {
		reqCtx = ctx.Request().Context()
	}
	timeoutCtx, cancel := context.WithTimeout(reqCtx, g.policy.Timeout)
	defer cancel()

	trx := g.db.WithContext(timeoutCtx).Begin()
	if trx.Error != nil {
		return apperror.Transient(trx.Error, "failed to begin transaction")
	}

	trxCtx := &abstraction.Context{
		Context: ctx.Context,
		Trx:     trx,
	}

	defer func() {
		if r := recover(); r != nil {
			trx.Rollback()
			panic(r)
		}
	}()

	if err := fn(trxCtx); err != nil {
		trx.Rollback()
		return err
	}

	if err := trx.Commit().Error; err != nil {
		trx.Rollback()
		return apperror.Transient(err, "failed to commit transaction")
	}
	return nil
}

// IsRetryable reports whether err is a transient storage conflict. Typed
// application errors are never retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	switch apperror.KindOf(err) {
	case apperror.KindTransient:
		return true
	case apperror.KindValidation, apperror.KindNotFound, apperror.KindConflict:
		return false
	}
	var mysqlErr *mysqldriver.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlErrLockWaitTimeout || mysqlErr.Number == mysqlErrDeadlock
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "deadlock") ||
		strings.Contains(message, "database is locked") ||
		strings.Contains(message, "database table is locked") ||
		strings.Contains(message, "could not serialize")
}
