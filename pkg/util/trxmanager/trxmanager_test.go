package trxmanager

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taskestimate/internal/abstraction"
	"taskestimate/internal/model"
	"taskestimate/pkg/database"
	"taskestimate/pkg/util/apperror"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testPolicy() Policy {
	return Policy{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		Timeout:    time.Second,
	}
}

func newTestDb(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDb, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDb.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestContext(t *testing.T) *abstraction.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return &abstraction.Context{Context: e.NewContext(req, rec)}
}

func countConfigurations(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&model.ConfigurationEntityModel{}).Count(&count).Error; err != nil {
		t.Fatalf("count configurations: %v", err)
	}
	return count
}

func insertConfiguration(ctx *abstraction.Context, key string) error {
	data := &model.ConfigurationEntityModel{
		ConfigurationEntity: model.ConfigurationEntity{
			Key:   key,
			Value: "v",
		},
	}
	return ctx.Trx.Create(data).Error
}

func TestWithTrxCommitsOnSuccess(t *testing.T) {
	db := newTestDb(t)
	ctx := newTestContext(t)

	err := NewWithPolicy(db, testPolicy()).WithTrx(ctx, func(ctx *abstraction.Context) error {
		return insertConfiguration(ctx, "time_unit")
	})
	if err != nil {
		t.Fatalf("WithTrx: %v", err)
	}
	if got := countConfigurations(t, db); got != 1 {
		t.Fatalf("row count after commit: want=1 got=%d", got)
	}
}

func TestWithTrxRollsBackOnError(t *testing.T) {
	db := newTestDb(t)
	ctx := newTestContext(t)

	err := NewWithPolicy(db, testPolicy()).WithTrx(ctx, func(ctx *abstraction.Context) error {
		if err := insertConfiguration(ctx, "time_unit"); err != nil {
			return err
		}
		return apperror.Validation("rejected after write")
	})
	if !apperror.IsValidation(err) {
		t.Fatalf("want validation error, got: %v", err)
	}
	if got := countConfigurations(t, db); got != 0 {
		t.Fatalf("row count after rollback: want=0 got=%d", got)
	}
}

func TestWithTrxRetriesTransientThenSucceeds(t *testing.T) {
	db := newTestDb(t)
	ctx := newTestContext(t)

	attempts := 0
	err := NewWithPolicy(db, testPolicy()).WithTrx(ctx, func(ctx *abstraction.Context) error {
		attempts++
		if attempts < 3 {
			return apperror.Transient(errors.New("simulated deadlock"), "transient conflict")
		}
		return insertConfiguration(ctx, "time_unit")
	})
	if err != nil {
		t.Fatalf("WithTrx: %v", err)
	}
	if attempts != 3 {
		t.Fatalf("attempts: want=3 got=%d", attempts)
	}
	if got := countConfigurations(t, db); got != 1 {
		t.Fatalf("row count: want=1 got=%d", got)
	}
}

func TestWithTrxDoesNotRetryTypedErrors(t *testing.T) {
	db := newTestDb(t)
	ctx := newTestContext(t)

	attempts := 0
	err := NewWithPolicy(db, testPolicy()).WithTrx(ctx, func(ctx *abstraction.Context) error {
		attempts++
		return apperror.Validation("invalid payload")
	})
	if !apperror.IsValidation(err) {
		t.Fatalf("want validation error, got: %v", err)
	}
	if attempts != 1 {
		t.Fatalf("attempts: want=1 got=%d", attempts)
	}
}

func TestWithTrxExhaustsRetriesAndReturnsLastError(t *testing.T) {
	db := newTestDb(t)
	ctx := newTestContext(t)

	policy := testPolicy()
	attempts := 0
	err := NewWithPolicy(db, policy).WithTrx(ctx, func(ctx *abstraction.Context) error {
		attempts++
		return apperror.Transient(errors.New("simulated deadlock"), "transient conflict")
	})
	if !apperror.IsTransient(err) {
		t.Fatalf("want transient error, got: %v", err)
	}
	if want := policy.MaxRetries + 1; attempts != want {
		t.Fatalf("attempts: want=%d got=%d", want, attempts)
	}
	if got := countConfigurations(t, db); got != 0 {
		t.Fatalf("row count after exhaustion: want=0 got=%d", got)
	}
}

func TestWithTrxJoinsAmbientTransaction(t *testing.T) {
	db := newTestDb(t)
	ctx := newTestContext(t)

	trx := db.Begin()
	if trx.Error != nil {
		t.Fatalf("begin: %v", trx.Error)
	}
	defer trx.Rollback()
	ctx.Trx = trx

	var seen *gorm.DB
	err := NewWithPolicy(db, testPolicy()).WithTrx(ctx, func(inner *abstraction.Context) error {
		seen = inner.Trx
		return nil
	})
	if err != nil {
		t.Fatalf("WithTrx: %v", err)
	}
	if seen != trx {
		t.Fatalf("nested unit did not join the ambient transaction")
	}
}

func TestIsRetryableClassification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"transient kind", apperror.Transient(errors.New("x"), "conflict"), true},
		{"validation kind", apperror.Validation("bad"), false},
		{"not found kind", apperror.NotFound("missing"), false},
		{"conflict kind", apperror.Conflict("duplicate"), false},
		{"mysql deadlock", &mysqldriver.MySQLError{Number: 1213, Message: "Deadlock found"}, true},
		{"mysql lock wait timeout", &mysqldriver.MySQLError{Number: 1205, Message: "Lock wait timeout exceeded"}, true},
		{"mysql duplicate entry", &mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry"}, false},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"sqlite busy message", errors.New("database is locked"), true},
		{"serialization failure message", errors.New("ERROR: could not serialize access due to concurrent update"), true},
		{"plain error", errors.New("boom"), false},
	}
	for _, tc := range cases {
		if got := IsRetryable(tc.err); got != tc.want {
			t.Fatalf("%s: IsRetryable=%v want=%v", tc.name, got, tc.want)
		}
	}
}
