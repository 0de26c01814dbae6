package estimate

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskestimate/internal/abstraction"
	"taskestimate/internal/dto"
	"taskestimate/internal/factory"
	"taskestimate/internal/model"
	"taskestimate/pkg/database"
	"taskestimate/pkg/util/apperror"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestFactory(t *testing.T) *factory.Factory {
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
	return factory.NewFactoryWithDb(db)
}

func newTestContext(t *testing.T) *abstraction.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return &abstraction.Context{Context: e.NewContext(req, rec)}
}

func seedEstimateFixture(t *testing.T, db *gorm.DB) *model.ProjectEntityModel {
	t.Helper()
	taskType := &model.TaskTypeEntityModel{
		TaskTypeEntity: model.TaskTypeEntity{
			Name:            "API Endpoint",
			DefaultMinHours: 2,
			DefaultMaxHours: 4,
			IsActive:        true,
		},
	}
	if err := db.Create(taskType).Error; err != nil {
		t.Fatalf("seed task type: %v", err)
	}
	p := &model.ProjectEntityModel{
		ProjectEntity: model.ProjectEntity{
			Name:   "Demo",
			Status: "DRAFT",
		},
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}
	row := &model.ProjectTaskEntityModel{
		ProjectTaskEntity: model.ProjectTaskEntity{
			ProjectId:  p.ID,
			TaskTypeId: taskType.ID,
			Quantity:   3,
		},
	}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("seed project task: %v", err)
	}
	return p
}

func TestCalculateReturnsEstimate(t *testing.T) {
	f := newTestFactory(t)
	ctx := newTestContext(t)
	svc := NewService(f)

	p := seedEstimateFixture(t, f.Db)

	result, err := svc.Calculate(ctx, &dto.EstimateCalculateRequest{ProjectId: p.ID})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	estimate := result["data"].(*model.Estimate)
	if estimate.TotalMinHours != 6 || estimate.TotalMaxHours != 12 {
		t.Fatalf("totals: want=(6,12) got=(%v,%v)", estimate.TotalMinHours, estimate.TotalMaxHours)
	}
	if len(estimate.TaskBreakdown) != 1 {
		t.Fatalf("breakdown length: want=1 got=%d", len(estimate.TaskBreakdown))
	}
}

func TestCalculateProjectNotFound(t *testing.T) {
	f := newTestFactory(t)
	ctx := newTestContext(t)
	svc := NewService(f)

	_, err := svc.Calculate(ctx, &dto.EstimateCalculateRequest{ProjectId: 9999})
	if !apperror.IsNotFound(err) {
		t.Fatalf("want not found error, got: %v", err)
	}
}

func TestRecalculatePersistsTotals(t *testing.T) {
	f := newTestFactory(t)
	ctx := newTestContext(t)
	svc := NewService(f)

	p := seedEstimateFixture(t, f.Db)

	if _, err := svc.Recalculate(ctx, &dto.EstimateRecalculateRequest{ProjectId: p.ID}); err != nil {
		t.Fatalf("Recalculate: %v", err)
	}

	var stored model.ProjectEntityModel
	if err := f.Db.Where("id = ?", p.ID).First(&stored).Error; err != nil {
		t.Fatalf("reload project: %v", err)
	}
	if stored.TotalMinHours != 6 || stored.TotalMaxHours != 12 {
		t.Fatalf("persisted totals: want=(6,12) got=(%v,%v)", stored.TotalMinHours, stored.TotalMaxHours)
	}
}

func TestExportPdf(t *testing.T) {
	f := newTestFactory(t)
	ctx := newTestContext(t)
	svc := NewService(f)

	p := seedEstimateFixture(t, f.Db)

	filename, buf, format, err := svc.Export(ctx, &dto.EstimateExportRequest{ProjectId: p.ID, Format: "pdf"})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if format != "pdf" {
		t.Fatalf("format: want=pdf got=%s", format)
	}
	if !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("filename: want .pdf suffix got=%s", filename)
	}
	if buf == nil || buf.Len() == 0 {
		t.Fatalf("empty pdf output")
	}
}

func TestExportExcel(t *testing.T) {
	f := newTestFactory(t)
	ctx := newTestContext(t)
	svc := NewService(f)

	p := seedEstimateFixture(t, f.Db)

	filename, buf, format, err := svc.Export(ctx, &dto.EstimateExportRequest{ProjectId: p.ID, Format: "excel"})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if format != "excel" {
		t.Fatalf("format: want=excel got=%s", format)
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Fatalf("filename: want .xlsx suffix got=%s", filename)
	}
	if buf == nil || buf.Len() == 0 {
		t.Fatalf("empty excel output")
	}
}

func TestExportProjectNotFound(t *testing.T) {
	f := newTestFactory(t)
	ctx := newTestContext(t)
	svc := NewService(f)

	_, _, _, err := svc.Export(ctx, &dto.EstimateExportRequest{ProjectId: 9999, Format: "pdf"})
	if !apperror.IsNotFound(err) {
		t.Fatalf("want not found error, got: %v", err)
	}
}

func TestFormatHoursTrimsTrailingZeros(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{4, "4"},
		{4.5, "4.5"},
		{4.25, "4.25"},
		{0, "0"},
	}
	for _, tc := range cases {
		if got := formatHours(tc.in); got != tc.want {
			t.Fatalf("formatHours(%v): want=%s got=%s", tc.in, tc.want, got)
		}
	}
}
