package estimation

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"taskestimate/internal/abstraction"
	"taskestimate/internal/model"
	"taskestimate/internal/repository"
	"taskestimate/pkg/database"
	"taskestimate/pkg/util/apperror"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

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

func newTestEngine(db *gorm.DB) Engine {
	return NewEngine(repository.NewProject(db), repository.NewProjectTask(db))
}

func seedTaskType(t *testing.T, db *gorm.DB, name string, minHours, maxHours float64, category *string) *model.TaskTypeEntityModel {
	t.Helper()
	data := &model.TaskTypeEntityModel{
		TaskTypeEntity: model.TaskTypeEntity{
			Name:            name,
			DefaultMinHours: minHours,
			DefaultMaxHours: maxHours,
			Category:        category,
			IsActive:        true,
		},
	}
	if err := db.Create(data).Error; err != nil {
		t.Fatalf("seed task type %s: %v", name, err)
	}
	return data
}

func seedProject(t *testing.T, db *gorm.DB, name string) *model.ProjectEntityModel {
	t.Helper()
	data := &model.ProjectEntityModel{
		ProjectEntity: model.ProjectEntity{
			Name:   name,
			Status: "DRAFT",
		},
	}
	if err := db.Create(data).Error; err != nil {
		t.Fatalf("seed project %s: %v", name, err)
	}
	return data
}

func seedProjectTask(t *testing.T, db *gorm.DB, projectId, taskTypeId, quantity int, customMin, customMax *float64) *model.ProjectTaskEntityModel {
	t.Helper()
	data := &model.ProjectTaskEntityModel{
		ProjectTaskEntity: model.ProjectTaskEntity{
			ProjectId:      projectId,
			TaskTypeId:     taskTypeId,
			Quantity:       quantity,
			CustomMinHours: customMin,
			CustomMaxHours: customMax,
		},
	}
	if err := db.Create(data).Error; err != nil {
		t.Fatalf("seed project task: %v", err)
	}
	return data
}

func loadProject(t *testing.T, db *gorm.DB, id int) *model.ProjectEntityModel {
	t.Helper()
	var data model.ProjectEntityModel
	if err := db.Where("id = ?", id).First(&data).Error; err != nil {
		t.Fatalf("load project %d: %v", id, err)
	}
	return &data
}

func floatPtr(v float64) *float64 {
	return &v
}

func stringPtr(v string) *string {
	return &v
}

func TestCalculateEstimateDemoScenario(t *testing.T) {
	db := newTestDb(t)
	ctx := newTestContext(t)
	eng := newTestEngine(db)

	screen := seedTaskType(t, db, "Large Complex Web Screen", 8, 16, nil)
	endpoint := seedTaskType(t, db, "API Endpoint", 2, 4, nil)
	demo := seedProject(t, db, "Demo")
	seedProjectTask(t, db, demo.ID, screen.ID, 5, nil, nil)
	seedProjectTask(t, db, demo.ID, endpoint.ID, 12, nil, nil)

	result, err := eng.CalculateEstimate(ctx, demo.ID)
	if err != nil {
		t.Fatalf("CalculateEstimate: %v", err)
	}
	if result.TotalMinHours != 64 {
		t.Fatalf("total min hours: want=64 got=%v", result.TotalMinHours)
	}
	if result.TotalMaxHours != 128 {
		t.Fatalf("total max hours: want=128 got=%v", result.TotalMaxHours)
	}
	if len(result.TaskBreakdown) != 2 {
		t.Fatalf("breakdown length: want=2 got=%d", len(result.TaskBreakdown))
	}
	// No categories, so ordering falls back to name.
	if result.TaskBreakdown[0].TaskTypeName != "API Endpoint" {
		t.Fatalf("breakdown order: want=%q first got=%q", "API Endpoint", result.TaskBreakdown[0].TaskTypeName)
	}
	if result.TaskBreakdown[0].SubtotalMinHours != 24 || result.TaskBreakdown[0].SubtotalMaxHours != 48 {
		t.Fatalf("endpoint subtotals: want=(24,48) got=(%v,%v)", result.TaskBreakdown[0].SubtotalMinHours, result.TaskBreakdown[0].SubtotalMaxHours)
	}

	stored := loadProject(t, db, demo.ID)
	if stored.TotalMinHours != 64 || stored.TotalMaxHours != 128 {
		t.Fatalf("persisted totals: want=(64,128) got=(%v,%v)", stored.TotalMinHours, stored.TotalMaxHours)
	}
}

func TestCalculateEstimateEmptyProject(t *testing.T) {
	db := newTestDb(t)
	ctx := newTestContext(t)
	eng := newTestEngine(db)

	empty := seedProject(t, db, "Empty")

	result, err := eng.CalculateEstimate(ctx, empty.ID)
	if err != nil {
		t.Fatalf("CalculateEstimate: %v", err)
	}
	if result.TotalMinHours != 0 || result.TotalMaxHours != 0 {
		t.Fatalf("totals: want=(0,0) got=(%v,%v)", result.TotalMinHours, result.TotalMaxHours)
	}
	if len(result.TaskBreakdown) != 0 {
		t.Fatalf("breakdown length: want=0 got=%d", len(result.TaskBreakdown))
	}
}

func TestCalculateEstimatePreservesFractionalHours(t *testing.T) {
	db := newTestDb(t)
	ctx := newTestContext(t)
	eng := newTestEngine(db)

	review := seedTaskType(t, db, "Code Review", 1.5, 2.5, nil)
	p := seedProject(t, db, "Fractions")
	seedProjectTask(t, db, p.ID, review.ID, 3, nil, nil)

	result, err := eng.CalculateEstimate(ctx, p.ID)
	if err != nil {
		t.Fatalf("CalculateEstimate: %v", err)
	}
	if result.TotalMinHours != 4.5 {
		t.Fatalf("total min hours: want=4.5 got=%v", result.TotalMinHours)
	}
	if result.TotalMaxHours != 7.5 {
		t.Fatalf("total max hours: want=7.5 got=%v", result.TotalMaxHours)
	}
}

func TestCalculateEstimateOverridePrecedence(t *testing.T) {
	db := newTestDb(t)
	ctx := newTestContext(t)
	eng := newTestEngine(db)

	form := seedTaskType(t, db, "Form", 2, 4, nil)
	p := seedProject(t, db, "Overrides")
	seedProjectTask(t, db, p.ID, form.ID, 2, floatPtr(3), floatPtr(5))

	result, err := eng.CalculateEstimate(ctx, p.ID)
	if err != nil {
		t.Fatalf("CalculateEstimate: %v", err)
	}
	if result.TaskBreakdown[0].MinHours != 3 || result.TaskBreakdown[0].MaxHours != 5 {
		t.Fatalf("effective hours: want=(3,5) got=(%v,%v)", result.TaskBreakdown[0].MinHours, result.TaskBreakdown[0].MaxHours)
	}
	if result.TotalMinHours != 6 || result.TotalMaxHours != 10 {
		t.Fatalf("totals: want=(6,10) got=(%v,%v)", result.TotalMinHours, result.TotalMaxHours)
	}
}

func TestCalculateEstimateBreakdownOrderingIsStable(t *testing.T) {
	db := newTestDb(t)
	ctx := newTestContext(t)
	eng := newTestEngine(db)

	backendApi := seedTaskType(t, db, "API Endpoint", 2, 4, stringPtr("backend"))
	backendJob := seedTaskType(t, db, "Background Job", 3, 5, stringPtr("backend"))
	frontendScreen := seedTaskType(t, db, "Web Screen", 4, 8, stringPtr("frontend"))
	p := seedProject(t, db, "Ordered")
	// Insert out of the expected order on purpose.
	seedProjectTask(t, db, p.ID, frontendScreen.ID, 1, nil, nil)
	seedProjectTask(t, db, p.ID, backendJob.ID, 1, nil, nil)
	seedProjectTask(t, db, p.ID, backendApi.ID, 1, nil, nil)

	first, err := eng.CalculateEstimate(ctx, p.ID)
	if err != nil {
		t.Fatalf("first CalculateEstimate: %v", err)
	}
	second, err := eng.CalculateEstimate(ctx, p.ID)
	if err != nil {
		t.Fatalf("second CalculateEstimate: %v", err)
	}

	wantOrder := []string{"API Endpoint", "Background Job", "Web Screen"}
	for i, name := range wantOrder {
		if first.TaskBreakdown[i].TaskTypeName != name {
			t.Fatalf("breakdown order at %d: want=%q got=%q", i, name, first.TaskBreakdown[i].TaskTypeName)
		}
	}
	if !reflect.DeepEqual(first.TaskBreakdown, second.TaskBreakdown) {
		t.Fatalf("breakdown not identical across calls: first=%+v second=%+v", first.TaskBreakdown, second.TaskBreakdown)
	}
	if first.TotalMinHours != second.TotalMinHours || first.TotalMaxHours != second.TotalMaxHours {
		t.Fatalf("totals differ across calls")
	}
}

func TestRecalculateIsIdempotent(t *testing.T) {
	db := newTestDb(t)
	ctx := newTestContext(t)
	eng := newTestEngine(db)

	endpoint := seedTaskType(t, db, "API Endpoint", 2, 4, nil)
	p := seedProject(t, db, "Idempotent")
	seedProjectTask(t, db, p.ID, endpoint.ID, 3, nil, nil)

	if err := eng.Recalculate(ctx, p.ID); err != nil {
		t.Fatalf("first Recalculate: %v", err)
	}
	firstStored := loadProject(t, db, p.ID)
	if err := eng.Recalculate(ctx, p.ID); err != nil {
		t.Fatalf("second Recalculate: %v", err)
	}
	secondStored := loadProject(t, db, p.ID)

	if firstStored.TotalMinHours != secondStored.TotalMinHours || firstStored.TotalMaxHours != secondStored.TotalMaxHours {
		t.Fatalf("stored totals changed without a mutation: first=(%v,%v) second=(%v,%v)",
			firstStored.TotalMinHours, firstStored.TotalMaxHours, secondStored.TotalMinHours, secondStored.TotalMaxHours)
	}
	if secondStored.TotalMinHours != 6 || secondStored.TotalMaxHours != 12 {
		t.Fatalf("stored totals: want=(6,12) got=(%v,%v)", secondStored.TotalMinHours, secondStored.TotalMaxHours)
	}
}

func TestCalculateEstimateProjectNotFound(t *testing.T) {
	db := newTestDb(t)
	ctx := newTestContext(t)
	eng := newTestEngine(db)

	_, err := eng.CalculateEstimate(ctx, 9999)
	if !apperror.IsNotFound(err) {
		t.Fatalf("want not found error, got: %v", err)
	}
}
