package estimate

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"taskestimate/internal/abstraction"
	"taskestimate/internal/dto"
	"taskestimate/internal/estimation"
	"taskestimate/internal/factory"
	"taskestimate/internal/model"
	"taskestimate/internal/repository"
	"taskestimate/pkg/util/apperror"
	"taskestimate/pkg/util/general"
	"taskestimate/pkg/util/trxmanager"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type Service interface {
	Calculate(ctx *abstraction.Context, payload *dto.EstimateCalculateRequest) (map[string]interface{}, error)
	Recalculate(ctx *abstraction.Context, payload *dto.EstimateRecalculateRequest) (map[string]interface{}, error)
	Export(ctx *abstraction.Context, payload *dto.EstimateExportRequest) (string, *bytes.Buffer, string, error)
}

type service struct {
	ProjectRepository repository.Project

	Engine estimation.Engine

	DB *gorm.DB
}

func NewService(f *factory.Factory) Service {
	return &service{
		ProjectRepository: f.ProjectRepository,

		Engine: f.EstimationEngine,

		DB: f.Db,
	}
}

func (s *service) Calculate(ctx *abstraction.Context, payload *dto.EstimateCalculateRequest) (map[string]interface{}, error) {
	var result *model.Estimate
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		var err error
		result, err = s.Engine.CalculateEstimate(ctx, payload.ProjectId)
		return err
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"data": result,
	}, nil
}

func (s *service) Recalculate(ctx *abstraction.Context, payload *dto.EstimateRecalculateRequest) (map[string]interface{}, error) {
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		return s.Engine.Recalculate(ctx, payload.ProjectId)
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"message": "success recalculate!",
	}, nil
}

func (s *service) Export(ctx *abstraction.Context, payload *dto.EstimateExportRequest) (string, *bytes.Buffer, string, error) {
	var (
		projectData *model.ProjectEntityModel
		result      *model.Estimate
	)
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		var err error
		projectData, err = s.ProjectRepository.FindById(ctx, payload.ProjectId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("project not found")
			}
			return err
		}
		result, err = s.Engine.CalculateEstimate(ctx, payload.ProjectId)
		return err
	}); err != nil {
		return "", nil, "", err
	}

	reportDate := time.Now().Format("2006-01-02")

	if payload.Format == "pdf" {
		pdf := gofpdf.New("L", "mm", "A4", "")
		pdf.SetMargins(10, 10, 10)
		pdf.AddPage()

		pdf.SetFont("Arial", "B", 16)
		pdf.Cell(0, 10, fmt.Sprintf("Estimate - %s (%s)", projectData.Name, reportDate))
		pdf.Ln(12)
		pdf.SetFont("Arial", "B", 10)
		header := []string{
			"No", "Task Type", "Quantity", "Min Hours", "Max Hours", "Subtotal Min", "Subtotal Max",
		}
		colWidths := []float64{
			12, 95, 25, 28, 28, 44, 44,
		}
		xStart := pdf.GetX()
		yStart := pdf.GetY()
		headerHeight := 8.0

		for i, str := range header {
			pdf.Rect(xStart, yStart, colWidths[i], headerHeight, "D")
			pdf.MultiCell(colWidths[i], 5, str, "", "C", false)
			xStart += colWidths[i]
			pdf.SetXY(xStart, yStart)
		}
		pdf.Ln(headerHeight)
		pdf.SetFont("Arial", "", 9)

		for i, v := range result.TaskBreakdown {
			row := []string{
				fmt.Sprintf("%d", i+1),
				v.TaskTypeName,
				fmt.Sprintf("%d", v.Quantity),
				formatHours(v.MinHours),
				formatHours(v.MaxHours),
				formatHours(v.SubtotalMinHours),
				formatHours(v.SubtotalMaxHours),
			}

			x := pdf.GetX()
			y := pdf.GetY()
			for j, txt := range row {
				pdf.Rect(x, y, colWidths[j], 6, "D")
				pdf.MultiCell(colWidths[j], 6, txt, "", "", false)
				x += colWidths[j]
				pdf.SetXY(x, y)
			}
			pdf.Ln(6)
		}

		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(0, 10, fmt.Sprintf(
			"Total: %s - %s hours",
			formatHours(result.TotalMinHours),
			formatHours(result.TotalMaxHours),
		))

		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			return "", nil, "", err
		}

		filename := fmt.Sprintf("(%s) Estimate - %s.pdf", strings.ReplaceAll(reportDate, "-", ""), projectData.Name)
		return filename, &buf, "pdf", nil
	}

	f := excelize.NewFile()
	sheet := general.TruncateSheetName("Estimate")
	index, err := f.NewSheet(sheet)
	if err != nil {
		return "", nil, "", err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)
	f.SetCellValue(sheet, "A1", "No")
	f.SetCellValue(sheet, "B1", "Task Type")
	f.SetCellValue(sheet, "C1", "Quantity")
	f.SetCellValue(sheet, "D1", "Min Hours")
	f.SetCellValue(sheet, "E1", "Max Hours")
	f.SetCellValue(sheet, "F1", "Subtotal Min")
	f.SetCellValue(sheet, "G1", "Subtotal Max")
	for i, v := range result.TaskBreakdown {
		rowIndex := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowIndex), i+1)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowIndex), v.TaskTypeName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowIndex), v.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowIndex), v.MinHours)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowIndex), v.MaxHours)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowIndex), v.SubtotalMinHours)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", rowIndex), v.SubtotalMaxHours)
	}
	totalRow := len(result.TaskBreakdown) + 2
	f.SetCellValue(sheet, fmt.Sprintf("B%d", totalRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("F%d", totalRow), result.TotalMinHours)
	f.SetCellValue(sheet, fmt.Sprintf("G%d", totalRow), result.TotalMaxHours)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return "", nil, "", err
	}
	filename := fmt.Sprintf("(%s) Estimate - %s.xlsx", strings.ReplaceAll(reportDate, "-", ""), projectData.Name)
	return filename, &buf, "excel", nil
}

func formatHours(value float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", value), "0"), ".")
}
