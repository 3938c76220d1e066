package summary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/summary"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
	"github.com/xuri/excelize/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportSheet     = "Summary"
	// header rows above the table
	exportTableRow = 4
)

var exportColumns = []string{
	"Employee ID",
	"First Name",
	"Last Name",
	"Status",
	"Work Hours",
	"Late Arrival",
	"Early Departure",
	"Unplanned Absence",
	"Remarks",
}

// Export implements summary.SummaryService.
func (s *SummaryServiceImpl) Export(ctx context.Context, req summary.DepartmentDayRequest) (summary.ExportFile, error) {
	if err := req.Validate(); err != nil {
		return summary.ExportFile{}, err
	}
	date := req.Day()

	dept, err := s.departments.GetByID(ctx, req.DepartmentID)
	if err != nil {
		if errors.Is(err, employee.ErrDepartmentNotFound) {
			return summary.ExportFile{}, err
		}
		return summary.ExportFile{}, fmt.Errorf("failed to get department: %w", err)
	}

	rows, err := s.summaries.ListByDepartmentAndDate(ctx, req.DepartmentID, date)
	if err != nil {
		return summary.ExportFile{}, fmt.Errorf("failed to list attendance summaries: %w", err)
	}

	content, err := renderWorkbook(dept.Name, date.Format(validator.DateLayout), rows)
	if err != nil {
		return summary.ExportFile{}, fmt.Errorf("failed to render summary workbook: %w", err)
	}

	slog.Info("attendance summaries exported", "department_id", req.DepartmentID, "date", date.Format(validator.DateLayout), "rows", len(rows))
	return summary.ExportFile{
		Filename:    fmt.Sprintf("attendance_summary_%s_%s.xlsx", req.DepartmentID, date.Format(validator.DateLayout)),
		ContentType: xlsxContentType,
		Content:     content,
	}, nil
}

func renderWorkbook(departmentName, date string, rows []summary.Summary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	if err := f.SetCellValue(exportSheet, "A1", "Attendance Summary"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(exportSheet, "A2", "Department: "+departmentName); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(exportSheet, "A3", "Date: "+date); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(exportColumns))
	for i, c := range exportColumns {
		header[i] = c
	}
	first, _ := excelize.CoordinatesToCellName(1, exportTableRow)
	last, _ := excelize.CoordinatesToCellName(len(exportColumns), exportTableRow)
	if err := f.SetSheetRow(exportSheet, first, &header); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(exportSheet, first, last, headerStyle); err != nil {
		return nil, err
	}

	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, exportTableRow+1+i)
		values := exportRow(r)
		if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(exportSheet, "A", "A", 38); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(exportSheet, "B", "H", 16); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(exportSheet, "I", "I", 30); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportRow(s summary.Summary) []interface{} {
	var firstName, lastName string
	if s.EmployeeFirstName != nil {
		firstName = *s.EmployeeFirstName
	}
	if s.EmployeeLastName != nil {
		lastName = *s.EmployeeLastName
	}
	var hours interface{} = ""
	if s.TotalWorkHours != nil {
		hours = *s.TotalWorkHours
	}
	return []interface{}{
		s.EmployeeID,
		firstName,
		lastName,
		s.Status,
		hours,
		yesNo(s.LateArrival),
		yesNo(s.EarlyDeparture),
		yesNo(s.UnplannedAbsence),
		s.Remarks,
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
