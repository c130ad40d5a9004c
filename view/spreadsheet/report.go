package spreadsheet

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx/v3"

	"github.com/hospital-mgmt/frontdesk/roster"
)

const (
	ReportSheetNamePatients = "Patients"
	GeneratedTimeFormat     = time.RFC3339
)

var columns = []string{"ID", "Name", "Date of Birth", "Age", "Gender", "Phone", "Email"}

// Report is a spreadsheet export of the dashboard rows.
type Report struct {
	rows          []roster.Row
	generatedTime time.Time
}

func NewReport(rows []roster.Row, generatedTime time.Time) Report {
	return Report{rows: rows, generatedTime: generatedTime}
}

func (r Report) Generate() (*xlsx.File, error) {
	report := xlsx.NewFile()

	sh, err := report.AddSheet(ReportSheetNamePatients)
	if err != nil {
		return nil, err
	}

	components := []func(sh *xlsx.Sheet) error{
		r.addHeader,
		r.addPatients,
	}
	for _, fn := range components {
		if err := fn(sh); err != nil {
			return nil, err
		}
	}

	return report, nil
}

// Save writes the report to path.
func (r Report) Save(path string) error {
	report, err := r.Generate()
	if err != nil {
		return fmt.Errorf("unable to generate report: %w", err)
	}
	if err := report.Save(path); err != nil {
		return fmt.Errorf("unable to save report to %s: %w", path, err)
	}
	return nil
}

func (r Report) addHeader(sh *xlsx.Sheet) error {
	currentRow := sh.AddRow()
	currentRow.AddCell().SetValue("Report Generated")
	currentRow.AddCell().SetValue(r.generatedTime.Format(GeneratedTimeFormat))
	sh.AddRow()

	currentRow = sh.AddRow()
	for _, column := range columns {
		currentRow.AddCell().SetValue(column)
	}
	return nil
}

func (r Report) addPatients(sh *xlsx.Sheet) error {
	for _, row := range r.rows {
		currentRow := sh.AddRow()
		currentRow.AddCell().SetInt64(row.Id)
		currentRow.AddCell().SetValue(row.Name)
		currentRow.AddCell().SetValue(row.DateOfBirth)
		currentRow.AddCell().SetValue(row.Age)
		currentRow.AddCell().SetValue(row.Gender)
		currentRow.AddCell().SetValue(row.Phone)
		currentRow.AddCell().SetValue(row.Email)
	}
	return nil
}
