package export

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/omarzaki/boqplan/internal/schedule"
)

const (
	sheetSchedule = "Schedule"
	sheetCritical = "Critical Path"
	sheetLinks    = "Logic Links"
	sheetSummary  = "Summary"
)

// WriteXLSX renders the schedule as a four-sheet workbook: the activity
// table, the critical path, the logic links, and the project summary.
func WriteXLSX(s *schedule.Schedule, opts Options, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeScheduleSheet(f, s); err != nil {
		return err
	}
	if err := writeCriticalSheet(f, s); err != nil {
		return err
	}
	if err := writeLinksSheet(f, s); err != nil {
		return err
	}
	if err := writeSummarySheet(f, s, opts); err != nil {
		return err
	}

	// The default sheet is replaced by the schedule sheet.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("building workbook: %w", err)
	}
	idx, err := f.GetSheetIndex(sheetSchedule)
	if err != nil {
		return fmt.Errorf("building workbook: %w", err)
	}
	f.SetActiveSheet(idx)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeScheduleSheet(f *excelize.File, s *schedule.Schedule) error {
	if _, err := f.NewSheet(sheetSchedule); err != nil {
		return err
	}

	header := []interface{}{
		"Code", "Activity", "Duration (days)",
		"Early Start", "Early Finish", "Late Start", "Late Finish",
		"Total Float", "Free Float", "Crew", "Start Date", "Finish Date", "Critical",
	}
	if err := f.SetSheetRow(sheetSchedule, "A1", &header); err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetSchedule, "A1", "M1", headerStyle); err != nil {
		return err
	}

	criticalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#9C0006"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#FFC7CE"}},
	})
	if err != nil {
		return err
	}

	for i, a := range s.Network.ByEarlyStart() {
		rowIdx := i + 2
		crit := "No"
		if a.IsCritical {
			crit = "Yes"
		}
		row := []interface{}{
			a.Code, a.Name, round2(a.Duration),
			round2(a.EarlyStart), round2(a.EarlyFinish),
			round2(a.LateStart), round2(a.LateFinish),
			round2(a.TotalFloat), round2(a.FreeFloat),
			a.CrewSize,
			a.CalendarStart.Format(dateLayout),
			a.CalendarFinish.Format(dateLayout),
			crit,
		}
		cell := fmt.Sprintf("A%d", rowIdx)
		if err := f.SetSheetRow(sheetSchedule, cell, &row); err != nil {
			return err
		}
		if a.IsCritical {
			if err := f.SetCellStyle(sheetSchedule, cell, fmt.Sprintf("M%d", rowIdx), criticalStyle); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(sheetSchedule, "A", "A", 16); err != nil {
		return err
	}
	return f.SetColWidth(sheetSchedule, "B", "B", 34)
}

func writeCriticalSheet(f *excelize.File, s *schedule.Schedule) error {
	if _, err := f.NewSheet(sheetCritical); err != nil {
		return err
	}
	header := []interface{}{"Order", "Code", "Activity", "Duration (days)", "Early Start", "Early Finish"}
	if err := f.SetSheetRow(sheetCritical, "A1", &header); err != nil {
		return err
	}
	for i, a := range s.Network.CriticalPath() {
		row := []interface{}{i + 1, a.Code, a.Name, round2(a.Duration), round2(a.EarlyStart), round2(a.EarlyFinish)}
		if err := f.SetSheetRow(sheetCritical, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheetCritical, "C", "C", 34)
}

func writeLinksSheet(f *excelize.File, s *schedule.Schedule) error {
	if _, err := f.NewSheet(sheetLinks); err != nil {
		return err
	}
	header := []interface{}{"Activity", "Predecessor", "Type", "Lag (days)"}
	if err := f.SetSheetRow(sheetLinks, "A1", &header); err != nil {
		return err
	}
	rowIdx := 2
	for _, a := range s.Network.ByEarlyStart() {
		for _, rel := range a.Predecessors {
			row := []interface{}{a.Code, rel.Activity, string(rel.Type), round2(rel.Lag)}
			if err := f.SetSheetRow(sheetLinks, fmt.Sprintf("A%d", rowIdx), &row); err != nil {
				return err
			}
			rowIdx++
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, s *schedule.Schedule, opts Options) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return err
	}
	summary := s.Network.Summary()
	rows := [][]interface{}{
		{"Project", opts.projectName(s)},
		{"BOQ code", s.BOQCode},
		{"Exported", opts.timestamp().Format(dateLayout)},
		{"Project start", summary.ProjectStart.Format(dateLayout)},
		{"Project finish", summary.ProjectFinish.Format(dateLayout)},
		{"Duration (working days)", round2(summary.DurationDays)},
		{"Duration (weeks)", round2(summary.DurationWeeks)},
		{"Working days per week", summary.WorkingDaysPerWeek},
		{"Shifts", s.Context.Shifts},
		{"Activities", summary.TotalActivities},
		{"Critical activities", summary.CriticalCount},
		{"Critical %", round2(summary.CriticalPercent)},
	}
	for i, row := range rows {
		if err := f.SetSheetRow(sheetSummary, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheetSummary, "A", "A", 26)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
