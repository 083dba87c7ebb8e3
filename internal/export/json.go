package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/omarzaki/boqplan/internal/schedule"
)

const dateLayout = "2006-01-02"

// Document is the JSON export shape. Field order is fixed by the struct,
// so serialising a re-hydrated document reproduces the original bytes.
type Document struct {
	ScheduleID     string         `json:"schedule_id"`
	ProjectName    string         `json:"project_name"`
	BOQCode        string         `json:"boq_code"`
	ProjectSummary SummaryDoc     `json:"project_summary"`
	CriticalPath   []string       `json:"critical_path"`
	Activities     []ActivityDoc  `json:"activities"`
	Milestones     []MilestoneDoc `json:"milestones"`
}

// MilestoneDoc is one zero-duration marker.
type MilestoneDoc struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Date string `json:"date"`
}

// SummaryDoc mirrors cpm.Summary with ISO-8601 dates.
type SummaryDoc struct {
	ProjectStart       string  `json:"project_start"`
	ProjectFinish      string  `json:"project_finish"`
	DurationDays       float64 `json:"duration_days"`
	DurationWeeks      float64 `json:"duration_weeks"`
	TotalActivities    int     `json:"total_activities"`
	CriticalCount      int     `json:"critical_count"`
	CriticalPercent    float64 `json:"critical_percent"`
	WorkingDaysPerWeek int     `json:"working_days_per_week"`
}

// ActivityDoc is one activity row.
type ActivityDoc struct {
	Code           string           `json:"code"`
	Name           string           `json:"name"`
	Duration       float64          `json:"duration"`
	EarlyStart     float64          `json:"early_start"`
	EarlyFinish    float64          `json:"early_finish"`
	LateStart      float64          `json:"late_start"`
	LateFinish     float64          `json:"late_finish"`
	TotalFloat     float64          `json:"total_float"`
	FreeFloat      float64          `json:"free_float"`
	IsCritical     bool             `json:"is_critical"`
	CrewSize       int              `json:"crew_size"`
	CalendarStart  string           `json:"calendar_start"`
	CalendarFinish string           `json:"calendar_finish"`
	Predecessors   []PredecessorDoc `json:"predecessors"`
}

// PredecessorDoc is one typed incoming edge.
type PredecessorDoc struct {
	ID   string  `json:"id"`
	Type string  `json:"type"`
	Lag  float64 `json:"lag"`
}

// BuildDocument assembles the JSON document from a solved schedule.
func BuildDocument(s *schedule.Schedule, opts Options) Document {
	summary := s.Network.Summary()
	doc := Document{
		ScheduleID:  s.ID,
		ProjectName: opts.projectName(s),
		BOQCode:     s.BOQCode,
		ProjectSummary: SummaryDoc{
			ProjectStart:       summary.ProjectStart.Format(dateLayout),
			ProjectFinish:      summary.ProjectFinish.Format(dateLayout),
			DurationDays:       summary.DurationDays,
			DurationWeeks:      summary.DurationWeeks,
			TotalActivities:    summary.TotalActivities,
			CriticalCount:      summary.CriticalCount,
			CriticalPercent:    summary.CriticalPercent,
			WorkingDaysPerWeek: summary.WorkingDaysPerWeek,
		},
		CriticalPath: []string{},
		Activities:   []ActivityDoc{},
		Milestones:   []MilestoneDoc{},
	}
	for _, m := range s.Milestones() {
		doc.Milestones = append(doc.Milestones, MilestoneDoc{
			Code: m.Code,
			Name: m.Name,
			Date: m.Date.Format(dateLayout),
		})
	}
	for _, a := range s.Network.CriticalPath() {
		doc.CriticalPath = append(doc.CriticalPath, a.Code)
	}
	for _, a := range s.Network.ByEarlyStart() {
		row := ActivityDoc{
			Code:           a.Code,
			Name:           a.Name,
			Duration:       a.Duration,
			EarlyStart:     a.EarlyStart,
			EarlyFinish:    a.EarlyFinish,
			LateStart:      a.LateStart,
			LateFinish:     a.LateFinish,
			TotalFloat:     a.TotalFloat,
			FreeFloat:      a.FreeFloat,
			IsCritical:     a.IsCritical,
			CrewSize:       a.CrewSize,
			CalendarStart:  a.CalendarStart.Format(dateLayout),
			CalendarFinish: a.CalendarFinish.Format(dateLayout),
			Predecessors:   []PredecessorDoc{},
		}
		for _, rel := range a.Predecessors {
			row.Predecessors = append(row.Predecessors, PredecessorDoc{
				ID:   rel.Activity,
				Type: string(rel.Type),
				Lag:  rel.Lag,
			})
		}
		doc.Activities = append(doc.Activities, row)
	}
	return doc
}

// WriteJSON renders the schedule as indented JSON.
func WriteJSON(s *schedule.Schedule, opts Options, w io.Writer) error {
	doc := BuildDocument(s, opts)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding schedule json: %w", err)
	}
	return nil
}

// ParseJSON re-hydrates an exported document.
func ParseJSON(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding schedule json: %w", err)
	}
	return &doc, nil
}

// MarshalDocument renders a document with the same settings WriteJSON
// uses; re-serialising a parsed document reproduces the original bytes.
func MarshalDocument(doc *Document) ([]byte, error) {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
