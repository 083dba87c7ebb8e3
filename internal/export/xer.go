package export

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/omarzaki/boqplan/internal/domain"
	"github.com/omarzaki/boqplan/internal/schedule"
)

// Interchange text dialect modelled on Primavera XER: tab-delimited rows,
// "%T" opens a table, "%F" lists its fields, "%R" carries a record, "%E"
// terminates the file. Durations and lags are exported in hours at eight
// hours per working day.

const (
	xerVersion    = "1.0"
	xerDateLayout = "2006-01-02 15:04"
)

var xerPredTypes = map[domain.LogicType]string{
	domain.LogicFS: "PR_FS",
	domain.LogicSS: "PR_SS",
	domain.LogicFF: "PR_FF",
	domain.LogicSF: "PR_SF",
}

var xerLogicTypes = map[string]domain.LogicType{
	"PR_FS": domain.LogicFS,
	"PR_SS": domain.LogicSS,
	"PR_FF": domain.LogicFF,
	"PR_SF": domain.LogicSF,
}

// WriteXER renders the schedule as interchange text.
func WriteXER(s *schedule.Schedule, opts Options, w io.Writer) error {
	bw := bufio.NewWriter(w)

	hours := func(days float64) string {
		return strconv.FormatFloat(days*domain.HoursPerShiftDay, 'f', 2, 64)
	}

	fmt.Fprintf(bw, "ERMHDR\t%s\t%s\tboqplan\n", xerVersion, opts.timestamp().Format(dateLayout))

	fmt.Fprintf(bw, "%%T\tPROJECT\n")
	fmt.Fprintf(bw, "%%F\tproj_id\tproj_short_name\tproj_name\n")
	fmt.Fprintf(bw, "%%R\t1\t%s\t%s\n", s.BOQCode, opts.projectName(s))

	// Task ids are assigned in (early start, code) order.
	activities := s.Network.ByEarlyStart()
	taskID := make(map[string]int, len(activities))
	for i, a := range activities {
		taskID[a.Code] = i + 1
	}

	fmt.Fprintf(bw, "%%T\tTASK\n")
	fmt.Fprintf(bw, "%%F\ttask_id\ttask_code\ttask_name\ttarget_drtn_hr_cnt\tearly_start_date\tearly_end_date\tlate_start_date\tlate_end_date\ttotal_float_hr_cnt\n")
	cal := s.Network.Calendar()
	for _, a := range activities {
		fmt.Fprintf(bw, "%%R\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			taskID[a.Code], a.Code, a.Name, hours(a.Duration),
			a.CalendarStart.Format(xerDateLayout),
			a.CalendarFinish.Format(xerDateLayout),
			cal.WorkingDay(int(math.Floor(a.LateStart))).Format(xerDateLayout),
			cal.WorkingDay(int(math.Ceil(a.LateFinish))).Format(xerDateLayout),
			hours(a.TotalFloat))
	}

	fmt.Fprintf(bw, "%%T\tTASKPRED\n")
	fmt.Fprintf(bw, "%%F\ttask_pred_id\ttask_id\tpred_task_id\tpred_type\tlag_hr_cnt\n")
	predID := 1
	for _, a := range activities {
		for _, rel := range a.Predecessors {
			fmt.Fprintf(bw, "%%R\t%d\t%d\t%d\t%s\t%s\n",
				predID, taskID[a.Code], taskID[rel.Activity], xerPredTypes[rel.Type], hours(rel.Lag))
			predID++
		}
	}

	fmt.Fprintf(bw, "%%E\n")
	return bw.Flush()
}

// XERTask is one parsed TASK record.
type XERTask struct {
	ID            int
	Code          string
	Name          string
	DurationHours float64
	TotalFloatHrs float64
}

// XERPred is one parsed TASKPRED record.
type XERPred struct {
	ID       int
	TaskID   int
	PredID   int
	Type     domain.LogicType
	LagHours float64
}

// XERFile is the parsed interchange content.
type XERFile struct {
	Version     string
	ProjectID   string // numeric proj_id, "1" for single-project files
	ProjectCode string // proj_short_name, the BOQ code
	ProjectName string
	Tasks       []XERTask
	Preds       []XERPred
}

// ParseXER reads interchange text back into structured records. Only the
// tables the writer emits are understood; unknown tables are skipped.
func ParseXER(r io.Reader) (*XERFile, error) {
	out := &XERFile{}
	scanner := bufio.NewScanner(r)

	table := ""
	terminated := false
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		switch fields[0] {
		case "ERMHDR":
			if len(fields) < 2 {
				return nil, fmt.Errorf("malformed interchange header")
			}
			out.Version = fields[1]
		case "%T":
			if len(fields) < 2 {
				return nil, fmt.Errorf("table marker without a name")
			}
			table = fields[1]
		case "%F":
			// Field lists are fixed per table; nothing to retain.
		case "%R":
			if err := out.parseRecord(table, fields[1:]); err != nil {
				return nil, err
			}
		case "%E":
			terminated = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading interchange text: %w", err)
	}
	if !terminated {
		return nil, fmt.Errorf("interchange text missing %%E terminator")
	}
	return out, nil
}

func (f *XERFile) parseRecord(table string, fields []string) error {
	switch table {
	case "PROJECT":
		if len(fields) < 3 {
			return fmt.Errorf("short PROJECT record")
		}
		f.ProjectID = fields[0]
		f.ProjectCode = fields[1]
		f.ProjectName = fields[2]
	case "TASK":
		if len(fields) < 9 {
			return fmt.Errorf("short TASK record")
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("bad task_id %q: %w", fields[0], err)
		}
		dur, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return fmt.Errorf("bad task duration %q: %w", fields[3], err)
		}
		tf, err := strconv.ParseFloat(fields[8], 64)
		if err != nil {
			return fmt.Errorf("bad total float %q: %w", fields[8], err)
		}
		f.Tasks = append(f.Tasks, XERTask{
			ID: id, Code: fields[1], Name: fields[2],
			DurationHours: dur, TotalFloatHrs: tf,
		})
	case "TASKPRED":
		if len(fields) < 5 {
			return fmt.Errorf("short TASKPRED record")
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("bad task_pred_id %q: %w", fields[0], err)
		}
		taskID, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("bad task_id %q: %w", fields[1], err)
		}
		predID, err := strconv.Atoi(fields[2])
		if err != nil {
			return fmt.Errorf("bad pred_task_id %q: %w", fields[2], err)
		}
		typ, ok := xerLogicTypes[fields[3]]
		if !ok {
			return fmt.Errorf("unknown pred_type %q", fields[3])
		}
		lag, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return fmt.Errorf("bad lag %q: %w", fields[4], err)
		}
		f.Preds = append(f.Preds, XERPred{
			ID: id, TaskID: taskID, PredID: predID, Type: typ, LagHours: lag,
		})
	}
	return nil
}
