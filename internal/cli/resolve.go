package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/omarzaki/boqplan/internal/catalog"
	"github.com/omarzaki/boqplan/internal/domain"
)

const startDateLayout = "2006-01-02"

// resolveCode returns the BOQ code from the positional args, falling back
// to an interactive picker on a terminal. Without either the invocation
// is a usage error.
func resolveCode(app *App, cat *catalog.Catalogue, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if app.IsInteractive == nil || !app.IsInteractive() {
		return "", usagef("a BOQ code is required (run \"boqplan codes\" to list them)")
	}
	return pickCode(cat)
}

func pickCode(cat *catalog.Catalogue) (string, error) {
	codes := cat.ListCodes()
	opts := make([]huh.Option[string], 0, len(codes))
	for _, code := range codes {
		label := code
		if b, err := cat.Get(code); err == nil {
			label = fmt.Sprintf("%s — %s", code, b.Description)
		}
		opts = append(opts, huh.NewOption(label, code))
	}

	var code string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("BOQ item").
			Options(opts...).
			Value(&code),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return code, nil
}

// resolveStart parses the optional start-date positional, defaulting to
// today's civil date.
func resolveStart(args []string) (time.Time, error) {
	if len(args) == 0 {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	start, err := time.Parse(startDateLayout, args[0])
	if err != nil {
		return time.Time{}, usagef("start date must be YYYY-MM-DD, got %q", args[0])
	}
	return start, nil
}

// buildContext assembles and validates the solve context from flags.
// Validation failures are usage errors: they come from the invocation.
func buildContext(start time.Time, workingDays, shifts, maxWorkers int) (*domain.ProjectContext, error) {
	ctx := &domain.ProjectContext{
		ProjectStart:       start,
		WorkingDaysPerWeek: workingDays,
		Shifts:             shifts,
	}
	if maxWorkers > 0 {
		ctx.SiteCapacity = &domain.SiteCapacity{MaxWorkers: maxWorkers}
	}
	if err := ctx.Validate(); err != nil {
		return nil, &UsageError{Err: err}
	}
	return ctx, nil
}
