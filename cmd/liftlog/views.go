package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"sort"
	"time"

	"github.com/claude/liftlog/internal/analytics"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
)

func (a *app) runCycle(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: liftlog cycle start|status|end")
	}

	switch args[0] {
	case "start":
		return a.cycleStart(ctx, args[1:])
	case "status":
		return a.cycleStatus(ctx)
	case "end":
		if err := a.db.ClearActiveCycle(ctx); err != nil {
			return err
		}
		fmt.Println("Cycle ended.")
		return nil
	default:
		return fmt.Errorf("unknown cycle subcommand %q", args[0])
	}
}

func (a *app) cycleStart(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cycle start", flag.ContinueOnError)
	programID := fs.String("program", "", "program template id (required)")
	name := fs.String("name", "", "cycle name (defaults to the program name)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *programID == "" {
		return errors.New("cycle start: -program is required")
	}

	program, err := a.db.GetProgramTemplate(ctx, *programID)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no program with id %q", *programID)
	}
	if err != nil {
		return err
	}

	cycleName := *name
	if cycleName == "" {
		cycleName = program.Name
	}

	cycle := models.ActiveCycle{
		ProgramTemplateID:   program.ID,
		ProgramTemplateName: program.Name,
		CycleName:           cycleName,
		StartDate:           today(),
		CompletedSessions:   map[string]string{},
	}
	if err := a.db.SetActiveCycle(ctx, cycle); err != nil {
		return err
	}

	fmt.Printf("Started cycle %q of %s.\n", cycleName, program.Name)
	return nil
}

func (a *app) cycleStatus(ctx context.Context) error {
	cycle, err := a.db.GetActiveCycle(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Println("No active cycle.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s), started %s\n", cycle.CycleName, cycle.ProgramTemplateName, cycle.StartDate)

	program, err := a.db.GetProgramTemplate(ctx, cycle.ProgramTemplateID)
	if errors.Is(err, storage.ErrNotFound) {
		// Program was deleted out from under the cycle; completion detail is
		// gone but the cycle itself is still reportable.
		fmt.Printf("%d sessions completed (program no longer exists)\n", len(cycle.CompletedSessions))
		return nil
	}
	if err != nil {
		return err
	}

	for _, week := range program.Weeks {
		fmt.Printf("  %s (%s)\n", week.Label, week.ID)
		for _, sess := range week.Sessions {
			mark := " "
			if _, done := cycle.CompletedSessions[models.SessionKey(week.ID, sess.ID)]; done {
				mark = "x"
			}
			fmt.Printf("    [%s] %s (%s)\n", mark, sess.Name, sess.ID)
		}
	}
	return nil
}

func (a *app) runHistory(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	limit := fs.Int("limit", 20, "maximum workouts to show")
	if err := fs.Parse(args); err != nil {
		return err
	}

	workouts, err := a.db.ListLoggedWorkouts(ctx)
	if err != nil {
		return err
	}
	if *limit > 0 && len(workouts) > *limit {
		workouts = workouts[:*limit]
	}

	for _, w := range workouts {
		sets := 0
		for _, ex := range w.Exercises {
			sets += len(ex.Sets)
		}
		fmt.Printf("%s  %-24s  %d exercises, %d sets  %s\n",
			w.Date, deref(w.Name, "(unnamed)"), len(w.Exercises), sets, w.ID)
	}
	return nil
}

func (a *app) runPRs(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("prs", flag.ContinueOnError)
	exerciseID := fs.String("exercise", "", "filter to one exercise id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	records, err := a.db.ListPersonalRecords(ctx)
	if err != nil {
		return err
	}

	for _, pr := range records {
		if *exerciseID != "" && pr.ExerciseID != *exerciseID {
			continue
		}
		fmt.Printf("%s  %s\n", pr.Date, describeRecord(pr))
	}
	return nil
}

func (a *app) runVolume(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("volume", flag.ContinueOnError)
	window := fs.String("window", string(analytics.WindowCalendarWeek), "time window: week, 7d, month, 30d")
	weekID := fs.String("week", "", "program week id (uses the active cycle instead of a time window)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	workouts, err := a.db.ListLoggedWorkouts(ctx)
	if err != nil {
		return err
	}
	exercises, err := a.db.ListExercises(ctx)
	if err != nil {
		return err
	}

	var filtered []models.LoggedWorkout
	if *weekID != "" {
		filtered, err = a.programWeekWorkouts(ctx, workouts, *weekID)
	} else {
		filtered, err = analytics.FilterByWindow(workouts, analytics.Window(*window), time.Now())
	}
	if err != nil {
		return err
	}

	volume := analytics.VolumeBySets(filtered, exercises)

	groups := make([]models.MuscleGroup, 0, len(volume))
	for g := range volume {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		if volume[groups[i]] != volume[groups[j]] {
			return volume[groups[i]] > volume[groups[j]]
		}
		return groups[i] < groups[j]
	})

	for _, g := range groups {
		fmt.Printf("%-16s %d\n", g, volume[g])
	}
	return nil
}

func (a *app) programWeekWorkouts(ctx context.Context, workouts []models.LoggedWorkout, weekID string) ([]models.LoggedWorkout, error) {
	cycle, err := a.db.GetActiveCycle(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, errors.New("no active program cycle")
	}
	if err != nil {
		return nil, err
	}

	program, err := a.db.GetProgramTemplate(ctx, cycle.ProgramTemplateID)
	if err != nil {
		return nil, err
	}

	for i := range program.Weeks {
		if program.Weeks[i].ID == weekID {
			return analytics.FilterByProgramWeek(workouts, cycle, &program.Weeks[i]), nil
		}
	}
	return nil, fmt.Errorf("week %q not found in program %q", weekID, program.Name)
}

func (a *app) runTrend(ctx context.Context) error {
	workouts, err := a.db.ListLoggedWorkouts(ctx)
	if err != nil {
		return err
	}

	for _, p := range analytics.BodyweightTrend(workouts) {
		fmt.Printf("%s  %.1f kg\n", p.Date, p.Bodyweight)
	}
	return nil
}

func (a *app) runProgression(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("progression", flag.ContinueOnError)
	exerciseID := fs.String("exercise", "", "exercise id (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *exerciseID == "" {
		return errors.New("progression: -exercise is required")
	}

	workouts, err := a.db.ListLoggedWorkouts(ctx)
	if err != nil {
		return err
	}

	for _, p := range analytics.E1RMProgression(workouts, *exerciseID) {
		fmt.Printf("%s  %.1f kg\n", p.Date, p.E1RM)
	}
	return nil
}
