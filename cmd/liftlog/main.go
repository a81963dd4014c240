package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/claude/liftlog/internal/config"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
	"github.com/claude/liftlog/internal/workout"
)

// Version is set at build time via -ldflags.
var Version = "dev"

const usage = `LiftLog — single-user workout tracker

Usage: liftlog [-config config.yaml] <command> [args]

Library:
  exercise add|list|show|rm     manage the exercise library
  template import|list|show|rm  manage workout templates (import reads JSON)
  program import|list|show|rm   manage program templates (import reads JSON)

Logging:
  start <template-id>           start a workout from a template
  status                        show the workout in progress
  set -ex N -set N [-reps R] [-weight W]
                                record performance for one set (1-based indexes)
  bodyweight <value>            record bodyweight on the draft
  finish [-week W -session S]   log the workout, detect PRs, optionally mark
                                the given program session completed
  discard                       throw away the workout in progress

Program cycles:
  cycle start -program ID [-name NAME]
  cycle status
  cycle end

Views:
  history [-limit N]            logged workouts, most recent first
  prs [-exercise ID]            personal records
  volume [-window week|7d|month|30d | -week WEEK_ID]
                                set count per muscle group
  trend                         bodyweight over time (kg)
  progression -exercise ID      estimated 1RM over time (kg)
  unit [kg|lb]                  show or set the display weight unit

Flags:
`

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.Level()}))

	ctx := context.Background()
	db, err := storage.Open(ctx, cfg.Storage.Path)
	if err != nil {
		log.Error("failed to open database", "path", cfg.Storage.Path, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	app := &app{
		db:       db,
		log:      log,
		logger:   workout.NewLogger(db, log),
		finisher: workout.NewFinisher(db, log),
	}

	if err := app.run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "liftlog:", err)
		os.Exit(1)
	}
}

type app struct {
	db       *storage.DB
	log      *slog.Logger
	logger   *workout.Logger
	finisher *workout.Finisher
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "exercise":
		return a.runExercise(ctx, args)
	case "template":
		return a.runTemplate(ctx, args)
	case "program":
		return a.runProgram(ctx, args)
	case "start":
		return a.runStart(ctx, args)
	case "status":
		return a.runStatus(ctx)
	case "set":
		return a.runSet(ctx, args)
	case "bodyweight":
		return a.runBodyweight(ctx, args)
	case "finish":
		return a.runFinish(ctx, args)
	case "discard":
		return a.logger.Discard(ctx)
	case "cycle":
		return a.runCycle(ctx, args)
	case "history":
		return a.runHistory(ctx, args)
	case "prs":
		return a.runPRs(ctx, args)
	case "volume":
		return a.runVolume(ctx, args)
	case "trend":
		return a.runTrend(ctx)
	case "progression":
		return a.runProgression(ctx, args)
	case "unit":
		return a.runUnit(ctx, args)
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *app) runStart(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: liftlog start <template-id>")
	}

	draft, err := a.logger.Start(ctx, args[0])
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no template with id %q", args[0])
		}
		return err
	}

	fmt.Printf("Started %s (%s)\n", deref(draft.Name, "workout"), draft.Date)
	printDraft(draft)
	return nil
}

func (a *app) runStatus(ctx context.Context) error {
	draft, err := a.logger.Active(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Println("No workout in progress.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", deref(draft.Name, "Workout"), draft.Date)
	if draft.Bodyweight != nil {
		fmt.Printf("Bodyweight: %g\n", *draft.Bodyweight)
	}
	printDraft(draft)
	return nil
}

func (a *app) runSet(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("set", flag.ContinueOnError)
	exIdx := fs.Int("ex", 0, "exercise number (1-based, see status)")
	setIdx := fs.Int("set", 0, "set number (1-based)")
	reps := fs.String("reps", "", "reps performed")
	weight := fs.String("weight", "", "weight used")
	if err := fs.Parse(args); err != nil {
		return err
	}

	draft, err := a.logger.Active(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return workout.ErrNoActiveWorkout
	}
	if err != nil {
		return err
	}

	if *exIdx < 1 || *exIdx > len(draft.Exercises) {
		return fmt.Errorf("exercise number %d out of range (1-%d)", *exIdx, len(draft.Exercises))
	}
	ex := draft.Exercises[*exIdx-1]
	if *setIdx < 1 || *setIdx > len(ex.Sets) {
		return fmt.Errorf("set number %d out of range (1-%d)", *setIdx, len(ex.Sets))
	}

	updated, err := a.logger.UpdateSet(ctx, ex.ID, ex.Sets[*setIdx-1].ID, *reps, *weight)
	if err != nil {
		return err
	}
	printDraft(updated)
	return nil
}

func (a *app) runBodyweight(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: liftlog bodyweight <value>")
	}

	draft, err := a.logger.UpdateBodyweight(ctx, args[0])
	if errors.Is(err, storage.ErrNotFound) {
		return workout.ErrNoActiveWorkout
	}
	if err != nil {
		return err
	}

	if draft.Bodyweight == nil {
		fmt.Printf("Could not parse %q; bodyweight left unset.\n", args[0])
	} else {
		fmt.Printf("Bodyweight: %g\n", *draft.Bodyweight)
	}
	return nil
}

func (a *app) runFinish(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("finish", flag.ContinueOnError)
	weekID := fs.String("week", "", "program week id to mark completed")
	sessionID := fs.String("session", "", "program session id to mark completed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if (*weekID == "") != (*sessionID == "") {
		return errors.New("-week and -session must be given together")
	}

	logged, records, err := a.finisher.Finish(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Logged %s (%s), %d exercises.\n",
		deref(logged.Name, "workout"), logged.Date, len(logged.Exercises))
	for _, pr := range records {
		fmt.Printf("  New PR: %s\n", describeRecord(pr))
	}
	if len(records) == 0 {
		fmt.Println("  No new personal records.")
	}

	if *weekID != "" {
		if err := a.db.MarkSessionCompleted(ctx, *weekID, *sessionID, logged.ID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return errors.New("no active cycle to mark the session on")
			}
			return err
		}
		fmt.Printf("Marked session %s of week %s completed.\n", *sessionID, *weekID)
	}
	return nil
}

func printDraft(w *models.LoggedWorkout) {
	for i, ex := range w.Exercises {
		fmt.Printf("%d. %s\n", i+1, ex.ExerciseName)
		for j, set := range ex.Sets {
			fmt.Printf("   set %d: %s", j+1, describeSet(set))
			if set.Notes != nil {
				fmt.Printf("  (%s)", *set.Notes)
			}
			fmt.Println()
		}
	}
}

func describeSet(s models.LoggedSet) string {
	switch {
	case s.Reps != nil && s.Weight != nil:
		return fmt.Sprintf("%d x %g", *s.Reps, *s.Weight)
	case s.Reps != nil:
		return fmt.Sprintf("%d reps", *s.Reps)
	case s.Secs != nil:
		return fmt.Sprintf("%ds", *s.Secs)
	default:
		return "-"
	}
}

func describeRecord(pr models.PersonalRecord) string {
	unit := deref(pr.WeightUnit, "kg")
	switch pr.Type {
	case models.MaxWeightForReps:
		return fmt.Sprintf("%s: %g %s for %d reps", pr.ExerciseName, floatOr(pr.Weight), unit, intOr(pr.Reps))
	case models.MaxRepsAtWeight:
		return fmt.Sprintf("%s: %d reps at %g %s", pr.ExerciseName, intOr(pr.Reps), floatOr(pr.Weight), unit)
	case models.Duration:
		return fmt.Sprintf("%s: %ds hold", pr.ExerciseName, intOr(pr.DurationSecs))
	default:
		return pr.ID
	}
}

func deref(s *string, fallback string) string {
	if s != nil && *s != "" {
		return *s
	}
	return fallback
}

func floatOr(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func intOr(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

func today() string {
	return time.Now().Format(models.DateFormat)
}
