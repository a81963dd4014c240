package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
	"github.com/google/uuid"
)

func (a *app) runExercise(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: liftlog exercise add|list|show|rm")
	}

	switch args[0] {
	case "add":
		return a.exerciseAdd(ctx, args[1:])
	case "list":
		exercises, err := a.db.ListExercises(ctx)
		if err != nil {
			return err
		}
		for _, ex := range exercises {
			fmt.Printf("%-36s  %-24s  %s\n", ex.ID, ex.Name, joinMuscles(ex.TargetMuscles))
		}
		return nil
	case "show":
		if len(args) != 2 {
			return errors.New("usage: liftlog exercise show <id>")
		}
		ex, err := a.db.GetExercise(ctx, args[1])
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no exercise with id %q", args[1])
		}
		if err != nil {
			return err
		}
		return printJSON(ex)
	case "rm":
		if len(args) != 2 {
			return errors.New("usage: liftlog exercise rm <id>")
		}
		return a.db.DeleteExercise(ctx, args[1])
	default:
		return fmt.Errorf("unknown exercise subcommand %q", args[0])
	}
}

func (a *app) exerciseAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("exercise add", flag.ContinueOnError)
	id := fs.String("id", "", "exercise id (generated when empty)")
	name := fs.String("name", "", "exercise name (required)")
	muscles := fs.String("muscles", "", "comma-separated muscle groups, e.g. CHEST,TRICEPS")
	equipment := fs.String("equipment", "", "comma-separated equipment, e.g. BARBELL")
	repRange := fs.String("reps", "", "preferred rep range, e.g. 8-12")
	notes := fs.String("notes", "", "notes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return errors.New("exercise add: -name is required")
	}

	ex := models.Exercise{
		ID:   *id,
		Name: *name,
	}
	if ex.ID == "" {
		ex.ID = uuid.NewString()
	}
	for _, m := range splitList(*muscles) {
		ex.TargetMuscles = append(ex.TargetMuscles, models.MuscleGroup(strings.ToUpper(m)))
	}
	for _, e := range splitList(*equipment) {
		ex.Equipment = append(ex.Equipment, models.Equipment(strings.ToUpper(e)))
	}
	if *repRange != "" {
		ex.PreferredRepRange = repRange
	}
	if *notes != "" {
		ex.Notes = notes
	}

	if err := a.db.UpsertExercise(ctx, ex); err != nil {
		return err
	}
	fmt.Println(ex.ID)
	return nil
}

func (a *app) runTemplate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: liftlog template import|list|show|rm")
	}

	switch args[0] {
	case "import":
		if len(args) != 2 {
			return errors.New("usage: liftlog template import <file.json>")
		}
		var tpl models.WorkoutTemplate
		if err := readJSONFile(args[1], &tpl); err != nil {
			return err
		}
		fillTemplateIDs(&tpl)
		if err := a.db.UpsertWorkoutTemplate(ctx, tpl); err != nil {
			return err
		}
		fmt.Println(tpl.ID)
		return nil
	case "list":
		templates, err := a.db.ListWorkoutTemplates(ctx)
		if err != nil {
			return err
		}
		for _, tpl := range templates {
			fmt.Printf("%-36s  %-24s  %d exercises\n", tpl.ID, tpl.Name, len(tpl.Exercises))
		}
		return nil
	case "show":
		if len(args) != 2 {
			return errors.New("usage: liftlog template show <id>")
		}
		tpl, err := a.db.GetWorkoutTemplate(ctx, args[1])
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no template with id %q", args[1])
		}
		if err != nil {
			return err
		}
		return printJSON(tpl)
	case "rm":
		if len(args) != 2 {
			return errors.New("usage: liftlog template rm <id>")
		}
		return a.db.DeleteWorkoutTemplate(ctx, args[1])
	default:
		return fmt.Errorf("unknown template subcommand %q", args[0])
	}
}

func (a *app) runProgram(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: liftlog program import|list|show|rm")
	}

	switch args[0] {
	case "import":
		if len(args) != 2 {
			return errors.New("usage: liftlog program import <file.json>")
		}
		var p models.ProgramTemplate
		if err := readJSONFile(args[1], &p); err != nil {
			return err
		}
		fillProgramIDs(&p)
		if err := a.db.UpsertProgramTemplate(ctx, p); err != nil {
			return err
		}
		fmt.Println(p.ID)
		return nil
	case "list":
		programs, err := a.db.ListProgramTemplates(ctx)
		if err != nil {
			return err
		}
		for _, p := range programs {
			fmt.Printf("%-36s  %-24s  %d weeks\n", p.ID, p.Name, len(p.Weeks))
		}
		return nil
	case "show":
		if len(args) != 2 {
			return errors.New("usage: liftlog program show <id>")
		}
		p, err := a.db.GetProgramTemplate(ctx, args[1])
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no program with id %q", args[1])
		}
		if err != nil {
			return err
		}
		return printJSON(p)
	case "rm":
		if len(args) != 2 {
			return errors.New("usage: liftlog program rm <id>")
		}
		return a.db.DeleteProgramTemplate(ctx, args[1])
	default:
		return fmt.Errorf("unknown program subcommand %q", args[0])
	}
}

func (a *app) runUnit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		unit, err := a.db.WeightUnit(ctx)
		if err != nil {
			return err
		}
		fmt.Println(unit)
		return nil
	}
	if len(args) != 1 {
		return errors.New("usage: liftlog unit [kg|lb]")
	}
	return a.db.SetWeightUnit(ctx, args[0])
}

// fillTemplateIDs assigns ids to any template parts the import file left
// blank, so hand-written JSON needs no uuids.
func fillTemplateIDs(tpl *models.WorkoutTemplate) {
	if tpl.ID == "" {
		tpl.ID = uuid.NewString()
	}
	for i := range tpl.Exercises {
		if tpl.Exercises[i].ID == "" {
			tpl.Exercises[i].ID = uuid.NewString()
		}
		for j := range tpl.Exercises[i].Sets {
			if tpl.Exercises[i].Sets[j].ID == "" {
				tpl.Exercises[i].Sets[j].ID = uuid.NewString()
			}
		}
	}
}

func fillProgramIDs(p *models.ProgramTemplate) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	for i := range p.Weeks {
		if p.Weeks[i].ID == "" {
			p.Weeks[i].ID = uuid.NewString()
		}
		for j := range p.Weeks[i].Sessions {
			if p.Weeks[i].Sessions[j].ID == "" {
				p.Weeks[i].Sessions[j].ID = uuid.NewString()
			}
		}
	}
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func joinMuscles(groups []models.MuscleGroup) string {
	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = string(g)
	}
	return strings.Join(parts, ",")
}
