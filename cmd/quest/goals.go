package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/stefanpenner/eternalquest/pkg/quest"
)

type statusJSON struct {
	Score         int `json:"score"`
	Level         int `json:"level"`
	XP            int `json:"xp"`
	XPToNextLevel int `json:"xp_to_next_level"`
	Goals         int `json:"goals"`
	Completed     int `json:"completed"`
}

type listJSON struct {
	statusJSON
	List []quest.GoalInfo `json:"list"`
}

type recordJSON struct {
	Goal         quest.GoalInfo `json:"goal"`
	Points       int            `json:"points"`
	LevelsGained int            `json:"levels_gained"`
	Completed    bool           `json:"completed"`
	statusJSON
}

func statusOf(m *quest.Manager) statusJSON {
	return statusJSON{
		Score:         m.Score(),
		Level:         m.Level(),
		XP:            m.XP(),
		XPToNextLevel: m.XPToNextLevel(),
		Goals:         m.Len(),
		Completed:     m.Completed(),
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals with their numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadManager()
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.outputJSON(listJSON{statusJSON: statusOf(m), List: m.Goals()})
			}

			lines := m.ListGoals()
			if len(lines) == 0 {
				fmt.Fprintln(a.out, "No goals yet. Add one with 'quest add'.")
			}
			for i, line := range lines {
				fmt.Fprintf(a.out, "%d. %s\n", i+1, line)
			}
			fmt.Fprintln(a.out, m.Summary())
			return nil
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	var in quest.GoalInput

	cmd := &cobra.Command{
		Use:   "add <simple|eternal|checklist> <name>",
		Short: "Add a goal",
		Example: `  quest add simple "Run a marathon" --desc "42km" --points 1000
  quest add eternal "Read scriptures" --points 100
  quest add checklist "Attend the temple" --points 50 --target 10 --bonus 500`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := quest.ParseKind(args[0])
			if err != nil {
				return err
			}
			in.Kind = kind
			in.Name = args[1]
			if err := in.Validate(); err != nil {
				return err
			}
			g, err := quest.NewGoal(in)
			if err != nil {
				return err
			}

			m, err := a.loadManager()
			if err != nil {
				return err
			}
			m.AddGoal(g)
			if err := a.saveManager(m); err != nil {
				return err
			}
			a.logger.Debug("goal added", "kind", kind, "name", in.Name)

			if a.jsonOut {
				return a.outputJSON(m.Goals()[m.Len()-1])
			}
			fmt.Fprintf(a.out, "Added goal %d: %s\n", m.Len(), g.DisplayText())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&in.Description, "desc", "d", "", "short description")
	f.IntVarP(&in.Points, "points", "p", 0, "points per recorded event")
	f.IntVar(&in.Target, "target", 0, "times to complete (checklist only)")
	f.IntVar(&in.Bonus, "bonus", 0, "bonus points on completion (checklist only)")
	_ = cmd.MarkFlagRequired("points")
	return cmd
}

func (a *app) recordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "record <n>",
		Short: "Record an event for goal number n (see 'quest list')",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("goal number must be a whole number, got %q", args[0])
			}

			m, err := a.loadManager()
			if err != nil {
				return err
			}
			res := m.RecordEventForGoal(n - 1)
			if !res.Applied {
				fmt.Fprintf(a.out, "No goal numbered %d (there are %d). Nothing recorded.\n", n, m.Len())
				return nil
			}
			if err := a.saveManager(m); err != nil {
				return err
			}

			goal := m.Goals()[n-1]
			if a.jsonOut {
				return a.outputJSON(recordJSON{
					Goal:         goal,
					Points:       res.Points,
					LevelsGained: res.LevelsGained,
					Completed:    res.Completed,
					statusJSON:   statusOf(m),
				})
			}

			if res.Points == 0 && goal.Complete && !res.Completed {
				fmt.Fprintf(a.out, "%s is already complete. No points earned.\n", goal.Name)
			} else {
				fmt.Fprintf(a.out, "Congratulations! You earned %d points.\n", res.Points)
			}
			if res.Completed {
				fmt.Fprintf(a.out, "Goal complete: %s\n", goal.Name)
			}
			if res.LevelsGained > 0 {
				fmt.Fprintf(a.out, "*** LEVEL UP! You are now Level %d! ***\n", m.Level())
			}
			fmt.Fprintln(a.out, m.Summary())
			return nil
		},
	}
}

func (a *app) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show score, level and XP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadManager()
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.outputJSON(statusOf(m))
			}
			fmt.Fprintln(a.out, m.Summary())
			fmt.Fprintf(a.out, "Goals: %d/%d complete\n", m.Completed(), m.Len())
			return nil
		},
	}
}
