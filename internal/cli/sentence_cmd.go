package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/lexiplay/internal/cli/formatter"
	"github.com/alexanderramin/lexiplay/internal/domain"
	"github.com/alexanderramin/lexiplay/internal/leveldata"
	"github.com/alexanderramin/lexiplay/internal/sentence"
	"github.com/alexanderramin/lexiplay/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newSentenceCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sentence",
		Short: "Build and check slot sentences",
	}

	cmd.AddCommand(
		newSentenceTasksCmd(),
		newSentenceCheckCmd(a),
	)

	return cmd
}

func newSentenceTasksCmd() *cobra.Command {
	var level int

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List sentence-builder tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks := leveldata.All()
			if level > 0 {
				tasks = leveldata.ForLevel(level)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskList(tasks))
			return nil
		},
	}

	cmd.Flags().IntVar(&level, "level", 0, "Only tasks used at this curriculum level (0 for all)")

	return cmd
}

func newSentenceCheckCmd(a *App) *cobra.Command {
	var taskID string
	var asJSON bool
	slots := slotFlag{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Grade a slot selection",
		Long: `Grade a slot selection against a task's grammar and meaning rules.

Pass one --slot per slot, e.g.
  lexiplay sentence check --task sb-l1-animals --slot article=art_a --slot subject=n_cat --slot verb=v_runs

Without --slot on a terminal, a picker is shown for each slot.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			task, ok := leveldata.ByID(taskID)
			if !ok {
				return fmt.Errorf("%w: %q", service.ErrUnknownTask, taskID)
			}

			if len(slots) == 0 {
				if !a.interactive() {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskOptions(task))
					return errors.New("no --slot given")
				}
				picked, err := pickSlots(task)
				if err != nil {
					return err
				}
				slots = picked
			}

			sel, err := service.ResolveSelection(task, slots)
			if err != nil {
				return err
			}
			result := sentence.Validate(task, sel)

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatValidation(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&taskID, "task", "", "Task ID (see 'sentence tasks')")
	cmd.Flags().Var(slots, "slot", "Slot assignment slot=wordID (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the validation result as JSON")
	_ = cmd.MarkFlagRequired("task")

	return cmd
}

// pickSlots asks for one word per slot with a huh select form.
func pickSlots(task domain.LevelTask) (slotFlag, error) {
	values := make([]string, len(task.Slots))
	fields := make([]huh.Field, 0, len(task.Slots))
	for i, slot := range task.Slots {
		words := task.OptionsFor(slot)
		opts := make([]huh.Option[string], 0, len(words))
		for _, w := range words {
			opts = append(opts, huh.NewOption(w.Text, w.ID))
		}
		fields = append(fields, huh.NewSelect[string]().
			Title(fmt.Sprintf("Pick the %s", sentence.SlotLabel(slot))).
			Options(opts...).
			Value(&values[i]))
	}

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(lexiplayHuhTheme()).
		WithShowHelp(false)
	if err := form.Run(); err != nil {
		return nil, err
	}

	picked := slotFlag{}
	for i, slot := range task.Slots {
		if values[i] != "" {
			picked[slot] = values[i]
		}
	}
	return picked, nil
}
