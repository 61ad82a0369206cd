package cli

import (
	"fmt"

	"github.com/alexanderramin/lexiplay/internal/cli/formatter"
	"github.com/alexanderramin/lexiplay/internal/curriculum"
	"github.com/spf13/cobra"
)

func newCurriculumCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "curriculum",
		Aliases: []string{"cur"},
		Short:   "Browse modules and level definitions",
	}

	cmd.AddCommand(
		newCurriculumModulesCmd(),
		newCurriculumShowCmd(),
	)

	return cmd
}

func newCurriculumModulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List modules and their literacy stages",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatModuleTree(curriculum.GenerateCurriculum()))
			return nil
		},
	}
}

func newCurriculumShowCmd() *cobra.Command {
	var lf levelFlags
	var seed uint32
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one module level and its questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			moduleID, level, err := lf.resolve()
			if err != nil {
				return err
			}

			def := curriculum.GenerateModuleLevel(moduleID, level)
			questions := def.Questions
			if cmd.Flags().Changed("seed") && def.ReshuffleEnabled {
				questions = curriculum.ShuffleQuestions(def.Questions, seed)
			}

			if asJSON {
				def.Questions = questions
				return writeJSON(cmd.OutOrStdout(), def)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatLevel(def, questions))
			return nil
		},
	}

	lf.register(cmd.Flags())
	cmd.Flags().Uint32Var(&seed, "seed", 0, "Show the question order for this shuffle seed")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the level definition as JSON")

	return cmd
}
