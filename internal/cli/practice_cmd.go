package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/lexiplay/internal/cli/formatter"
	"github.com/alexanderramin/lexiplay/internal/domain"
	"github.com/alexanderramin/lexiplay/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPracticeCmd(a *App) *cobra.Command {
	var lf levelFlags

	cmd := &cobra.Command{
		Use:     "practice",
		Aliases: []string{"p"},
		Short:   "Work through a module level",
	}
	lf.register(cmd.PersistentFlags())

	cmd.AddCommand(
		newPracticeStatusCmd(a, &lf),
		newPracticeCheckCmd(a, &lf),
		newPracticeNextCmd(a, &lf),
		newPracticeHistoryCmd(a, &lf),
		newPracticeRunCmd(a, &lf),
	)

	return cmd
}

func newPracticeStatusCmd(a *App, lf *levelFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current question of a level attempt",
		RunE: func(cmd *cobra.Command, args []string) error {
			moduleID, level, err := lf.resolve()
			if err != nil {
				return err
			}
			view, err := a.startLevelUseCase().Start(cmd.Context(), moduleID, level)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPracticeView(view))
			return nil
		},
	}
}

func newPracticeCheckCmd(a *App, lf *levelFlags) *cobra.Command {
	var (
		correct   bool
		errorType string
		response  string
		question  int
		taskID    string
	)
	slots := slotFlag{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Record an answer to the current question",
		Long: `Record an answer to the current question.

Sentence-building questions are graded from --slot assignments. Every other
question takes the grading decision from --correct, optionally with an
--error-type describing the mistake.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			moduleID, level, err := lf.resolve()
			if err != nil {
				return err
			}

			req := service.CheckAnswerRequest{
				ModuleID:       moduleID,
				Level:          level,
				QuestionNumber: question,
				TaskID:         taskID,
				Selection:      slots,
				IsCorrect:      correct,
				Response:       response,
			}
			if errorType != "" {
				et := domain.CurriculumErrorType(errorType)
				if !et.Valid() {
					return fmt.Errorf("unknown error type %q", errorType)
				}
				req.ErrorType = &et
			}

			res, err := a.checkAnswerUseCase().CheckAnswer(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCheckResult(res))
			return nil
		},
	}

	cmd.Flags().BoolVar(&correct, "correct", false, "Mark the answer correct")
	cmd.Flags().StringVar(&errorType, "error-type", "", "Curriculum error type of a wrong answer")
	cmd.Flags().StringVar(&response, "response", "", "The learner's answer text")
	cmd.Flags().IntVar(&question, "question", 0, "Question number (default: current question)")
	cmd.Flags().StringVar(&taskID, "task", "", "Sentence task ID for slot-building questions")
	cmd.Flags().Var(slots, "slot", "Slot assignment slot=wordID (repeatable)")

	return cmd
}

func newPracticeNextCmd(a *App, lf *levelFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Move to the next question, grading the level after the last one",
		RunE: func(cmd *cobra.Command, args []string) error {
			moduleID, level, err := lf.resolve()
			if err != nil {
				return err
			}
			out, err := a.advanceLevelUseCase().Next(cmd.Context(), moduleID, level)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNextOutcome(out))
			return nil
		},
	}
}

func newPracticeHistoryCmd(a *App, lf *levelFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List graded attempts for a module",
		RunE: func(cmd *cobra.Command, args []string) error {
			moduleID, err := parseModule(lf.module)
			if err != nil {
				return err
			}
			records := a.Practice.History(cmd.Context(), moduleID)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(records))
			return nil
		},
	}
}

func newPracticeRunCmd(a *App, lf *levelFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Practice a level interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			moduleID, level, err := lf.resolve()
			if err != nil {
				return err
			}
			if !a.interactive() {
				return errors.New("practice run needs an interactive terminal")
			}
			m := newPracticeModel(cmd.Context(), a.practiceRunner(), moduleID, level)
			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}
