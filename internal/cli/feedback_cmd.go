package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/lexiplay/internal/cli/formatter"
	"github.com/alexanderramin/lexiplay/internal/curriculum"
	"github.com/alexanderramin/lexiplay/internal/feedback"
	"github.com/spf13/cobra"
)

func newFeedbackCmd(a *App) *cobra.Command {
	var (
		sentence1 string
		sentence2 string
		function  string
		topic     string
		level     int
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Score a free-form sentence",
		Long: `Score a free-form sentence, or a pair of sentences to compare.

The remote feedback service is used when LEXIPLAY_FEEDBACK_ENABLED is set;
otherwise, or when it fails, local rules score the sentence.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(sentence1) == "" {
				return errors.New("--sentence is required")
			}
			fn := feedback.LanguageFunction(function)
			if !fn.Valid() {
				names := make([]string, 0, len(feedback.AllLanguageFunctions()))
				for _, f := range feedback.AllLanguageFunctions() {
					names = append(names, string(f))
				}
				return fmt.Errorf("unknown language function %q (want one of: %s)", function, strings.Join(names, ", "))
			}
			if level < 1 || level > curriculum.LevelCount {
				return fmt.Errorf("level must be between 1 and %d, got %d", curriculum.LevelCount, level)
			}

			req := feedback.Request{
				Topic:            topic,
				LanguageFunction: fn,
				TierContext:      feedback.TierContext{Level: level},
			}
			if sentence2 != "" {
				req.Sentence1, req.Sentence2 = sentence1, sentence2
			} else {
				req.Sentence = sentence1
			}

			var stop func()
			if a.interactive() && !asJSON {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Reading your sentence...")
			}
			resp := a.scoreSentenceUseCase().Feedback(cmd.Context(), req)
			if stop != nil {
				stop()
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatFeedback(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&sentence1, "sentence", "", "Sentence to score")
	cmd.Flags().StringVar(&sentence2, "sentence2", "", "Second sentence, to compare with the first")
	cmd.Flags().StringVar(&function, "function", string(feedback.FunctionDescribe), "Language function the sentence should serve")
	cmd.Flags().StringVar(&topic, "topic", "", "Topic of the sentence")
	cmd.Flags().IntVar(&level, "level", 1, "Learner level (1-20)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the response as JSON")

	return cmd
}
