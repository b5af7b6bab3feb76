package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vivek-dodia/fast/internal/analyzer"
	"github.com/vivek-dodia/fast/internal/config"
	"github.com/vivek-dodia/fast/internal/intervals"
	"github.com/vivek-dodia/fast/internal/llm"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config  *config.Config
	root    *cobra.Command
	days    int
	noColor bool
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "fast [query]",
		Short: "Ask questions about your intervals.icu training data",
		Long: `fast fetches your recent training data from intervals.icu and answers
free-text questions about it using an LLM.

Examples:
  fast "how was my last run?"
  fast "analyze my last 5 rides"
  fast "compare this week to last week"
  fast --days 60 "how is my fitness trending?"`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.noColor {
				DisableColor()
			}
			if len(args) == 0 {
				return cmd.Help()
			}
			return a.runQuery(cmd.Context(), strings.Join(args, " "))
		},
	}

	a.root.Flags().IntVar(&a.days, "days", 30, "How many days of training data to fetch")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.setupCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("fast %s (commit: %s)\n", Version, Commit)
		},
	}
}

// runQuery executes the full pipeline for one question.
func (a *App) runQuery(ctx context.Context, query string) error {
	if err := a.config.Validate(); err != nil {
		return err
	}

	client, err := llm.NewClient(
		a.config.LLM.Provider,
		a.config.LLM.Model,
		a.config.LLM.BaseURL,
		a.config.LLM.APIKey,
	)
	if err != nil {
		return err
	}

	icu := intervals.NewClient(a.config.Intervals.APIKey, a.config.Intervals.AthleteID)
	if a.config.Intervals.BaseURL != "" {
		icu = icu.WithBaseURL(a.config.Intervals.BaseURL)
	}

	fmt.Println(formatProgress(fmt.Sprintf("Fetching last %d days from intervals.icu...", a.days)))
	data, err := icu.FetchTrainingData(ctx, a.days)
	if err != nil {
		return fmt.Errorf("fetching training data: %w", err)
	}
	fmt.Println(formatSuccess(fmt.Sprintf("Got %d activities.", len(data.Activities))))

	fmt.Println(formatProgress("Analyzing with " + a.config.LLM.Model + "..."))
	result, err := analyzer.New(client, a.config.LLM.Model).Analyze(ctx, data, query)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(renderScopePanel(result.Focus, result.ActivityCount))
	fmt.Println(renderMarkdown(result.Analysis))
	return nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
