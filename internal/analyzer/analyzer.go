package analyzer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vivek-dodia/fast/internal/intervals"
	"github.com/vivek-dodia/fast/internal/llm"
	"github.com/vivek-dodia/fast/internal/query"
	"github.com/vivek-dodia/fast/internal/report"
)

// Analyzer turns a free-text question plus fetched training data into a
// coaching answer. It owns the classify, filter, format, complete pipeline.
type Analyzer struct {
	client     llm.Client
	model      string
	classifier query.Classifier
	now        func() time.Time
}

// New creates an Analyzer backed by the given completion client.
func New(client llm.Client, model string) *Analyzer {
	return &Analyzer{
		client:     client,
		model:      model,
		classifier: query.NewClassifier(),
		now:        time.Now,
	}
}

// Result is a finished analysis plus the scope that produced it.
type Result struct {
	// Analysis is the model's markdown answer, with a trailing notice
	// when the output hit the generation limit.
	Analysis string
	// Focus describes which activities were analyzed, for display
	// before the answer.
	Focus string
	// ActivityCount is how many activities survived scope filtering.
	ActivityCount int
}

// Analyze answers the user's question against the fetched training data.
func (a *Analyzer) Analyze(ctx context.Context, data *intervals.TrainingData, userQuery string) (*Result, error) {
	if data == nil {
		return nil, errors.New("no training data to analyze")
	}
	if strings.TrimSpace(userQuery) == "" {
		return nil, errors.New("empty query")
	}

	intent := a.classifier.Classify(userQuery)
	activities, focus := query.Filter(data.Activities, intent, a.now())

	opts := report.ScopedOptions()
	if intent.Scope == query.ScopeAll || intent.Scope == query.ScopeRange {
		opts = report.FullOptions()
	}

	dataContext := report.Format(
		data.Profile,
		activities,
		data.Wellness,
		focus,
		data.DateRange,
		data.FitnessTrend,
		opts,
	)

	params := ParamsFor(a.model)
	resp, err := a.client.Complete(ctx, llm.Request{
		System:      systemPrompt,
		User:        BuildUserPrompt(dataContext, userQuery),
		Temperature: params.Temperature,
		MaxTokens:   params.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generating analysis: %w", err)
	}

	analysis := strings.TrimSpace(resp.Text)
	if resp.Truncated {
		analysis += "\n\n" + truncationNotice
	}

	return &Result{
		Analysis:      analysis,
		Focus:         focus,
		ActivityCount: len(activities),
	}, nil
}

// BuildUserPrompt joins the formatted data context with the athlete's
// question. The question is passed through verbatim so the model sees
// exactly what was asked.
func BuildUserPrompt(dataContext, userQuery string) string {
	var b strings.Builder
	b.WriteString(dataContext)
	b.WriteString("\n\n")
	b.WriteString(userQuestionHeader)
	b.WriteString("\n")
	b.WriteString(userQuery)
	b.WriteString("\n\n")
	b.WriteString(userPromptFooter)
	return b.String()
}
