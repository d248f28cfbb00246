package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fxdsilva/alertia/internal/config"
	"github.com/fxdsilva/alertia/internal/models"
	"github.com/fxdsilva/alertia/pkg/logger"
	openai "github.com/sashabaranov/go-openai"
)

// ReportContent is the structured payload produced by an analysis run.
type ReportContent struct {
	Summary        string
	Highlights     []string
	RiskAssessment string
	Recommendation string
}

// Analyzer is the pluggable analysis strategy behind report generation. The
// computation is bounded and must honor ctx cancellation.
type Analyzer interface {
	Analyze(ctx context.Context, scope string) (*ReportContent, error)
}

// StaticAnalyzer produces the scope-dependent baseline content. Network-wide
// analyses carry a coarser risk assessment than school-level ones.
type StaticAnalyzer struct {
	// Delay models the analysis latency. Zero means no artificial delay.
	Delay time.Duration
}

func (a *StaticAnalyzer) Analyze(ctx context.Context, scope string) (*ReportContent, error) {
	if a.Delay > 0 {
		timer := time.NewTimer(a.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if scope == models.ReportScopeGlobal {
		return &ReportContent{
			Summary: "Network-wide compliance analysis covering complaint intake, " +
				"training adoption and open audit processes across all active institutions.",
			Highlights: []string{
				"Complaint intake volume is within the expected range for the period",
				"Training completion rates vary significantly between institutions",
				"Open investigations are concentrated in a small number of institutions",
			},
			RiskAssessment: "Moderate",
			Recommendation: "Prioritize institutions with low training adoption and " +
				"review the backlog of open investigations.",
		}, nil
	}

	return &ReportContent{
		Summary: "Institution-level compliance analysis covering local complaint " +
			"handling, governance documents and training progress.",
		Highlights: []string{
			"Governance documents are tracked and up to date",
			"Active complaints are being processed within normal timeframes",
			"Training catalog engagement is stable",
		},
		RiskAssessment: models.RiskLow,
		Recommendation: "Maintain the current compliance routine and keep training " +
			"completions above the network average.",
	}, nil
}

// OpenAIAnalyzer enriches the baseline content with an AI-generated summary.
// Any API failure falls back to the baseline payload so report generation
// never depends on the provider being reachable.
type OpenAIAnalyzer struct {
	client   *openai.Client
	model    string
	baseline Analyzer
}

func NewOpenAIAnalyzer(cfg *config.OpenAIConfig) *OpenAIAnalyzer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAIAnalyzer{
		client:   openai.NewClientWithConfig(clientConfig),
		model:    cfg.Model,
		baseline: &StaticAnalyzer{},
	}
}

func (a *OpenAIAnalyzer) Analyze(ctx context.Context, scope string) (*ReportContent, error) {
	content, err := a.baseline.Analyze(ctx, scope)
	if err != nil {
		return nil, err
	}

	prompt := analysisPrompt(scope, content)

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.3,
	})
	if err != nil {
		logger.Warnf("[Analyzer] OpenAI call failed, using baseline summary: %v", err)
		return content, nil
	}
	if len(resp.Choices) == 0 {
		logger.Warnf("[Analyzer] OpenAI returned no choices, using baseline summary")
		return content, nil
	}

	content.Summary = resp.Choices[0].Message.Content
	return content, nil
}

// analysisPrompt renders the enrichment prompt from whatever highlights the
// baseline produced.
func analysisPrompt(scope string, content *ReportContent) string {
	findings := "- (no findings)"
	if len(content.Highlights) > 0 {
		findings = "- " + strings.Join(content.Highlights, "\n- ")
	}

	return fmt.Sprintf(`You are a compliance analyst for a network of school institutions.
Write a concise executive summary (max 150 words) for a %s-level compliance report.
Base it on these findings:
%s
Risk assessment: %s`,
		scope, findings, content.RiskAssessment)
}
