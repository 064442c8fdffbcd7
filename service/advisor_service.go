package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"rental-optimizer/config"
	"rental-optimizer/domain"
)

// AdvisorService turns a comparison into a plain-language explanation.
// With an API key configured it asks an LLM; otherwise it falls back to a
// canned explanation built from the numbers. Either way the comparison
// result itself never depends on the advisor.
type AdvisorService struct {
	apiKey     string
	apiURL     string
	model      string
	enabled    bool
	httpClient *http.Client
	log        *zap.Logger
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func NewAdvisorService(cfg config.AdvisorConfig, log *zap.Logger) *AdvisorService {
	return &AdvisorService{
		apiKey:  cfg.APIKey,
		apiURL:  cfg.BaseURL,
		model:   cfg.Model,
		enabled: cfg.Enabled && cfg.APIKey != "",
		httpClient: &http.Client{
			Timeout: config.GetDuration(cfg.Timeout),
		},
		log: log,
	}
}

// ExplainComparison produces the recommendation text for a comparison.
func (s *AdvisorService) ExplainComparison(
	scenario domain.Scenario,
	result domain.ComparisonResult,
) string {
	if !s.enabled {
		return s.fallbackExplanation(result)
	}

	payback := "not recoverable under the current assumptions"
	if result.PaybackYears != nil {
		payback = fmt.Sprintf("%.1f years", *result.PaybackYears)
	}

	prompt := fmt.Sprintf(`Analyze this rental investment comparison and write a clear, realistic explanation for the investor.

PROPERTY:
- Purchase price: EUR %.0f
- Long-term: EUR %.0f net cash flow per year, %.2f%% net yield
- Short-term: EUR %.0f net cash flow per year, %.2f%% net yield (%.0f%% occupancy assumed)
- Recommended strategy: %s
- Best cash-on-cash ROI: %.2f%%
- Investment grade: %s
- Payback period: %s

INSTRUCTIONS:
1. Explain in plain language why the recommended strategy comes out ahead for this property.
2. Mention the net yield difference (%.2f percentage points) and the annual income difference (EUR %.0f).
3. Note the trade-off: short-term rentals need active management and are exposed to local regulation, long-term rentals are more stable.
4. Be realistic, not promotional.

Write 3-4 sentences.`,
		scenario.PurchasePrice,
		result.LongTerm.NetCashFlow, result.LongTerm.NetYield*100,
		result.ShortTerm.NetCashFlow, result.ShortTerm.NetYield*100, scenario.OccupancyRate*100,
		result.BestStrategy,
		result.BestROI*100,
		result.Grade,
		payback,
		result.NetYieldDifference*100,
		result.IncomeDifference)

	explanation, err := s.callLLM(prompt)
	if err != nil {
		s.log.Warn("advisor call failed, using fallback explanation", zap.Error(err))
		return s.fallbackExplanation(result)
	}
	return explanation
}

func (s *AdvisorService) callLLM(prompt string) (string, error) {
	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: "You are a property investment advisor. You explain rental yield and ROI comparisons in clear, sober language, always noting the assumptions behind the numbers and the risks of each rental strategy. You never promise returns.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 300,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", err
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no response from advisor")
	}

	return chatResp.Choices[0].Message.Content, nil
}

func (s *AdvisorService) fallbackExplanation(result domain.ComparisonResult) string {
	var b strings.Builder

	diffPts := result.NetYieldDifference * 100
	switch {
	case result.NetYieldDifference < 0.001:
		b.WriteString(fmt.Sprintf(
			"Both strategies show similar profitability: EUR %.0f/year long-term vs EUR %.0f/year short-term.",
			result.LongTerm.NetCashFlow, result.ShortTerm.NetCashFlow))
	case result.BestStrategy == domain.StrategyShortTerm:
		b.WriteString(fmt.Sprintf(
			"Short-term rental is the stronger option: %.2f percentage points more net yield and EUR %.0f more net income per year. It requires active management and depends on local short-stay regulation.",
			diffPts, result.IncomeDifference))
	default:
		b.WriteString(fmt.Sprintf(
			"Long-term rental is the stronger option: %.2f percentage points more net yield and EUR %.0f more net income per year, with more stable and predictable income.",
			diffPts, result.IncomeDifference))
	}

	if result.PaybackYears != nil {
		b.WriteString(fmt.Sprintf(" The invested capital is recovered in about %.1f years.", *result.PaybackYears))
	} else {
		b.WriteString(" Under the current assumptions the invested capital is not recovered from cash flow.")
	}

	b.WriteString(fmt.Sprintf(" Investment grade: %s (best cash-on-cash ROI %.2f%%).",
		result.Grade, result.BestROI*100))

	return b.String()
}
