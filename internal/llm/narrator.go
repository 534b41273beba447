// internal/llm/narrator.go
// Ringkasan eksekutif KPI via OpenAI chat completion

package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"alphawell/internal/forecast"
)

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

type Narrator struct {
	api   *openai.Client
	model string
}

// New gagal kalau API key kosong; pemanggil lalu memakai template lokal.
func New(cfg Config) (*Narrator, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return nil, errors.New("OPENAI_API_KEY not set")
	}

	oc := openai.DefaultConfig(key)
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		oc.BaseURL = base
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &Narrator{api: openai.NewClientWithConfig(oc), model: model}, nil
}

func (n *Narrator) Model() string { return n.model }

const systemPrompt = `You are a petroleum investment analyst. Write a concise executive summary
(3-5 sentences, plain text, no markdown) of a single well forecast for an investor.
Mention the verdict, NPV, IRR, EUR, carbon intensity and ESG risk using the numbers given.
Do not invent numbers.`

// Summarize meminta ringkasan naratif satu set KPI.
func (n *Narrator) Summarize(ctx context.Context, well forecast.WellParameters, k forecast.KPISummary) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: n.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(well, k)},
		},
		Temperature: 0.2,
	}

	var cancel context.CancelFunc
	if _, ok := ctx.Deadline(); !ok {
		ctx, cancel = context.WithTimeout(ctx, 18*time.Second)
		defer cancel()
	}

	resp, err := n.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices")
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", errors.New("empty completion")
	}
	return out, nil
}

// BuildPrompt menyusun data KPI sebagai teks key: value.
func BuildPrompt(w forecast.WellParameters, k forecast.KPISummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Well: %s (%s, %s, lateral %.0f ft, horizon %d years)\n",
		w.WellID, w.Formation, w.Trajectory, w.Lateral(), w.HorizonYears())
	fmt.Fprintf(&b, "Verdict: %s\n", k.Verdict)
	fmt.Fprintf(&b, "ESG risk: %s\n", k.ESGRisk)
	fmt.Fprintf(&b, "NPV: $%.2fM\n", k.NPV)
	fmt.Fprintf(&b, "IRR: %.1f%%\n", k.IRR)
	fmt.Fprintf(&b, "EUR oil: %.0f bbl, EUR gas: %.0f mcf\n", k.EUROil, k.EURGas)
	fmt.Fprintf(&b, "Total CO2: %.1f t, avg intensity: %.1f g CO2e/BOE\n", k.TotalCO2, k.AvgIntensity)
	if k.PaybackMonth != nil {
		fmt.Fprintf(&b, "Payback: month %d\n", *k.PaybackMonth)
	} else {
		b.WriteString("Payback: not within horizon\n")
	}
	return b.String()
}
