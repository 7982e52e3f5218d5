// Package ai produces a short natural-language analysis of the filtered
// manifests via the Gemini generateContent API. The summary is an optional
// surface: every failure degrades to a fixed Portuguese fallback string and
// nothing here ever returns an error to the caller.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dtnitsch/romaneio/models"
	"github.com/dtnitsch/romaneio/pkg/caching"
)

// Fallback strings shown instead of a summary. They match the language of
// the surrounding product surface (pt-BR).
const (
	MsgNoData = "Nenhum dado para analisar no momento."
	MsgNoText = "Não foi possível gerar a análise no momento."
	MsgError  = "Erro ao processar análise inteligente."
	MsgBusy   = "Uma análise já está em andamento. Aguarde a conclusão."
)

// Config for the Gemini client.
type Config struct {
	APIKey  string        // if empty, falls back to env GEMINI_API_KEY, then API_KEY
	BaseURL string        // default https://generativelanguage.googleapis.com/v1beta
	Model   string        // e.g. "gemini-3-flash-preview"
	Timeout time.Duration // http client timeout
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
	cache      *caching.Cache
	inFlight   atomic.Bool
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-3-flash-preview"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}

// SetCache enables response caching keyed by the generated prompt, so an
// unchanged filtered set within the TTL does not hit the service again.
func (c *Client) SetCache(cache *caching.Cache) {
	c.cache = cache
}

// manifestSummary is the per-manifest tuple fed to the model. Field names
// stay in Portuguese to match the prompt.
type manifestSummary struct {
	Data       string  `json:"data"`
	TotalNotas int     `json:"totalNotas"`
	ValorTotal float64 `json:"valorTotal"`
	FreteTotal float64 `json:"freteTotal"`
}

// Analyze returns a short pt-BR executive summary of the manifests, or one
// of the fallback strings. An empty input short-circuits without contacting
// the service, and only one request may be in flight at a time; the data
// set beneath a running request may be mutated freely since only this
// snapshot is read.
func (c *Client) Analyze(ctx context.Context, manifests []models.Manifest) string {
	if len(manifests) == 0 {
		return MsgNoData
	}
	if !c.inFlight.CompareAndSwap(false, true) {
		return MsgBusy
	}
	defer c.inFlight.Store(false)

	prompt := buildPrompt(manifests)
	if c.cache != nil {
		if cached, ok := c.cache.Get(prompt); ok {
			c.log.Info("ai.analyze.cache_hit", "manifests", len(manifests))
			return string(cached)
		}
	}

	start := time.Now()
	c.log.Info("ai.analyze.start", "model", c.cfg.Model, "manifests", len(manifests))

	text, err := c.generateContent(ctx, prompt)
	if err != nil {
		c.log.Error("ai.analyze.failed",
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return MsgError
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return MsgNoText
	}

	c.log.Info("ai.analyze.ok",
		"chars", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	if c.cache != nil {
		if err := c.cache.Set(prompt, []byte(text)); err != nil {
			c.log.Warn("ai.analyze.cache_write_failed", "error", err)
		}
	}
	return text
}

func buildPrompt(manifests []models.Manifest) string {
	summaries := make([]manifestSummary, len(manifests))
	for i, m := range manifests {
		s := manifestSummary{Data: m.Date, TotalNotas: len(m.Invoices)}
		for _, inv := range m.Invoices {
			s.ValorTotal += inv.Value
			s.FreteTotal += inv.Freight
		}
		summaries[i] = s
	}
	data, _ := json.Marshal(summaries)

	return "Analise os seguintes dados de romaneios de transporte e forneça um " +
		"resumo executivo curto (máximo 3 parágrafos) em Português do Brasil. " +
		"Identifique tendências, o dia com maior volume financeiro e dê uma " +
		"sugestão operacional para otimização de custos de frete baseado nos " +
		"dados: " + string(data)
}

func (c *Client) generateContent(ctx context.Context, prompt string) (string, error) {
	body := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]any{{"text": prompt}}},
		},
	}
	b, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini http error: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("gemini status %d: %s", resp.StatusCode, string(raw))
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}
	if len(out.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in gemini response")
	}

	var parts []string
	for _, p := range out.Candidates[0].Content.Parts {
		parts = append(parts, p.Text)
	}
	return strings.Join(parts, ""), nil
}
