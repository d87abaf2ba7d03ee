package soulalign

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"

	"leen-studio/internal/domain/booking"
	"leen-studio/internal/pkg/config"
	"leen-studio/internal/pkg/errs"
	"leen-studio/internal/usecase/shared"
)

// RelayFallback is substituted whenever the model call fails or returns
// an unusable payload, so a configured client always produces a valid
// pair.
var RelayFallback = booking.Alignment{
	Mantra:         "Breathe in peace, exhale doubt. You are held.",
	Recommendation: "Mat: Grounded Faith",
}

const maxFeelingLen = 500

const promptTemplate = `You are a calming, spiritually-aligned wellness assistant for a faith-based pilates studio called "Leen On Christ".
A client has described how they are feeling today: "%s"

Respond with a JSON object containing two fields:
1. "mantra": A short, comforting, faith-inspired affirmation (max 15 words).
2. "recommendation": One of the following class types that best suits their need: "Reformer: Ascension", "Mat: Grounded Faith", or "Private: Soul Architecture". Just the name, no explanation.

Example output format:
{"mantra": "Your spirit is resilient; let peace flow through you.", "recommendation": "Mat: Grounded Faith"}`

var jsonBlobRegex = regexp.MustCompile(`\{[\s\S]*\}`)

// Client is a thin relay to an external text-generation endpoint.
type Client struct {
	cfg        config.SoulAlignConfig
	httpClient *http.Client
}

func NewClient(cfg config.SoulAlignConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Align sends the truncated feeling through the instruction template and
// extracts the {mantra, recommendation} pair from the model text. Every
// failure past the configuration check resolves to RelayFallback; callers
// with a configured key never need an error path.
func (c *Client) Align(ctx context.Context, feeling string) (booking.Alignment, error) {
	if c.cfg.APIKey == "" {
		return booking.Alignment{}, shared.ErrAlignerNotConfigured
	}

	runes := []rune(feeling)
	if len(runes) > maxFeelingLen {
		feeling = string(runes[:maxFeelingLen])
	}

	result, err := c.call(ctx, feeling)
	if err != nil {
		slog.Warn("soul alignment call failed, using fallback", "error", err.Error())
		return RelayFallback, nil
	}
	return result, nil
}

func (c *Client) call(ctx context.Context, feeling string) (booking.Alignment, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf(promptTemplate, feeling)}}}},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			MaxOutputTokens: 150,
		},
	})
	if err != nil {
		return booking.Alignment{}, errs.Wrap(err, "failed to encode generate request")
	}

	url := c.cfg.BaseURL + "?key=" + c.cfg.APIKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return booking.Alignment{}, errs.Wrap(err, "failed to build generate request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return booking.Alignment{}, errs.Wrap(err, "generate request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return booking.Alignment{}, errs.New(fmt.Sprintf("generate request returned status %d", resp.StatusCode))
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return booking.Alignment{}, errs.Wrap(err, "failed to read generate response")
	}

	var decoded generateResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return booking.Alignment{}, errs.Wrap(err, "failed to decode generate response")
	}

	text := ""
	if len(decoded.Candidates) > 0 && len(decoded.Candidates[0].Content.Parts) > 0 {
		text = decoded.Candidates[0].Content.Parts[0].Text
	}

	blob := jsonBlobRegex.FindString(text)
	if blob == "" {
		return booking.Alignment{}, errs.New("no JSON object in model output")
	}

	var parsed struct {
		Mantra         string `json:"mantra"`
		Recommendation string `json:"recommendation"`
	}
	if err := json.Unmarshal([]byte(blob), &parsed); err != nil {
		return booking.Alignment{}, errs.Wrap(err, "failed to parse model output")
	}
	if parsed.Mantra == "" || parsed.Recommendation == "" {
		return booking.Alignment{}, errs.New("model output missing required fields")
	}

	return booking.Alignment{
		Mantra:         parsed.Mantra,
		Recommendation: parsed.Recommendation,
	}, nil
}
