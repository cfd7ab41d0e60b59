// Package bls is a thin client for the Bureau of Labor Statistics public
// timeseries API. Without an API key it serves canned figures so the rest of
// the pipeline stays exercisable in development.
package bls

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/ports"
)

// employmentSeries is total nonfarm employment, the default series used to
// gauge overall labor-market direction.
const employmentSeries = "CES0000000001"

const defaultTimeout = 10 * time.Second

// Config captures the settings for the BLS API.
type Config struct {
	APIKey  string
	BaseURL string
}

// Client calls the BLS timeseries endpoint.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(cfg Config, log zerolog.Logger) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		log:     log,
	}
}

type seriesRequest struct {
	SeriesID        []string `json:"seriesid"`
	RegistrationKey string   `json:"registrationkey"`
	StartYear       string   `json:"startyear"`
	EndYear         string   `json:"endyear"`
}

type seriesPoint struct {
	Year   string `json:"year"`
	Period string `json:"period"`
	Value  string `json:"value"`
}

type seriesResponse struct {
	Status  string `json:"status"`
	Results struct {
		Series []struct {
			Data []seriesPoint `json:"data"`
		} `json:"series"`
	} `json:"Results"`
}

// AnalyzeSkillDemand derives a demand score and growth rate for a skill from
// the employment series. This is a coarse signal: the series is economy-wide,
// so the per-skill value mostly tracks overall market direction.
func (c *Client) AnalyzeSkillDemand(ctx context.Context, skill string) (*ports.SkillDemand, error) {
	if c.apiKey == "" {
		return &ports.SkillDemand{
			Skill:       skill,
			DemandScore: 75.5,
			GrowthRate:  1.2,
			Mock:        true,
		}, nil
	}

	points, err := c.fetchSeries(ctx, employmentSeries)
	if err != nil {
		return nil, err
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("bls: series %s returned %d points", employmentSeries, len(points))
	}

	// Data arrives newest first.
	latest, err := strconv.ParseFloat(points[0].Value, 64)
	if err != nil {
		return nil, fmt.Errorf("bls: parse value: %w", err)
	}
	oldest, err := strconv.ParseFloat(points[len(points)-1].Value, 64)
	if err != nil || oldest == 0 {
		return nil, fmt.Errorf("bls: parse value: %w", err)
	}

	growth := (latest - oldest) / oldest * 100
	score := 50 + growth*20
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return &ports.SkillDemand{Skill: skill, DemandScore: score, GrowthRate: growth}, nil
}

func (c *Client) fetchSeries(ctx context.Context, seriesID string) ([]seriesPoint, error) {
	payload, err := json.Marshal(seriesRequest{
		SeriesID:        []string{seriesID},
		RegistrationKey: c.apiKey,
		StartYear:       "2023",
		EndYear:         "2024",
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bls: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bls: unexpected status %d", resp.StatusCode)
	}

	var sr seriesResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("bls: decode response: %w", err)
	}
	if sr.Status != "REQUEST_SUCCEEDED" || len(sr.Results.Series) == 0 {
		return nil, fmt.Errorf("bls: request not successful (status %q)", sr.Status)
	}

	return sr.Results.Series[0].Data, nil
}
