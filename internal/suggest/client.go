package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client — клиент гео-подсказчика для автодополнения направлений в форме
// поиска. Внешний сервис, к платформенному backend'у отношения не имеет.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Suggestion — один вариант подсказки: город либо аэропорт.
type Suggestion struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Kind     string `json:"kind"` // city | airport
	Code     string `json:"code,omitempty"`
}

type suggestResponse struct {
	Results []struct {
		Title struct {
			Text string `json:"text"`
		} `json:"title"`
		Subtitle struct {
			Text string `json:"text"`
		} `json:"subtitle"`
		Tags []string `json:"tags"`
		Uri  string   `json:"uri"`
	} `json:"results"`
}

// Suggest запрашивает до limit подсказок по префиксу query.
func (c *Client) Suggest(ctx context.Context, query string, limit int) ([]Suggestion, error) {
	if limit <= 0 {
		limit = 7
	}
	params := url.Values{}
	params.Set("text", query)
	params.Set("results", strconv.Itoa(limit))
	params.Set("types", "locality,airport")
	if c.apiKey != "" {
		params.Set("apikey", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v1/suggest?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("suggest request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggest: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed suggestResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("suggest: decode response: %w", err)
	}

	out := make([]Suggestion, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		s := Suggestion{
			Title:    r.Title.Text,
			Subtitle: r.Subtitle.Text,
			Kind:     "city",
		}
		for _, tag := range r.Tags {
			if tag == "airport" {
				s.Kind = "airport"
			}
		}
		out = append(out, s)
	}
	return out, nil
}
