package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"MarketAdvisor/internal/model"
)

// NewsSentimentFetcher implements SentimentFetcher using the NewsAPI
// "everything" endpoint and a small keyword lexicon. It is a deliberately
// thin collaborator: headline polarity, averaged and rescaled to [0,1].
type NewsSentimentFetcher struct {
	APIKey string
	Client *http.Client
}

// NewNewsSentimentFetcher creates a NewsAPI-backed sentiment fetcher.
func NewNewsSentimentFetcher(apiKey, proxyURL string) *NewsSentimentFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &NewsSentimentFetcher{
		APIKey: apiKey,
		Client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
	}
}

var positiveWords = []string{
	"beat", "strong", "growth", "profit", "surge", "record", "upgrade",
	"rally", "gain", "outperform", "expansion", "partnership", "dividend",
}

var negativeWords = []string{
	"miss", "weak", "loss", "decline", "plunge", "downgrade", "lawsuit",
	"fraud", "cut", "layoff", "underperform", "recall", "probe",
}

type newsResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"articles"`
}

// FetchSentiment fetches recent headlines for the symbol and scores their
// polarity. Without an API key it reports the neutral default rather than
// failing, so scoring never depends on the collaborator being configured.
func (f *NewsSentimentFetcher) FetchSentiment(ctx context.Context, symbol string) (model.SentimentSignal, error) {
	if f.APIKey == "" {
		return model.NeutralSentiment(), nil
	}

	u := fmt.Sprintf("https://newsapi.org/v2/everything?q=%s&sortBy=publishedAt&language=en&pageSize=20&apiKey=%s",
		url.QueryEscape(symbol), url.QueryEscape(f.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return model.NeutralSentiment(), err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return model.NeutralSentiment(), fmt.Errorf("news fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return model.NeutralSentiment(), fmt.Errorf("news fetch: status %d", resp.StatusCode)
	}

	var nr newsResponse
	if err := json.NewDecoder(resp.Body).Decode(&nr); err != nil {
		return model.NeutralSentiment(), fmt.Errorf("news decode: %w", err)
	}
	if len(nr.Articles) == 0 {
		return model.NeutralSentiment(), nil
	}

	var sum float64
	for _, a := range nr.Articles {
		sum += headlinePolarity(a.Title + " " + a.Description)
	}
	mean := sum / float64(len(nr.Articles))

	return model.SentimentSignal{
		Score:       (mean + 1) / 2, // [-1,1] -> [0,1]
		SampleCount: len(nr.Articles),
	}, nil
}

// headlinePolarity scores one text in [-1,1] by lexicon word counts.
func headlinePolarity(text string) float64 {
	lower := strings.ToLower(text)
	var pos, neg int
	for _, w := range positiveWords {
		pos += strings.Count(lower, w)
	}
	for _, w := range negativeWords {
		neg += strings.Count(lower, w)
	}
	if pos+neg == 0 {
		return 0
	}
	return float64(pos-neg) / float64(pos+neg)
}
