package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"media_syncer/internal/domain"
)

// ratingRegion selects which country's certification becomes the
// normalized age rating.
const ratingRegion = "US"

const dateLayout = "2006-01-02"

// Config holds TMDB client configuration.
type Config struct {
	BaseURL        string
	APIKey         string
	Language       string
	Timeout        time.Duration
	RequestDelay   time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client fetches one title at a time from the TMDB API. It is the only
// component allowed to make outbound network calls, and it paces them:
// a fixed inter-call delay plus a bounded retry loop for transient
// failures. Callers are sequential by design, so the throttle state
// needs no locking.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	language       string
	requestDelay   time.Duration
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	lastRequest    time.Time
	logger         *slog.Logger
}

// New creates a TMDB client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		apiKey:         cfg.APIKey,
		language:       cfg.Language,
		requestDelay:   cfg.RequestDelay,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", "tmdb"),
	}
}

// FetchTitle retrieves one title's metadata and credits. It returns
// domain.ErrTitleNotFound when the title is gone upstream, and wraps
// every other failure (network, non-200, malformed payload) in
// domain.ErrTransient after the retry budget is spent.
func (c *Client) FetchTitle(ctx context.Context, externalID int64, kind domain.MediaKind) (*domain.TitlePayload, error) {
	if err := c.throttle(ctx); err != nil {
		return nil, err
	}

	var err error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		var payload *domain.TitlePayload
		payload, err = c.fetchOnce(ctx, externalID, kind)
		if err == nil {
			return payload, nil
		}
		if errors.Is(err, domain.ErrTitleNotFound) {
			return nil, err
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("title fetch failed, retrying",
			"external_id", externalID,
			"kind", kind,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("%w: after %d attempts: %v", domain.ErrTransient, c.maxAttempts, err)
}

func (c *Client) fetchOnce(ctx context.Context, externalID int64, kind domain.MediaKind) (*domain.TitlePayload, error) {
	switch kind {
	case domain.KindMovie:
		var details MovieDetails
		if err := c.doRequest(ctx, fmt.Sprintf("%s/movie/%d", c.baseURL, externalID), "releases,credits", &details); err != nil {
			return nil, err
		}
		return c.transformMovie(&details), nil
	case domain.KindSeries:
		var details TVDetails
		if err := c.doRequest(ctx, fmt.Sprintf("%s/tv/%d", c.baseURL, externalID), "content_ratings,credits", &details); err != nil {
			return nil, err
		}
		return c.transformTV(&details), nil
	default:
		return nil, fmt.Errorf("%w: unknown media kind %q", domain.ErrTransient, kind)
	}
}

func (c *Client) doRequest(ctx context.Context, endpoint, appendTo string, out any) error {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("append_to_response", appendTo)
	if c.language != "" {
		params.Set("language", c.language)
	}
	parsed.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "MediaSyncer/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrTitleNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// throttle enforces the fixed courtesy delay between successive calls.
func (c *Client) throttle(ctx context.Context) error {
	if c.requestDelay <= 0 {
		return nil
	}

	wait := c.requestDelay - time.Since(c.lastRequest)
	if wait > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	c.lastRequest = time.Now()
	return nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}

func (c *Client) transformMovie(details *MovieDetails) *domain.TitlePayload {
	payload := &domain.TitlePayload{
		ExternalID:   details.ID,
		Kind:         domain.KindMovie,
		Overview:     details.Overview,
		BackdropPath: details.BackdropPath,
		ReleaseDate:  c.parseDate(details.ID, details.ReleaseDate),
		Popularity:   details.Popularity,
		Rating:       movieCertification(details.Releases),
	}
	payload.Cast, payload.Crew = transformCredits(details.Credits)
	return payload
}

func (c *Client) transformTV(details *TVDetails) *domain.TitlePayload {
	payload := &domain.TitlePayload{
		ExternalID:   details.ID,
		Kind:         domain.KindSeries,
		Overview:     details.Overview,
		BackdropPath: details.BackdropPath,
		ReleaseDate:  c.parseDate(details.ID, details.FirstAirDate),
		Popularity:   details.Popularity,
		Rating:       tvRating(details.ContentRatings),
	}
	payload.Cast, payload.Crew = transformCredits(details.Credits)
	return payload
}

func (c *Client) parseDate(externalID int64, value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		c.logger.Warn("failed to parse release date",
			"external_id", externalID,
			"date", value,
		)
		return nil
	}
	return &parsed
}

func movieCertification(releases Releases) string {
	for _, country := range releases.Countries {
		if country.CountryCode == ratingRegion && country.Certification != "" {
			return country.Certification
		}
	}
	return ""
}

func tvRating(ratings ContentRatings) string {
	for _, result := range ratings.Results {
		if result.CountryCode == ratingRegion && result.Rating != "" {
			return result.Rating
		}
	}
	return ""
}

func transformCredits(credits Credits) (cast, crew []domain.Credit) {
	for _, member := range credits.Cast {
		cast = append(cast, domain.Credit{
			PersonID:   member.ID,
			Name:       member.Name,
			AvatarPath: member.ProfilePath,
			Order:      member.Order,
		})
	}
	for _, member := range credits.Crew {
		crew = append(crew, domain.Credit{
			PersonID:   member.ID,
			Name:       member.Name,
			AvatarPath: member.ProfilePath,
			Job:        member.Job,
		})
	}
	return cast, crew
}
