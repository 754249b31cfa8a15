package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-tab-keeper/internal/config"
	"github.com/MKhiriev/go-tab-keeper/internal/logger"
	"github.com/MKhiriev/go-tab-keeper/internal/utils"
	"github.com/MKhiriev/go-tab-keeper/models"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	restPathPrefix = "/rest/v1/"
	upsertPrefer   = "resolution=merge-duplicates,return=minimal"
)

type httpRemoteStore struct {
	client  *utils.HTTPClient
	limiter *rate.Limiter
	apiKey  string

	logger *logger.Logger
}

// NewHTTPRemoteStore constructs an HTTP implementation of [RemoteStore]
// against a PostgREST-compatible endpoint (for example a Supabase project).
//
// Requests are throttled client side with a token bucket of
// remoteCfg.RateLimit requests per second and remoteCfg.RateBurst burst; a
// non-positive rate disables throttling. Returns an error if
// remoteCfg.URL is empty or cannot be parsed.
func NewHTTPRemoteStore(remoteCfg config.ClientRemote, log *logger.Logger) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(remoteCfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote url: %w", err)
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if remoteCfg.RateLimit > 0 {
		burst := remoteCfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(remoteCfg.RateLimit), burst)
	}

	return &httpRemoteStore{
		client:  utils.NewHTTPClient(baseURL, remoteCfg.RequestTimeout),
		limiter: limiter,
		apiKey:  remoteCfg.APIKey,
		logger:  log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// UpsertTasks implements [RemoteStore].
func (h *httpRemoteStore) UpsertTasks(ctx context.Context, tasks []models.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return h.upsert(ctx, models.Task{}.TableName(), tasks)
}

// UpsertTags implements [RemoteStore].
func (h *httpRemoteStore) UpsertTags(ctx context.Context, tags []models.TagRow) error {
	if len(tags) == 0 {
		return nil
	}
	return h.upsert(ctx, models.TagRow{}.TableName(), tags)
}

// UpsertOwners implements [RemoteStore].
func (h *httpRemoteStore) UpsertOwners(ctx context.Context, owners []models.OwnerRow) error {
	if len(owners) == 0 {
		return nil
	}
	return h.upsert(ctx, models.OwnerRow{}.TableName(), owners)
}

// UpsertPermissions implements [RemoteStore]. Permissions are keyed by
// owner_id rather than id.
func (h *httpRemoteStore) UpsertPermissions(ctx context.Context, permissions []models.AppPermissions) error {
	if len(permissions) == 0 {
		return nil
	}
	return h.upsertOn(ctx, models.AppPermissions{}.TableName(), "owner_id", permissions)
}

// UpsertRunningTab implements [RemoteStore]. The singleton is sent as a
// one-element array so the endpoint sees the same shape as every other
// collection.
func (h *httpRemoteStore) UpsertRunningTab(ctx context.Context, tab models.RunningTab) error {
	return h.upsert(ctx, tab.TableName(), []models.RunningTab{tab})
}

// UpsertExpenses implements [RemoteStore].
func (h *httpRemoteStore) UpsertExpenses(ctx context.Context, expenses []models.Expense) error {
	if len(expenses) == 0 {
		return nil
	}
	return h.upsert(ctx, models.Expense{}.TableName(), expenses)
}

// UpsertTabHistory implements [RemoteStore].
func (h *httpRemoteStore) UpsertTabHistory(ctx context.Context, history []models.TabHistoryEntry) error {
	if len(history) == 0 {
		return nil
	}
	return h.upsert(ctx, models.TabHistoryEntry{}.TableName(), history)
}

// UpsertScheduledEvents implements [RemoteStore].
func (h *httpRemoteStore) UpsertScheduledEvents(ctx context.Context, events []models.ScheduledEvent) error {
	if len(events) == 0 {
		return nil
	}
	return h.upsert(ctx, models.ScheduledEvent{}.TableName(), events)
}

func (h *httpRemoteStore) upsert(ctx context.Context, table string, rows any) error {
	return h.upsertOn(ctx, table, "id", rows)
}

// upsertOn POSTs rows to the table endpoint asking for merge-on-conflict
// semantics on the conflict column.
func (h *httpRemoteStore) upsertOn(ctx context.Context, table, conflictColumn string, rows any) error {
	if err := h.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s upsert: rate limiter: %w", table, err)
	}

	resp, err := h.request(ctx).
		SetHeader("Prefer", upsertPrefer).
		SetQueryParam("on_conflict", conflictColumn).
		SetBody(rows).
		Post(restPathPrefix + table)
	if err != nil {
		return fmt.Errorf("%s upsert request: %w", table, err)
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().
			Str("table", table).
			Int("status", resp.StatusCode()).
			Msg("remote rejected upsert")
		return fmt.Errorf("%s upsert: %w", table, err)
	}

	return nil
}

func (h *httpRemoteStore) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.apiKey != "" {
		req.SetHeader("apikey", h.apiKey)
		req.SetHeader("Authorization", "Bearer "+h.apiKey)
	}
	return req
}
