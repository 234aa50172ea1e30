package client

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

// dateTimeLayout is the timestamp format accepted by the settlement API.
const dateTimeLayout = "2006-01-02T15:04:05.000Z"

// SettlementsQuery filters [Client.GetSettlements]. At least one field must
// be set; zero values are omitted.
type SettlementsQuery struct {
	Currency                     Currency              `validate:"omitempty,iso4217"`
	ParticipantID                int64                 `validate:"gte=0"`
	SettlementWindowID           SettlementWindowID    `validate:"gte=0"`
	AccountID                    ParticipantCurrencyID `validate:"gte=0"`
	State                        SettlementStatus
	FromDateTime                 time.Time
	ToDateTime                   time.Time
	FromSettlementWindowDateTime time.Time
	ToSettlementWindowDateTime   time.Time
}

func (q SettlementsQuery) params() map[string]string {
	p := make(map[string]string)
	setString(p, "currency", string(q.Currency))
	setID(p, "participantId", q.ParticipantID)
	setID(p, "settlementWindowId", q.SettlementWindowID)
	setID(p, "accountId", q.AccountID)
	setString(p, "state", string(q.State))
	setTime(p, "fromDateTime", q.FromDateTime)
	setTime(p, "toDateTime", q.ToDateTime)
	setTime(p, "fromSettlementWindowDateTime", q.FromSettlementWindowDateTime)
	setTime(p, "toSettlementWindowDateTime", q.ToSettlementWindowDateTime)
	return p
}

// SettlementWindowsQuery filters [Client.GetSettlementWindows]. At least one
// field must be set; zero values are omitted.
type SettlementWindowsQuery struct {
	Currency      Currency `validate:"omitempty,iso4217"`
	ParticipantID int64    `validate:"gte=0"`
	State         SettlementWindowState
	FromDateTime  time.Time
	ToDateTime    time.Time
}

func (q SettlementWindowsQuery) params() map[string]string {
	p := make(map[string]string)
	setString(p, "currency", string(q.Currency))
	setID(p, "participantId", q.ParticipantID)
	setString(p, "state", string(q.State))
	setTime(p, "fromDateTime", q.FromDateTime)
	setTime(p, "toDateTime", q.ToDateTime)
	return p
}

type SettlementWindowRef struct {
	ID SettlementWindowID `json:"id" validate:"gt=0"`
}

type CreateSettlementRequest struct {
	SettlementModel   string                `json:"settlementModel" validate:"required"`
	Reason            string                `json:"reason" validate:"required"`
	SettlementWindows []SettlementWindowRef `json:"settlementWindows" validate:"min=1,dive"`
}

type closeSettlementWindowRequest struct {
	State  SettlementWindowState `json:"state"`
	Reason string                `json:"reason"`
}

// GetSettlements lists settlements matching query. A query that matches
// nothing yields an empty list, not an error.
func (c *Client) GetSettlements(ctx context.Context, query SettlementsQuery, opts ...CallOption) (Result[[]Settlement], error) {
	params, err := queryParams(query, query.params())
	if err != nil {
		return Result[[]Settlement]{}, err
	}

	return callList[Settlement](ctx, c, requestSpec{
		method: http.MethodGet,
		path:   "/v2/settlements",
		query:  params,
	}, opts)
}

func (c *Client) GetSettlement(ctx context.Context, id SettlementID, opts ...CallOption) (Result[Settlement], error) {
	return call[Settlement](ctx, c, requestSpec{
		method:     http.MethodGet,
		path:       "/v2/settlements/{id}",
		pathParams: map[string]string{"id": strconv.FormatInt(id, 10)},
	}, opts)
}

// CreateSettlement creates a settlement over the given windows.
func (c *Client) CreateSettlement(ctx context.Context, req CreateSettlementRequest, opts ...CallOption) (Result[Settlement], error) {
	if err := validateStruct(req); err != nil {
		return Result[Settlement]{}, err
	}

	return call[Settlement](ctx, c, requestSpec{
		method: http.MethodPost,
		path:   "/v2/settlements",
		body:   req,
	}, opts)
}

// GetSettlementWindows lists settlement windows matching query. A query that
// matches nothing yields an empty list, not an error.
func (c *Client) GetSettlementWindows(ctx context.Context, query SettlementWindowsQuery, opts ...CallOption) (Result[[]SettlementWindow], error) {
	params, err := queryParams(query, query.params())
	if err != nil {
		return Result[[]SettlementWindow]{}, err
	}

	return callList[SettlementWindow](ctx, c, requestSpec{
		method: http.MethodGet,
		path:   "/v2/settlementWindows",
		query:  params,
	}, opts)
}

func (c *Client) GetSettlementWindow(ctx context.Context, id SettlementWindowID, opts ...CallOption) (Result[SettlementWindow], error) {
	return call[SettlementWindow](ctx, c, requestSpec{
		method:     http.MethodGet,
		path:       "/v2/settlementWindows/{id}",
		pathParams: map[string]string{"id": strconv.FormatInt(id, 10)},
	}, opts)
}

// CloseSettlementWindow closes the window identified by id. The returned
// window is the newly opened one, not the window that was closed.
func (c *Client) CloseSettlementWindow(ctx context.Context, id SettlementWindowID, reason string, opts ...CallOption) (Result[SettlementWindow], error) {
	return call[SettlementWindow](ctx, c, requestSpec{
		method:     http.MethodPost,
		path:       "/v2/settlementWindows/{id}",
		pathParams: map[string]string{"id": strconv.FormatInt(id, 10)},
		body: closeSettlementWindowRequest{
			State:  WindowClosed,
			Reason: reason,
		},
	}, opts)
}

func queryParams(query any, params map[string]string) (map[string]string, error) {
	if err := validateStruct(query); err != nil {
		return nil, err
	}
	if len(params) == 0 {
		return nil, validationErrorf("at least one query filter must be set")
	}
	return params, nil
}

func setString(p map[string]string, key, value string) {
	if value != "" {
		p[key] = value
	}
}

func setID(p map[string]string, key string, value int64) {
	if value != 0 {
		p[key] = strconv.FormatInt(value, 10)
	}
}

func setTime(p map[string]string, key string, value time.Time) {
	if !value.IsZero() {
		p[key] = value.UTC().Format(dateTimeLayout)
	}
}
