package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

// FundsAction is the kind of funds movement recorded by [Client.RecordFunds].
type FundsAction string

const (
	FundsIn  FundsAction = "recordFundsIn"
	FundsOut FundsAction = "recordFundsOutPrepareReserve"
)

type CreateParticipantRequest struct {
	Name     FspName  `json:"name" validate:"fspname"`
	Currency Currency `json:"currency,omitempty" validate:"omitempty,iso4217"`
}

type InitialPositionAndLimitsRequest struct {
	Currency        Currency `json:"currency" validate:"required,iso4217"`
	Limit           Limit    `json:"limit"`
	InitialPosition float64  `json:"initialPosition"`
}

type FundsRequest struct {
	// TransferID identifies the transfer. A UUID is generated when empty.
	TransferID        string      `json:"transferId" validate:"omitempty,uuid"`
	ExternalReference string      `json:"externalReference" validate:"required"`
	Action            FundsAction `json:"action" validate:"oneof=recordFundsIn recordFundsOutPrepareReserve"`
	Reason            string      `json:"reason" validate:"required"`
	Amount            Money       `json:"amount"`
}

// GetParticipants lists every participant known to the ledger.
func (c *Client) GetParticipants(ctx context.Context, opts ...CallOption) (Result[[]LedgerParticipant], error) {
	return call[[]LedgerParticipant](ctx, c, requestSpec{
		method: http.MethodGet,
		path:   "/participants",
	}, opts)
}

func (c *Client) GetParticipant(ctx context.Context, name FspName, opts ...CallOption) (Result[LedgerParticipant], error) {
	return call[LedgerParticipant](ctx, c, requestSpec{
		method:     http.MethodGet,
		path:       "/participants/{name}",
		pathParams: map[string]string{"name": name},
	}, opts)
}

// GetParticipantsLimits lists the limits of every participant.
func (c *Client) GetParticipantsLimits(ctx context.Context, opts ...CallOption) (Result[[]ParticipantLimit], error) {
	return call[[]ParticipantLimit](ctx, c, requestSpec{
		method: http.MethodGet,
		path:   "/participants/limits",
	}, opts)
}

// GetParticipantAccounts lists the accounts of a participant together with
// their current positions.
func (c *Client) GetParticipantAccounts(ctx context.Context, name FspName, opts ...CallOption) (Result[[]AccountWithPosition], error) {
	return call[[]AccountWithPosition](ctx, c, requestSpec{
		method:     http.MethodGet,
		path:       "/participants/{name}/accounts",
		pathParams: map[string]string{"name": name},
	}, opts)
}

// CreateParticipant registers a participant. The name must match
// ^[0-9a-zA-Z]{2,30}$; otherwise an error wrapping [ErrValidation] is
// returned and no request is sent.
func (c *Client) CreateParticipant(ctx context.Context, req CreateParticipantRequest, opts ...CallOption) (Result[LedgerParticipant], error) {
	if err := ValidateFspName(req.Name); err != nil {
		return Result[LedgerParticipant]{}, err
	}

	if err := validateStruct(req); err != nil {
		return Result[LedgerParticipant]{}, err
	}

	return call[LedgerParticipant](ctx, c, requestSpec{
		method: http.MethodPost,
		path:   "/participants",
		body:   req,
	}, opts)
}

// SetInitialPositionAndLimits sets the initial position and net debit cap of
// a participant for one currency.
func (c *Client) SetInitialPositionAndLimits(ctx context.Context, name FspName, req InitialPositionAndLimitsRequest, opts ...CallOption) (Result[NoContent], error) {
	if err := ValidateFspName(name); err != nil {
		return Result[NoContent]{}, err
	}

	if req.Limit.Type == "" {
		req.Limit.Type = LimitTypeNetDebitCap
	}

	if err := validateStruct(req); err != nil {
		return Result[NoContent]{}, err
	}

	return call[NoContent](ctx, c, requestSpec{
		method:     http.MethodPost,
		path:       "/participants/{name}/initialPositionAndLimits",
		pathParams: map[string]string{"name": name},
		body:       req,
	}, opts)
}

// RecordFunds records funds in or out of a participant settlement account.
func (c *Client) RecordFunds(ctx context.Context, name FspName, accountID AccountID, req FundsRequest, opts ...CallOption) (Result[NoContent], error) {
	if err := ValidateFspName(name); err != nil {
		return Result[NoContent]{}, err
	}

	if req.TransferID == "" {
		req.TransferID = uuid.NewString()
	}

	if err := validateStruct(req); err != nil {
		return Result[NoContent]{}, err
	}

	if !req.Amount.Amount.IsPositive() {
		return Result[NoContent]{}, validationErrorf("amount must be positive, got %s", req.Amount.Amount)
	}

	return call[NoContent](ctx, c, requestSpec{
		method: http.MethodPost,
		path:   "/participants/{name}/accounts/{accountId}",
		pathParams: map[string]string{
			"name":      name,
			"accountId": strconv.FormatInt(accountID, 10),
		},
		body: req,
	}, opts)
}
