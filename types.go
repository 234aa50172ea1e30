package client

import "github.com/shopspring/decimal"

// Currency is an ISO 4217 alphabetic currency code, e.g. "XOF".
type Currency string

type (
	FspName               = string
	AccountID             = int64
	ParticipantCurrencyID = int64
	SettlementID          = int64
	SettlementWindowID    = int64
)

// IsActive is the 0/1 flag the ledger uses for active records.
type IsActive int

const (
	Inactive IsActive = 0
	Active   IsActive = 1
)

type LedgerAccountType string

const (
	AccountTypeInterchangeFee LedgerAccountType = "INTERCHANGE_FEE"
	AccountTypePosition       LedgerAccountType = "POSITION"
	AccountTypeSettlement     LedgerAccountType = "SETTLEMENT"
)

type LedgerParticipant struct {
	Name FspName `json:"name"`
	ID   string  `json:"id"`
	// Created is passed through exactly as received. The ledger returns it as
	// a JSON string containing another JSON string, e.g.
	// "\"2021-08-20T08:27:30.000Z\"".
	Created  string          `json:"created"`
	IsActive IsActive        `json:"isActive"`
	Accounts []LedgerAccount `json:"accounts"`
}

type LedgerAccount struct {
	ID                AccountID         `json:"id"`
	LedgerAccountType LedgerAccountType `json:"ledgerAccountType"`
	Currency          Currency          `json:"currency"`
	IsActive          IsActive          `json:"isActive"`
}

type AccountWithPosition struct {
	LedgerAccount
	Value         float64 `json:"value"`
	ReservedValue float64 `json:"reservedValue,omitempty"`
	ChangedDate   string  `json:"changedDate,omitempty"`
}

const LimitTypeNetDebitCap = "NET_DEBIT_CAP"

type Limit struct {
	Type            string  `json:"type"`
	Value           float64 `json:"value"`
	AlarmPercentage float64 `json:"alarmPercentage,omitempty"`
}

type ParticipantLimit struct {
	Name     FspName  `json:"name"`
	Currency Currency `json:"currency"`
	Limit    Limit    `json:"limit"`
}

// Money is an amount in a currency. Amount is encoded as a JSON string.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency" validate:"required,iso4217"`
}

type SettlementStatus string

const (
	SettlementPendingSettlement    SettlementStatus = "PENDING_SETTLEMENT"
	SettlementPsTransfersRecorded  SettlementStatus = "PS_TRANSFERS_RECORDED"
	SettlementPsTransfersReserved  SettlementStatus = "PS_TRANSFERS_RESERVED"
	SettlementPsTransfersCommitted SettlementStatus = "PS_TRANSFERS_COMMITTED"
	SettlementSettling             SettlementStatus = "SETTLING"
	SettlementSettled              SettlementStatus = "SETTLED"
	SettlementAborted              SettlementStatus = "ABORTED"
)

type SettlementWindowState string

const (
	WindowOpen              SettlementWindowState = "OPEN"
	WindowClosed            SettlementWindowState = "CLOSED"
	WindowPendingSettlement SettlementWindowState = "PENDING_SETTLEMENT"
	WindowSettled           SettlementWindowState = "SETTLED"
	WindowAborted           SettlementWindowState = "ABORTED"
)

type SettlementWindowContent struct {
	ID                 int64                 `json:"id"`
	SettlementWindowID SettlementWindowID    `json:"settlementWindowId,omitempty"`
	State              SettlementWindowState `json:"state"`
	LedgerAccountType  LedgerAccountType     `json:"ledgerAccountType"`
	CurrencyID         Currency              `json:"currencyId"`
	CreatedDate        string                `json:"createdDate"`
	ChangedDate        string                `json:"changedDate,omitempty"`
	SettlementID       SettlementID          `json:"settlementId,omitempty"`
}

type SettlementWindow struct {
	SettlementWindowID SettlementWindowID        `json:"settlementWindowId"`
	Reason             string                    `json:"reason,omitempty"`
	State              SettlementWindowState     `json:"state"`
	CreatedDate        string                    `json:"createdDate"`
	ChangedDate        string                    `json:"changedDate,omitempty"`
	Content            []SettlementWindowContent `json:"content,omitempty"`
}

// SettlementSettlementWindow is a window as embedded in a [Settlement].
type SettlementSettlementWindow struct {
	ID          SettlementWindowID        `json:"id"`
	Reason      string                    `json:"reason,omitempty"`
	State       SettlementWindowState     `json:"state"`
	CreatedDate string                    `json:"createdDate"`
	ChangedDate string                    `json:"changedDate,omitempty"`
	Content     []SettlementWindowContent `json:"content,omitempty"`
}

type NetSettlementAmount struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

type SettlementParticipantAccount struct {
	ID                  ParticipantCurrencyID `json:"id"`
	State               SettlementStatus      `json:"state"`
	Reason              string                `json:"reason"`
	NetSettlementAmount NetSettlementAmount   `json:"netSettlementAmount"`
}

type SettlementParticipant struct {
	ID       int64                          `json:"id"`
	Accounts []SettlementParticipantAccount `json:"accounts"`
}

type Settlement struct {
	ID                SettlementID                 `json:"id"`
	State             SettlementStatus             `json:"state"`
	Reason            string                       `json:"reason"`
	CreatedDate       string                       `json:"createdDate,omitempty"`
	ChangedDate       string                       `json:"changedDate,omitempty"`
	SettlementWindows []SettlementSettlementWindow `json:"settlementWindows"`
	Participants      []SettlementParticipant      `json:"participants"`
}

// HealthStatus is the body of the services' /health endpoint.
type HealthStatus struct {
	Status   string `json:"status"`
	Uptime   int64  `json:"uptime,omitempty"`
	Version  string `json:"versionNumber,omitempty"`
	Services []struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	} `json:"services,omitempty"`
}
