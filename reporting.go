package client

import (
	"context"
	"net/http"
	"strconv"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Report is an undecoded report download.
type Report struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// GetSettlementInitiationReport downloads the settlement initiation
// spreadsheet for a settlement. The response is returned as-is whatever its
// status; it is not interpreted as a Mojaloop error.
func (c *Client) GetSettlementInitiationReport(ctx context.Context, settlementID SettlementID) (*Report, error) {
	req, err := c.newRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetHeader("Accept", xlsxContentType).
		SetQueryParam("settlementId", strconv.FormatInt(settlementID, 10)).
		Execute(http.MethodGet, "/settlementInitiation.xlsx")
	if err != nil {
		return nil, err
	}

	return &Report{
		StatusCode:  resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
		Body:        resp.Body(),
	}, nil
}
