// Package sheets reads article rows from the Google Sheets source.
package sheets

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	sheetsapi "google.golang.org/api/sheets/v4"
	"google.golang.org/api/option"

	"github.com/degennews/web/config"
	"github.com/degennews/web/status"
)

// readRange covers columns A-G of the articles tab. Row 1 is the header
// and is excluded from the range.
const readRange = "Crypto Articles for Dexcelerate!A2:G"

// Client is a read-only accessor for the articles spreadsheet. It
// implements articles.RowFetcher.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

// NewClient builds a Sheets API service from the service-account
// credentials in the config. Missing spreadsheet configuration is a
// construction-time failure, not a request-time one.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	if cfg.Sheets.SpreadsheetID == "" || cfg.Sheets.Credentials == "" {
		return nil, status.ErrNotConfigured
	}

	jwt, err := google.JWTConfigFromJSON(
		[]byte(cfg.Sheets.Credentials),
		sheetsapi.SpreadsheetsReadonlyScope,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing service account credentials: %s", status.ErrNotConfigured, err)
	}

	svc, err := sheetsapi.NewService(ctx, option.WithTokenSource(jwt.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.Sheets.SpreadsheetID,
	}, nil
}

// FetchRows reads the full article range and flattens each row's cells to
// strings. Trailing empty cells are simply absent from a row; callers
// default them.
func (c *Client) FetchRows(ctx context.Context) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.
		Get(c.spreadsheetID, readRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, WrapError(err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, v := range raw {
			if v == nil {
				row = append(row, "")
				continue
			}
			row = append(row, fmt.Sprint(v))
		}
		rows = append(rows, row)
	}
	return rows, nil
}
