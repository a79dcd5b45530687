package sheets

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

const spreadsheetScope = "https://www.googleapis.com/auth/spreadsheets"

// ClientConfig carries the service-account credentials and target spreadsheet.
type ClientConfig struct {
	SheetID     string
	ClientEmail string
	// PrivateKey may contain literal "\n" escapes (common when the PEM key is
	// stored in a single-line env var); they are unescaped before use.
	PrivateKey string
}

// Client implements Store against the Google Sheets API. The underlying
// authenticated service is created at most once, on first use; concurrent
// first callers converge on the same handle.
type Client struct {
	cfg ClientConfig

	once    sync.Once
	svc     *sheetsapi.Service
	initErr error
}

// NewClient returns an unconnected client. No network traffic happens until
// the first Store call.
func NewClient(cfg ClientConfig) *Client {
	return &Client{cfg: cfg}
}

func (c *Client) service() (*sheetsapi.Service, error) {
	c.once.Do(func() {
		if c.cfg.SheetID == "" || c.cfg.ClientEmail == "" || c.cfg.PrivateKey == "" {
			c.initErr = ErrNotConfigured
			return
		}
		conf := &jwt.Config{
			Email:      c.cfg.ClientEmail,
			PrivateKey: []byte(strings.ReplaceAll(c.cfg.PrivateKey, `\n`, "\n")),
			Scopes:     []string{spreadsheetScope},
			TokenURL:   google.JWTTokenURL,
		}
		svc, err := sheetsapi.NewService(context.Background(), option.WithHTTPClient(conf.Client(context.Background())))
		if err != nil {
			c.initErr = fmt.Errorf("sheets: create service: %w", err)
			return
		}
		c.svc = svc
	})
	return c.svc, c.initErr
}

func (c *Client) ReadColumns(ctx context.Context, sheet, cols string) ([][]string, error) {
	svc, err := c.service()
	if err != nil {
		return nil, err
	}
	resp, err := svc.Spreadsheets.Values.Get(c.cfg.SheetID, rangeRef(sheet, cols)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: read %s!%s: %w", sheet, cols, err)
	}
	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = cellString(v)
		}
		rows[i] = cells
	}
	return rows, nil
}

func (c *Client) Append(ctx context.Context, sheet, cols string, rows [][]interface{}) error {
	svc, err := c.service()
	if err != nil {
		return err
	}
	_, err = svc.Spreadsheets.Values.
		Append(c.cfg.SheetID, rangeRef(sheet, cols), &sheetsapi.ValueRange{Values: rows}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: append %s!%s: %w", sheet, cols, err)
	}
	return nil
}

func (c *Client) Update(ctx context.Context, sheet, cellRange string, rows [][]interface{}) error {
	svc, err := c.service()
	if err != nil {
		return err
	}
	_, err = svc.Spreadsheets.Values.
		Update(c.cfg.SheetID, rangeRef(sheet, cellRange), &sheetsapi.ValueRange{Values: rows}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: update %s!%s: %w", sheet, cellRange, err)
	}
	return nil
}

func (c *Client) SheetExists(ctx context.Context, sheet string) (bool, error) {
	svc, err := c.service()
	if err != nil {
		return false, err
	}
	meta, err := svc.Spreadsheets.Get(c.cfg.SheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("sheets: get spreadsheet: %w", err)
	}
	for _, s := range meta.Sheets {
		if s.Properties != nil && s.Properties.Title == sheet {
			return true, nil
		}
	}
	return false, nil
}

func (c *Client) CreateSheet(ctx context.Context, sheet string) error {
	svc, err := c.service()
	if err != nil {
		return err
	}
	req := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			AddSheet: &sheetsapi.AddSheetRequest{
				Properties: &sheetsapi.SheetProperties{Title: sheet},
			},
		}},
	}
	if _, err := svc.Spreadsheets.BatchUpdate(c.cfg.SheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("sheets: add sheet %s: %w", sheet, err)
	}
	return nil
}

// Configured reports whether credentials are present, without connecting.
func (c *Client) Configured() bool {
	return c.cfg.SheetID != "" && c.cfg.ClientEmail != "" && c.cfg.PrivateKey != ""
}

func rangeRef(sheet, rng string) string {
	return sheet + "!" + rng
}

func cellString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
