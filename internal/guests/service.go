package guests

import (
	"context"
	"fmt"
	"strings"
	"time"

	"invites-backend/internal/pkg/names"
	"invites-backend/internal/sheets"
)

// Status is a guest's RSVP state.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusDeclined  Status = "Declined"
)

// Guest is one invitee row. Dates are stored as YYYY-MM-DD strings; empty
// means the event never happened.
type Guest struct {
	Name                string `json:"name"`
	UniqueID            string `json:"uniqueId"`
	Status              Status `json:"status"`
	RSVPAt              string `json:"rsvpAt"`
	IsGodparent         bool   `json:"isGodparent"`
	GodparentAcceptedAt string `json:"godparentAcceptedAt"`
	GodparentFullName   string `json:"godparentFullName"`
	GodparentDeclinedAt string `json:"godparentDeclinedAt"`

	// Row is the 1-indexed physical sheet row; mutating writes target it.
	Row int `json:"-"`
}

// Column positions in the guest sheet. Row decoding, row encoding and write
// ranges all derive from these, so a layout change is a one-line edit here.
const (
	colName = iota
	colUniqueID
	colStatus
	colRSVPAt
	colIsGodparent
	colGodparentAcceptedAt
	colGodparentFullName
	colGodparentDeclinedAt
	colCount
)

func colLetter(col int) string {
	return string(rune('A' + col))
}

func guestSpan() string {
	return colLetter(colName) + ":" + colLetter(colCount-1)
}

// BulkItem is one entry of a bulk invite upload.
type BulkItem struct {
	Name        string `json:"name"`
	IsGodparent bool   `json:"isGodparent"`
}

// Service implements guest CRUD over the tabular store. It keeps no state
// between calls; every operation re-reads what it needs.
type Service struct {
	Store sheets.Store
	Sheet string
	// Now is a test hook for date stamps; nil means time.Now.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) today() string {
	return s.now().UTC().Format("2006-01-02")
}

// Create adds a single guest. The name is title-cased and its slug is
// disambiguated against every existing uniqueId with -1, -2, ... suffixes.
func (s *Service) Create(ctx context.Context, name string, isGodparent bool) (*Guest, error) {
	formatted := names.FormatName(name)
	base := names.Slugify(formatted)

	taken, err := s.takenIDs(ctx)
	if err != nil {
		return nil, err
	}

	g := &Guest{
		Name:        formatted,
		UniqueID:    nextFreeID(base, taken),
		Status:      StatusPending,
		IsGodparent: isGodparent,
	}
	if err := s.Store.Append(ctx, s.Sheet, guestSpan(), [][]interface{}{guestRow(g)}); err != nil {
		return nil, err
	}
	return g, nil
}

// CreateBulk adds many guests with one snapshot read and one append. Slugs
// are disambiguated against existing rows and against earlier items of the
// same batch. Items must arrive with non-empty trimmed names; a name whose
// slug still comes out empty falls back to guest-<timestamp>.
func (s *Service) CreateBulk(ctx context.Context, items []BulkItem) ([]Guest, error) {
	if len(items) == 0 {
		return []Guest{}, nil
	}

	taken, err := s.takenIDs(ctx)
	if err != nil {
		return nil, err
	}

	created := make([]Guest, 0, len(items))
	rows := make([][]interface{}, 0, len(items))
	for _, item := range items {
		formatted := names.FormatName(item.Name)
		base := names.Slugify(formatted)
		if base == "" {
			base = fmt.Sprintf("guest-%d", s.now().UnixMilli())
		}
		id := nextFreeID(base, taken)
		taken[id] = struct{}{}

		g := Guest{
			Name:        formatted,
			UniqueID:    id,
			Status:      StatusPending,
			IsGodparent: item.IsGodparent,
		}
		created = append(created, g)
		rows = append(rows, guestRow(&g))
	}

	if err := s.Store.Append(ctx, s.Sheet, guestSpan(), rows); err != nil {
		return nil, err
	}
	return created, nil
}

// FindByUniqueID scans the sheet top to bottom and returns the first row
// whose identifier matches, with its physical row position. A miss returns
// (nil, nil); absence is a valid outcome, not an error.
func (s *Service) FindByUniqueID(ctx context.Context, id string) (*Guest, error) {
	rows, err := s.Store.ReadColumns(ctx, s.Sheet, guestSpan())
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if i == 0 && isHeaderRow(row) {
			continue
		}
		if cell(row, colUniqueID) == id {
			return guestFromRow(row, i+1), nil
		}
	}
	return nil, nil
}

// List returns every guest row with a non-empty identifier. Blank-identifier
// rows are holes, not guests.
func (s *Service) List(ctx context.Context) ([]Guest, error) {
	rows, err := s.Store.ReadColumns(ctx, s.Sheet, guestSpan())
	if err != nil {
		return nil, err
	}
	out := make([]Guest, 0, len(rows))
	for i, row := range rows {
		if i == 0 && isHeaderRow(row) {
			continue
		}
		if cell(row, colUniqueID) == "" {
			continue
		}
		out = append(out, *guestFromRow(row, i+1))
	}
	return out, nil
}

// UpdateRSVP records a guest's response. Confirming stamps today's date next
// to the status in one combined write; declining touches the status cell only
// and leaves any earlier RSVP date in place.
func (s *Service) UpdateRSVP(ctx context.Context, id string, status Status) error {
	if status != StatusConfirmed && status != StatusDeclined {
		return ErrInvalidStatus
	}
	g, err := s.FindByUniqueID(ctx, id)
	if err != nil {
		return err
	}
	if g == nil {
		return ErrGuestNotFound
	}

	if status == StatusConfirmed {
		rng := fmt.Sprintf("%s%d:%s%d", colLetter(colStatus), g.Row, colLetter(colRSVPAt), g.Row)
		return s.Store.Update(ctx, s.Sheet, rng, [][]interface{}{{string(status), s.today()}})
	}
	rng := fmt.Sprintf("%s%d", colLetter(colStatus), g.Row)
	return s.Store.Update(ctx, s.Sheet, rng, [][]interface{}{{string(status)}})
}

// AcceptGodparentRole stamps today's date and the provided full legal name in
// one combined write. Any prior decline marker is left untouched.
func (s *Service) AcceptGodparentRole(ctx context.Context, id, fullName string) error {
	g, err := s.FindByUniqueID(ctx, id)
	if err != nil {
		return err
	}
	if g == nil {
		return ErrGuestNotFound
	}
	rng := fmt.Sprintf("%s%d:%s%d", colLetter(colGodparentAcceptedAt), g.Row, colLetter(colGodparentFullName), g.Row)
	return s.Store.Update(ctx, s.Sheet, rng, [][]interface{}{{s.today(), fullName}})
}

// DeclineGodparentRole stamps today's date in the decline cell.
func (s *Service) DeclineGodparentRole(ctx context.Context, id string) error {
	g, err := s.FindByUniqueID(ctx, id)
	if err != nil {
		return err
	}
	if g == nil {
		return ErrGuestNotFound
	}
	rng := fmt.Sprintf("%s%d", colLetter(colGodparentDeclinedAt), g.Row)
	return s.Store.Update(ctx, s.Sheet, rng, [][]interface{}{{s.today()}})
}

func (s *Service) takenIDs(ctx context.Context) (map[string]struct{}, error) {
	idCol := colLetter(colUniqueID) + ":" + colLetter(colUniqueID)
	rows, err := s.Store.ReadColumns(ctx, s.Sheet, idCol)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		taken[cell(row, 0)] = struct{}{}
	}
	return taken, nil
}

// nextFreeID probes base, base-1, base-2, ... until an unused id is found.
// Sequential, so tests and reruns are deterministic.
func nextFreeID(base string, taken map[string]struct{}) string {
	id := base
	for suffix := 1; ; suffix++ {
		if _, ok := taken[id]; !ok {
			return id
		}
		id = fmt.Sprintf("%s-%d", base, suffix)
	}
}

func guestRow(g *Guest) []interface{} {
	row := make([]interface{}, colCount)
	row[colName] = g.Name
	row[colUniqueID] = g.UniqueID
	row[colStatus] = string(g.Status)
	row[colRSVPAt] = g.RSVPAt
	row[colIsGodparent] = g.IsGodparent
	row[colGodparentAcceptedAt] = g.GodparentAcceptedAt
	row[colGodparentFullName] = g.GodparentFullName
	row[colGodparentDeclinedAt] = g.GodparentDeclinedAt
	return row
}

func guestFromRow(row []string, position int) *Guest {
	status := Status(cell(row, colStatus))
	if status == "" {
		status = StatusPending
	}
	return &Guest{
		Name:                cell(row, colName),
		UniqueID:            cell(row, colUniqueID),
		Status:              status,
		RSVPAt:              cell(row, colRSVPAt),
		IsGodparent:         strings.EqualFold(cell(row, colIsGodparent), "true"),
		GodparentAcceptedAt: cell(row, colGodparentAcceptedAt),
		GodparentFullName:   cell(row, colGodparentFullName),
		GodparentDeclinedAt: cell(row, colGodparentDeclinedAt),
		Row:                 position,
	}
}

// isHeaderRow reports whether the first sheet row looks like a header: the
// first two cells mention "name" and "unique".
func isHeaderRow(row []string) bool {
	return strings.Contains(strings.ToLower(cell(row, colName)), "name") &&
		strings.Contains(strings.ToLower(cell(row, colUniqueID)), "unique")
}

func cell(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}
