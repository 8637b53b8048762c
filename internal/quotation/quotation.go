package quotation

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/fenestra/internal/pricing"
	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

var (
	ErrNotFound               = errors.New("quotation not found")
	ErrInvalidStatus          = errors.New("invalid quotation status")
	ErrMissingClientName      = errors.New("client name is required")
	ErrDuplicateSpecification = errors.New("duplicate specification id")
)

// Status is a workflow tag. Any status may be overwritten by any other.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusArchived  Status = "archived"
)

var Statuses = []Status{StatusDraft, StatusSubmitted, StatusApproved, StatusRejected, StatusArchived}

func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Quotation is the aggregate root: client and company details, the ordered
// window specifications and the totals derived from them.
type Quotation struct {
	ID      uuid.UUID
	Number  string
	Status  Status
	Client  Client
	Company Company
	Specs   []window.Specification
	Charges Charges
	GSTRate float64
	Notes   string

	// Pricing is recomputed from Specs, Charges and GSTRate on every read and write.
	Pricing pricing.Totals

	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

type Client struct {
	Name        string `json:"name"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	SiteAddress string `json:"siteAddress,omitempty"`
}

type Company struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	GSTIN   string `json:"gstin,omitempty"`
	Website string `json:"website,omitempty"`
}

// Charges are flat amounts added once per quotation.
type Charges struct {
	Transport float64 `json:"transport"`
	Loading   float64 `json:"loading"`
}

func (c Charges) Total() float64 {
	return c.Transport + c.Loading
}

// Reprice refreshes every specification's computed values and the totals.
func (q *Quotation) Reprice() {
	pricing.ApplyAll(q.Specs)
	q.Pricing = pricing.TotalsOf(q.Specs, q.Charges.Total(), q.GSTRate)
}

// Units returns the number of window units across all specifications.
func (q *Quotation) Units() int {
	n := 0
	for _, s := range q.Specs {
		n += max(s.Pricing.Quantity, 0)
	}

	return n
}
