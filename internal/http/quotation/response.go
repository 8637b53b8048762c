package quotation

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/fenestra/internal/pricing"
	"github.com/MrJamesThe3rd/fenestra/internal/quotation"
	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

type quotationResponse struct {
	ID          uuid.UUID              `json:"id"`
	Number      string                 `json:"quotationNumber,omitempty"`
	Status      quotation.Status       `json:"status"`
	Client      quotation.Client       `json:"client"`
	Company     quotation.Company      `json:"company"`
	WindowSpecs []window.Specification `json:"windowSpecs"`
	Charges     quotation.Charges      `json:"charges"`
	Pricing     pricing.Totals         `json:"pricing"`
	Units       int                    `json:"units"`
	Notes       string                 `json:"notes,omitempty"`
	CreatedAt   *time.Time             `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time             `json:"updatedAt,omitempty"`
}

type summaryResponse struct {
	ID         uuid.UUID        `json:"id"`
	Number     string           `json:"quotationNumber"`
	Status     quotation.Status `json:"status"`
	ClientName string           `json:"clientName"`
	Units      int              `json:"units"`
	GrandTotal float64          `json:"grandTotal"`
	CreatedAt  time.Time        `json:"createdAt"`
}

func toResponse(q *quotation.Quotation) quotationResponse {
	specs := q.Specs
	if specs == nil {
		specs = []window.Specification{}
	}

	resp := quotationResponse{
		ID:          q.ID,
		Number:      q.Number,
		Status:      q.Status,
		Client:      q.Client,
		Company:     q.Company,
		WindowSpecs: specs,
		Charges:     q.Charges,
		Pricing:     q.Pricing,
		Units:       q.Units(),
		Notes:       q.Notes,
		UpdatedAt:   q.UpdatedAt,
	}

	if !q.CreatedAt.IsZero() {
		resp.CreatedAt = &q.CreatedAt
	}

	return resp
}

func toSummaryList(qs []*quotation.Quotation) []summaryResponse {
	out := make([]summaryResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, summaryResponse{
			ID:         q.ID,
			Number:     q.Number,
			Status:     q.Status,
			ClientName: q.Client.Name,
			Units:      q.Units(),
			GrandTotal: q.Pricing.GrandTotal,
			CreatedAt:  q.CreatedAt,
		})
	}

	return out
}
