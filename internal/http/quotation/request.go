package quotation

import (
	"github.com/MrJamesThe3rd/fenestra/internal/quotation"
	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

type clientRequest struct {
	Name        string `json:"name" validate:"required"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	Address     string `json:"address"`
	SiteAddress string `json:"siteAddress"`
}

type companyRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
	GSTIN   string `json:"gstin"`
	Website string `json:"website"`
}

type chargesRequest struct {
	Transport float64 `json:"transport" validate:"gte=0"`
	Loading   float64 `json:"loading" validate:"gte=0"`
}

// specRequest mirrors window.Draft with boundary rules. Window types outside
// the catalog are accepted and rendered with placeholders.
type specRequest struct {
	ID       *string `json:"id"`
	Type     *string `json:"type"`
	Name     *string `json:"name"`
	Location *string `json:"location"`

	Width    *float64 `json:"width" validate:"required,gt=0"`
	Height   *float64 `json:"height" validate:"required,gt=0"`
	BayAngle *float64 `json:"bayAngle" validate:"omitempty,gt=90,lt=180"`

	GlassType      *string `json:"glassType"`
	GlassThickness *string `json:"glassThickness"`
	FrameMaterial  *string `json:"frameMaterial"`
	FrameColor     *string `json:"frameColor"`
	LockType       *string `json:"lockType"`
	LockPosition   *string `json:"lockPosition"`
	OpeningType    *string `json:"openingType"`
	Panels         *int    `json:"panels" validate:"omitempty,gte=1,lte=12"`
	Tracks         *int    `json:"tracks" validate:"omitempty,gte=0,lte=6"`
	GrilleEnabled  *bool   `json:"grilleEnabled"`
	GrilleStyle    *string `json:"grilleStyle"`
	ScreenIncluded *bool   `json:"screenIncluded"`
	Motorized      *bool   `json:"motorized"`

	BasePrice *float64 `json:"basePrice" validate:"omitempty,gte=0"`
	SqFtPrice *float64 `json:"sqFtPrice" validate:"omitempty,gte=0"`
	Quantity  *int     `json:"quantity" validate:"omitempty,gte=1"`
}

func (s specRequest) toDraft() window.Draft {
	return window.Draft{
		ID:             s.ID,
		Type:           s.Type,
		Name:           s.Name,
		Location:       s.Location,
		Width:          s.Width,
		Height:         s.Height,
		BayAngle:       s.BayAngle,
		GlassType:      s.GlassType,
		GlassThickness: s.GlassThickness,
		FrameMaterial:  s.FrameMaterial,
		FrameColor:     s.FrameColor,
		LockType:       s.LockType,
		LockPosition:   s.LockPosition,
		OpeningType:    s.OpeningType,
		Panels:         s.Panels,
		Tracks:         s.Tracks,
		GrilleEnabled:  s.GrilleEnabled,
		GrilleStyle:    s.GrilleStyle,
		ScreenIncluded: s.ScreenIncluded,
		Motorized:      s.Motorized,
		BasePrice:      s.BasePrice,
		SqFtPrice:      s.SqFtPrice,
		Quantity:       s.Quantity,
	}
}

func toSpecs(reqs []specRequest) []window.Specification {
	specs := make([]window.Specification, 0, len(reqs))
	for _, r := range reqs {
		specs = append(specs, window.Resolve(r.toDraft()))
	}

	return specs
}

type createQuotationRequest struct {
	Client  clientRequest   `json:"client"`
	Company *companyRequest `json:"company"`
	Specs   []specRequest   `json:"windowSpecs" validate:"dive"`
	Charges *chargesRequest `json:"charges"`
	GSTRate *float64        `json:"gstRate" validate:"omitempty,gte=0,lte=1"`
	Notes   string          `json:"notes" validate:"max=2000"`
}

func (r createQuotationRequest) toParams() quotation.CreateParams {
	params := quotation.CreateParams{
		Client:  quotation.Client(r.Client),
		Specs:   toSpecs(r.Specs),
		GSTRate: r.GSTRate,
		Notes:   r.Notes,
	}

	if r.Company != nil {
		params.Company = new(quotation.Company(*r.Company))
	}

	if r.Charges != nil {
		params.Charges = new(quotation.Charges(*r.Charges))
	}

	return params
}

// previewRequest prices specifications without a client.
type previewRequest struct {
	Specs   []specRequest   `json:"windowSpecs" validate:"dive"`
	Charges *chargesRequest `json:"charges"`
	GSTRate *float64        `json:"gstRate" validate:"omitempty,gte=0,lte=1"`
}

// updateQuotationRequest replaces the fields that are present.
type updateQuotationRequest struct {
	Client  *clientRequest  `json:"client"`
	Company *companyRequest `json:"company"`
	Specs   *[]specRequest  `json:"windowSpecs" validate:"omitempty,dive"`
	Charges *chargesRequest `json:"charges"`
	GSTRate *float64        `json:"gstRate" validate:"omitempty,gte=0,lte=1"`
	Notes   *string         `json:"notes" validate:"omitempty,max=2000"`
}

func (r updateQuotationRequest) apply(q *quotation.Quotation) {
	if r.Client != nil {
		q.Client = quotation.Client(*r.Client)
	}

	if r.Company != nil {
		q.Company = quotation.Company(*r.Company)
	}

	if r.Specs != nil {
		q.Specs = toSpecs(*r.Specs)
	}

	if r.Charges != nil {
		q.Charges = quotation.Charges(*r.Charges)
	}

	if r.GSTRate != nil {
		q.GSTRate = *r.GSTRate
	}

	if r.Notes != nil {
		q.Notes = *r.Notes
	}
}

type appendSpecsRequest struct {
	Specs []specRequest `json:"windowSpecs" validate:"required,min=1,dive"`
}

type updateStatusRequest struct {
	Status quotation.Status `json:"status" validate:"required,oneof=draft submitted approved rejected archived"`
}
