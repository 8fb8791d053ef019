package common

import (
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashti-console/internal/listing"
	"github.com/carson-networks/cashti-console/internal/service"
)

// FilterBody is the filter panel of a list screen. Empty or "all" means no constraint.
type FilterBody struct {
	Query      string `json:"query,omitempty" doc:"Case-insensitive search text"`
	Status     string `json:"status,omitempty" doc:"Status to keep, or 'all'"`
	KYCStatus  string `json:"kycStatus,omitempty" doc:"verified, pending, not_submitted or all"`
	Type       string `json:"type,omitempty" doc:"Record type to keep, or 'all'"`
	DatePreset string `json:"datePreset,omitempty" doc:"all, today, week, month, year or custom"`
	StartDate  string `json:"startDate,omitempty" doc:"YYYY-MM-DD, inclusive"`
	EndDate    string `json:"endDate,omitempty" doc:"YYYY-MM-DD, inclusive"`
	MinAmount  string `json:"minAmount,omitempty" doc:"Decimal lower bound"`
	MaxAmount  string `json:"maxAmount,omitempty" doc:"Decimal upper bound"`
}

// SortBody orders a list by one key.
type SortBody struct {
	Key       string `json:"key,omitempty" doc:"Sort key; unknown keys use the default"`
	Direction string `json:"direction,omitempty" doc:"asc or desc, defaults to desc"`
}

// ListBody is the request body of every list endpoint.
type ListBody struct {
	Filter    FilterBody `json:"filter,omitempty"`
	Sort      SortBody   `json:"sort,omitempty"`
	Page      int        `json:"page,omitempty" minimum:"0" doc:"1-based page number"`
	PageSize  int        `json:"pageSize,omitempty" doc:"10, 25 or 50"`
	Selected  []string   `json:"selected,omitempty" doc:"IDs of the selected rows"`
	ViewToken string     `json:"viewToken,omitempty" doc:"Token returned with the previous page"`
}

// ExportBody is the request body of every export endpoint.
type ExportBody struct {
	Filter   FilterBody `json:"filter,omitempty"`
	Sort     SortBody   `json:"sort,omitempty"`
	Selected []string   `json:"selected,omitempty" doc:"Export only these IDs"`
}

// PageMeta describes the returned page.
type PageMeta struct {
	Page         int    `json:"page"`
	PageSize     int    `json:"pageSize"`
	TotalItems   int    `json:"totalItems"`
	TotalPages   int    `json:"totalPages"`
	Start        int    `json:"start" doc:"Zero-based index of the first row"`
	End          int    `json:"end" doc:"Exclusive end index"`
	DisplayRange string `json:"displayRange" doc:"Human readable range, e.g. '1–10 of 42'"`
}

// NewPageMeta copies the metadata of p.
func NewPageMeta[T any](p listing.Page[T]) PageMeta {
	return PageMeta{
		Page:         p.Page,
		PageSize:     p.Size,
		TotalItems:   p.TotalItems,
		TotalPages:   p.TotalPages,
		Start:        p.Start,
		End:          p.End,
		DisplayRange: p.DisplayRange(),
	}
}

// Dates resolves date filters in the console's time zone.
type Dates struct {
	Location *time.Location
	Now      func() time.Time
}

func (d Dates) now() time.Time {
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	if d.Location != nil {
		return now().In(d.Location)
	}
	return now()
}

// Criteria converts a filter panel into listing criteria, or returns a 400.
func (d Dates) Criteria(f FilterBody) (listing.Criteria, error) {
	custom, err := listing.ParseDateRange(f.StartDate, f.EndDate, d.Location)
	if err != nil {
		return listing.Criteria{}, huma.NewError(http.StatusBadRequest, err.Error(), err)
	}

	dates := custom
	preset := listing.DatePreset(strings.ToLower(strings.TrimSpace(f.DatePreset)))
	if preset != "" && preset != listing.DatePresetCustom {
		dates = listing.ResolvePreset(preset, d.now(), custom)
	}

	amounts := listing.AmountRange{}
	if amounts.Min, err = parseBound("minAmount", f.MinAmount); err != nil {
		return listing.Criteria{}, err
	}
	if amounts.Max, err = parseBound("maxAmount", f.MaxAmount); err != nil {
		return listing.Criteria{}, err
	}

	return listing.Criteria{
		Query:     f.Query,
		Status:    f.Status,
		KYCStatus: f.KYCStatus,
		Type:      f.Type,
		Dates:     dates,
		Amounts:   amounts,
	}, nil
}

func parseBound(name, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, name+" must be a number", err)
	}
	return &v, nil
}

func sortSpec(s SortBody) listing.SortSpec {
	return listing.SortSpec{Key: s.Key, Direction: listing.ParseDirection(s.Direction)}
}

// ListQuery converts a list request body.
func (d Dates) ListQuery(b ListBody) (service.ListQuery, error) {
	criteria, err := d.Criteria(b.Filter)
	if err != nil {
		return service.ListQuery{}, err
	}
	return service.ListQuery{
		Criteria:  criteria,
		Sort:      sortSpec(b.Sort),
		Window:    listing.PageWindow{Page: b.Page, Size: b.PageSize},
		Selected:  b.Selected,
		ViewToken: b.ViewToken,
	}, nil
}

// ExportQuery converts an export request body.
func (d Dates) ExportQuery(b ExportBody) (service.ExportQuery, error) {
	criteria, err := d.Criteria(b.Filter)
	if err != nil {
		return service.ExportQuery{}, err
	}
	return service.ExportQuery{
		Criteria: criteria,
		Sort:     sortSpec(b.Sort),
		Selected: b.Selected,
	}, nil
}
