package phone

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashti-console/internal/phone"
)

// ValidateRequestBody is the request body for phone validation.
type ValidateRequestBody struct {
	Country string `json:"country" minLength:"1" doc:"ISO code, English or Kreyòl country name"`
	Phone   string `json:"phone" doc:"Number as typed"`
}

// ValidateInput is the Huma input for phone validation.
type ValidateInput struct {
	Body ValidateRequestBody
}

// ValidateOutput is the Huma output for phone validation.
type ValidateOutput struct {
	Body struct {
		Country   string `json:"country" doc:"Resolved ISO code"`
		Valid     bool   `json:"valid"`
		Formatted string `json:"formatted" doc:"Display form, or the input when no format applies"`
		Digits    string `json:"digits"`
	}
}

// CountriesInput is the Huma input for listing countries.
type CountriesInput struct {
	Registration bool `query:"registration" doc:"Only countries open for registration"`
}

// CountriesOutput is the Huma output for listing countries.
type CountriesOutput struct {
	Body struct {
		Countries []phone.Country `json:"countries"`
	}
}

// Handler serves the phone helpers used by the client forms.
type Handler struct{}

// NewHandler creates a new Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Register registers the phone endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "validate-phone",
		Method:      http.MethodPost,
		Path:        "/v1/phone/validate",
		Summary:     "Validate and format a phone number",
		Tags:        []string{"Phone"},
	}, h.validate)

	huma.Register(api, huma.Operation{
		OperationID: "list-countries",
		Method:      http.MethodGet,
		Path:        "/v1/countries",
		Summary:     "List phone countries",
		Tags:        []string{"Phone"},
	}, h.countries)
}

func (h *Handler) validate(_ context.Context, input *ValidateInput) (*ValidateOutput, error) {
	c, ok := phone.Resolve(input.Body.Country)
	if !ok {
		return nil, huma.Error400BadRequest("unknown country " + input.Body.Country)
	}

	out := &ValidateOutput{}
	out.Body.Country = c.Code
	out.Body.Valid = phone.Validate(c.Code, input.Body.Phone)
	out.Body.Formatted = phone.Format(c.Code, input.Body.Phone)
	out.Body.Digits = phone.Digits(input.Body.Phone)
	return out, nil
}

func (h *Handler) countries(_ context.Context, input *CountriesInput) (*CountriesOutput, error) {
	out := &CountriesOutput{}
	if input.Registration {
		out.Body.Countries = phone.RegistrationCountries()
	} else {
		out.Body.Countries = phone.Countries
	}
	return out, nil
}
