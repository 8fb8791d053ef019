package phone

import (
	"slices"
	"strings"
)

// Country is one entry of the phone country picker.
type Country struct {
	Code      string   `json:"code"`
	Name      string   `json:"name"`
	NameKreol string   `json:"nameKreol"`
	DialCode  string   `json:"dialCode"`
	AreaCodes []string `json:"areaCodes,omitempty"`
}

// Countries in display order, Haiti first.
var Countries = []Country{
	{Code: "HT", Name: "Haiti", NameKreol: "Ayiti", DialCode: "+509"},
	{Code: "DO", Name: "Dominican Republic", NameKreol: "Repiblik Dominikèn", DialCode: "+1", AreaCodes: []string{"809", "829", "849"}},
	{Code: "JM", Name: "Jamaica", NameKreol: "Jamayik", DialCode: "+1", AreaCodes: []string{"876", "658"}},
	{Code: "CU", Name: "Cuba", NameKreol: "Kiba", DialCode: "+53"},
	{Code: "PR", Name: "Puerto Rico", NameKreol: "Pòtoriko", DialCode: "+1", AreaCodes: []string{"787", "939"}},
	{Code: "TT", Name: "Trinidad and Tobago", NameKreol: "Trinidad ak Tobago", DialCode: "+1", AreaCodes: []string{"868"}},
	{Code: "BB", Name: "Barbados", NameKreol: "Babad", DialCode: "+1", AreaCodes: []string{"246"}},
	{Code: "GD", Name: "Grenada", NameKreol: "Grenad", DialCode: "+1", AreaCodes: []string{"473"}},
	{Code: "US", Name: "United States", NameKreol: "Etazini", DialCode: "+1", AreaCodes: []string{
		"212", "646", "332", "917",
		"305", "786", "645",
		"954", "754",
		"561", "728",
		"407", "321", "689",
		"617", "857", "351",
		"202", "771",
		"404", "678", "470", "943",
		"312", "773", "872",
		"713", "281", "832", "346",
		"214", "469", "972", "945",
		"323", "213", "310", "424", "747", "818",
		"718", "347", "929",
		"631", "934",
		"504", "985",
		"301", "240",
		"571", "703",
		"215", "267", "445",
		"860", "959",
		"508", "774",
	}},
	{Code: "CA", Name: "Canada", NameKreol: "Kanada", DialCode: "+1", AreaCodes: []string{
		"514", "438", "263",
		"416", "647", "437", "365",
		"604", "778", "236",
		"403", "587", "825",
		"613", "343",
		"902", "782",
	}},
	{Code: "MX", Name: "Mexico", NameKreol: "Meksik", DialCode: "+52"},
	{Code: "FR", Name: "France", NameKreol: "Frans", DialCode: "+33"},
	{Code: "GB", Name: "United Kingdom", NameKreol: "Wayòm Ini", DialCode: "+44"},
	{Code: "DE", Name: "Germany", NameKreol: "Almay", DialCode: "+49"},
	{Code: "ES", Name: "Spain", NameKreol: "Panyòl", DialCode: "+34"},
	{Code: "IT", Name: "Italy", NameKreol: "Itali", DialCode: "+39"},
	{Code: "BR", Name: "Brazil", NameKreol: "Brezil", DialCode: "+55"},
	{Code: "AR", Name: "Argentina", NameKreol: "Ajantin", DialCode: "+54"},
	{Code: "CL", Name: "Chile", NameKreol: "Chili", DialCode: "+56"},
	{Code: "CO", Name: "Colombia", NameKreol: "Kolombi", DialCode: "+57"},
	{Code: "VE", Name: "Venezuela", NameKreol: "Venezwela", DialCode: "+58"},
	{Code: "GF", Name: "French Guiana", NameKreol: "Giyàn Franse", DialCode: "+594"},
}

// AllowedRegistrationCountries may be chosen when an account is created.
var AllowedRegistrationCountries = []string{"HT", "US", "CA", "CL", "FR", "DO", "BR", "MX"}

// Lookup finds a country by ISO code, case-insensitively.
func Lookup(code string) (Country, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range Countries {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}

// RegistrationAllowed reports whether code may be used to register.
func RegistrationAllowed(code string) bool {
	return slices.Contains(AllowedRegistrationCountries, strings.ToUpper(strings.TrimSpace(code)))
}

// RegistrationCountries lists the countries accepted at registration in
// display order.
func RegistrationCountries() []Country {
	out := make([]Country, 0, len(AllowedRegistrationCountries))
	for _, c := range Countries {
		if RegistrationAllowed(c.Code) {
			out = append(out, c)
		}
	}
	return out
}

// Resolve finds a country by ISO code or by its English or Kreyòl name.
func Resolve(s string) (Country, bool) {
	if c, ok := Lookup(s); ok {
		return c, true
	}
	s = strings.TrimSpace(s)
	for _, c := range Countries {
		if strings.EqualFold(c.Name, s) || strings.EqualFold(c.NameKreol, s) {
			return c, true
		}
	}
	return Country{}, false
}
