package types

// Company enrichment defaults. Each heuristic cascade falls back to its
// documented default when no keyword matches.
const (
	CompanySizeUnspecified = "Unspecified"
	CompanyIndustryDefault = "Technology/Software"
	CompanyCountryDefault  = "Latam"
	CompanyTypeDefault     = "Corporation"
)

// CompanyProfile holds the attributes derived from a company name alone.
// It is re-derived deterministically on every run, so last-write-wins at
// the sink is safe.
type CompanyProfile struct {
	Name      string `json:"name"`
	Size      string `json:"size"`
	Industry  string `json:"industry"`
	HQCountry string `json:"hq_country"`
	Type      string `json:"type"`
}

// DefaultCompanyProfile is the profile assigned to the placeholder company
// and to any name the cascades cannot say anything about.
func DefaultCompanyProfile(name string) CompanyProfile {
	return CompanyProfile{
		Name:      name,
		Size:      CompanySizeUnspecified,
		Industry:  CompanyIndustryDefault,
		HQCountry: CompanyCountryDefault,
		Type:      CompanyTypeDefault,
	}
}
