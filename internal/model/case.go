package model

// RawRecord is one input row as read from the source table. Values are
// usually strings; XLSX numeric cells arrive as float64. A missing cell has
// no key (or a nil value).
type RawRecord map[string]any

// Case is the canonical, fully coerced representation of one litigation
// case. Every textual attribute is a plain string ("" when missing).
type Case struct {
	Index int `json:"index" yaml:"index" csv:"index"`

	DisplayName       string      `json:"display_name" yaml:"display_name" csv:"display_name"`
	SettlementNumeric float64     `json:"settlement_numeric" yaml:"settlement_numeric" csv:"settlement_numeric"`
	StatusGroup       StatusGroup `json:"status_group" yaml:"status_group" csv:"status_group"`
	Year              *int        `json:"year,omitempty" yaml:"year,omitempty" csv:"Year"`

	CaseName              string `json:"case_name" yaml:"case_name" csv:"case_name"`
	ProductCompany        string `json:"product_company" yaml:"product_company" csv:"Product/Company"`
	Quote                 string `json:"quote" yaml:"quote" csv:"quote"`
	ClaimType             string `json:"claim_type" yaml:"claim_type" csv:"claim_type"`
	SubCategory           string `json:"sub_category" yaml:"sub_category" csv:"sub_category"`
	Jurisdiction          string `json:"jurisdiction" yaml:"jurisdiction" csv:"jurisdiction"`
	CurrentStatus         string `json:"current_status" yaml:"current_status" csv:"current_status"`
	Summary               string `json:"summary" yaml:"summary" csv:"summary"`
	RulingDescription     string `json:"ruling_description" yaml:"ruling_description" csv:"ruling_description"`
	Sources               string `json:"sources" yaml:"sources" csv:"sources"`
	PlaintiffLawFirm      string `json:"plaintiff_law_firm" yaml:"plaintiff_law_firm" csv:"plaintiff_law_firm"`
	Court                 string `json:"court" yaml:"court" csv:"court"`
	DocketNumber          string `json:"docket_number" yaml:"docket_number" csv:"docket_number"`
	SettlementAmount      string `json:"settlement_amount" yaml:"settlement_amount" csv:"settlement_amount"`
	Channel               string `json:"channel" yaml:"channel" csv:"channel"`
	IndustrySector        string `json:"industry_sector" yaml:"industry_sector" csv:"industry_sector"`
	StateLawCited         string `json:"state_law_cited" yaml:"state_law_cited" csv:"state_law_cited"`
	ReliefSought          string `json:"relief_sought" yaml:"relief_sought" csv:"relief_sought"`
	EnvironmentalClaims   string `json:"environmental_claims" yaml:"environmental_claims" csv:"Environmental Claims/Allegations"`
	Confidence            string `json:"confidence" yaml:"confidence" csv:"confidence"`
	DefendantType         string `json:"defendant_type" yaml:"defendant_type" csv:"defendant_type"`
	ClaimLocation         string `json:"claim_location" yaml:"claim_location" csv:"claim_location"`
	ClassSize             string `json:"class_size" yaml:"class_size" csv:"class_size"`
	CertificationMisuse   string `json:"certification_misuse" yaml:"certification_misuse" csv:"certification_misuse"`
	KeyDates              string `json:"key_dates" yaml:"key_dates" csv:"key_dates"`
	RulingPDFURL          string `json:"ruling_pdf_url" yaml:"ruling_pdf_url" csv:"ruling_pdf_url"`
	Outcome               string `json:"outcome" yaml:"outcome" csv:"Outcome"`
	ProductCompanyURL     string `json:"product_company_url" yaml:"product_company_url" csv:"Product/Company URL"`
	VerifiedIndependently string `json:"verified_independently" yaml:"verified_independently" csv:"verified_independently"`

	// Extra holds passthrough values for columns outside the known schema.
	Extra map[string]string `json:"extra,omitempty" yaml:"extra,omitempty" csv:"-"`
}

// Text returns the string value of a named column, including the derived
// display_name and status_group columns and any passthrough column.
func (c *Case) Text(name string) (string, bool) {
	switch name {
	case ColDisplayName:
		return c.DisplayName, true
	case ColStatusGroup:
		return string(c.StatusGroup), true
	}
	if f, ok := textFieldIndex[name]; ok {
		return *f.ref(c), true
	}
	v, ok := c.Extra[name]
	return v, ok
}

// Number returns the value of a numeric column. ok is false when the column
// is not numeric or the value is missing.
func (c *Case) Number(name string) (float64, bool) {
	switch name {
	case ColYear:
		if c.Year == nil {
			return 0, false
		}
		return float64(*c.Year), true
	case ColSettlementNumeric:
		return c.SettlementNumeric, true
	}
	return 0, false
}

// SetText assigns a known textual column. It reports false for names outside
// the fixed schema.
func (c *Case) SetText(name, value string) bool {
	f, ok := textFieldIndex[name]
	if !ok {
		return false
	}
	*f.ref(c) = value
	return true
}
