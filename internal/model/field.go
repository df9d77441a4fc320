package model

// Column names as they appear in the input header.
const (
	ColCaseName              = "case_name"
	ColProductCompany        = "Product/Company"
	ColQuote                 = "quote"
	ColClaimType             = "claim_type"
	ColSubCategory           = "sub_category"
	ColJurisdiction          = "jurisdiction"
	ColCurrentStatus         = "current_status"
	ColSummary               = "summary"
	ColRulingDescription     = "ruling_description"
	ColSources               = "sources"
	ColPlaintiffLawFirm      = "plaintiff_law_firm"
	ColCourt                 = "court"
	ColDocketNumber          = "docket_number"
	ColSettlementAmount      = "settlement_amount"
	ColChannel               = "channel"
	ColIndustrySector        = "industry_sector"
	ColStateLawCited         = "state_law_cited"
	ColReliefSought          = "relief_sought"
	ColEnvironmentalClaims   = "Environmental Claims/Allegations"
	ColConfidence            = "confidence"
	ColDefendantType         = "defendant_type"
	ColClaimLocation         = "claim_location"
	ColClassSize             = "class_size"
	ColCertificationMisuse   = "certification_misuse"
	ColKeyDates              = "key_dates"
	ColRulingPDFURL          = "ruling_pdf_url"
	ColOutcome               = "Outcome"
	ColProductCompanyURL     = "Product/Company URL"
	ColVerifiedIndependently = "verified_independently"
	ColYear                  = "Year"

	// Derived columns.
	ColDisplayName       = "display_name"
	ColStatusGroup       = "status_group"
	ColSettlementNumeric = "settlement_numeric"
)

// textField binds a column name to its slot in Case.
type textField struct {
	name string
	ref  func(*Case) *string
}

var textFields = []textField{
	{ColCaseName, func(c *Case) *string { return &c.CaseName }},
	{ColProductCompany, func(c *Case) *string { return &c.ProductCompany }},
	{ColQuote, func(c *Case) *string { return &c.Quote }},
	{ColClaimType, func(c *Case) *string { return &c.ClaimType }},
	{ColSubCategory, func(c *Case) *string { return &c.SubCategory }},
	{ColJurisdiction, func(c *Case) *string { return &c.Jurisdiction }},
	{ColCurrentStatus, func(c *Case) *string { return &c.CurrentStatus }},
	{ColSummary, func(c *Case) *string { return &c.Summary }},
	{ColRulingDescription, func(c *Case) *string { return &c.RulingDescription }},
	{ColSources, func(c *Case) *string { return &c.Sources }},
	{ColPlaintiffLawFirm, func(c *Case) *string { return &c.PlaintiffLawFirm }},
	{ColCourt, func(c *Case) *string { return &c.Court }},
	{ColDocketNumber, func(c *Case) *string { return &c.DocketNumber }},
	{ColSettlementAmount, func(c *Case) *string { return &c.SettlementAmount }},
	{ColChannel, func(c *Case) *string { return &c.Channel }},
	{ColIndustrySector, func(c *Case) *string { return &c.IndustrySector }},
	{ColStateLawCited, func(c *Case) *string { return &c.StateLawCited }},
	{ColReliefSought, func(c *Case) *string { return &c.ReliefSought }},
	{ColEnvironmentalClaims, func(c *Case) *string { return &c.EnvironmentalClaims }},
	{ColConfidence, func(c *Case) *string { return &c.Confidence }},
	{ColDefendantType, func(c *Case) *string { return &c.DefendantType }},
	{ColClaimLocation, func(c *Case) *string { return &c.ClaimLocation }},
	{ColClassSize, func(c *Case) *string { return &c.ClassSize }},
	{ColCertificationMisuse, func(c *Case) *string { return &c.CertificationMisuse }},
	{ColKeyDates, func(c *Case) *string { return &c.KeyDates }},
	{ColRulingPDFURL, func(c *Case) *string { return &c.RulingPDFURL }},
	{ColOutcome, func(c *Case) *string { return &c.Outcome }},
	{ColProductCompanyURL, func(c *Case) *string { return &c.ProductCompanyURL }},
	{ColVerifiedIndependently, func(c *Case) *string { return &c.VerifiedIndependently }},
}

var textFieldIndex = func() map[string]textField {
	m := make(map[string]textField, len(textFields))
	for _, f := range textFields {
		m[f.name] = f
	}
	return m
}()

// TextColumns returns the known textual columns in schema order.
func TextColumns() []string {
	out := make([]string, len(textFields))
	for i, f := range textFields {
		out[i] = f.name
	}
	return out
}

// IsTextColumn reports whether name is one of the known textual columns.
func IsTextColumn(name string) bool {
	_, ok := textFieldIndex[name]
	return ok
}

// IsNumericColumn reports whether name can be used in numeric operations.
func IsNumericColumn(name string) bool {
	return name == ColYear || name == ColSettlementNumeric
}

// IsKnownColumn reports whether name belongs to the fixed schema, derived
// columns included.
func IsKnownColumn(name string) bool {
	switch name {
	case ColDisplayName, ColStatusGroup, ColSettlementNumeric, ColYear:
		return true
	}
	return IsTextColumn(name)
}
