package model

// Callback data namespaces used by inline keyboards. The chat adapter passes
// the opaque selection code through unchanged.
const (
	CallbackTypePrefix    = "type_"
	CallbackQualityPrefix = "quality_"
	CallbackCreateWebsite = "create_website"
)

// SiteType is a selectable website category.
type SiteType struct {
	Code string
	Name string
}

// SiteTypes lists the website categories offered in the type keyboard,
// in display order.
var SiteTypes = []SiteType{
	{Code: "ecommerce", Name: "E-commerce store"},
	{Code: "corporate", Name: "Corporate site"},
	{Code: "educational", Name: "Educational platform"},
	{Code: "portfolio", Name: "Personal portfolio"},
	{Code: "restaurant", Name: "Restaurant site"},
	{Code: "medical", Name: "Medical practice"},
}

// SiteTypeName resolves a type code to its display name, falling back to a
// generic label for unknown codes.
func SiteTypeName(code string) string {
	for _, t := range SiteTypes {
		if t.Code == code {
			return t.Name
		}
	}
	return "Website"
}

// QualityTier is a selectable quality level passed as a requirement hint.
type QualityTier struct {
	Code string
	Name string
}

// QualityTiers lists the quality levels offered in the quality keyboard,
// in display order.
var QualityTiers = []QualityTier{
	{Code: "basic", Name: "Basic"},
	{Code: "advanced", Name: "Advanced"},
	{Code: "pro", Name: "Professional"},
	{Code: "premium", Name: "Premium"},
}

// QualityTierName resolves a quality code to its display name.
func QualityTierName(code string) string {
	for _, q := range QualityTiers {
		if q.Code == code {
			return q.Name
		}
	}
	return "Basic"
}
