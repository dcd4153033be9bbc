package extraction

import "strings"

const (
	SourceZillow  = "zillow"
	SourceRedfin  = "redfin"
	SourceRealtor = "realtor"
	SourceUnknown = "unknown"
)

// SourceType names the listing site a URL belongs to.
func SourceType(listingURL string) string {
	u := strings.ToLower(listingURL)
	switch {
	case strings.Contains(u, "zillow.com"):
		return SourceZillow
	case strings.Contains(u, "redfin.com"):
		return SourceRedfin
	case strings.Contains(u, "realtor.com"):
		return SourceRealtor
	default:
		return SourceUnknown
	}
}
