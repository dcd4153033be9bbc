package request

import "strings"

// PropertyExtractRequest is the body of POST /api/property/extract.
type PropertyExtractRequest struct {
	URL string `json:"url" binding:"required"`
}

func (r PropertyExtractRequest) ResolveURL() string {
	return strings.TrimSpace(r.URL)
}
