package contract

import (
	"path/filepath"
	"strings"

	"offer_agent/internal/domain/entities"
)

const (
	condoTemplate        = "condo-resale.pdf"
	singleFamilyTemplate = "singlefamily-resale.pdf"
)

// TemplatePath picks the contract template for a state and property type.
func TemplatePath(dir, state, propertyType string) string {
	name := singleFamilyTemplate
	if entities.IsCondo(propertyType) {
		name = condoTemplate
	}
	return filepath.Join(dir, strings.ToLower(strings.TrimSpace(state)), name)
}
