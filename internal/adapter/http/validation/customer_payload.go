package validation

import (
	"errors"
	"strings"

	"github.com/agenciathoth/checklist/internal/adapter/http/dto"
	"github.com/agenciathoth/checklist/internal/core/domain"
)

var ErrInvalidCustomerPayload = errors.New("invalid customer payload")

// BuildCustomerInput normalizes a create/update payload. Optional links and
// the presentation default to empty strings.
func BuildCustomerInput(req dto.CustomerRequest) (domain.CustomerInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CustomerInput{}, ErrInvalidCustomerPayload
	}

	return domain.CustomerInput{
		Name:         name,
		Presentation: stringValue(req.Presentation),
		WhatsappLink: stringValue(req.Whatsapp),
		ContractLink: stringValue(req.Contract),
		GalleryLink:  stringValue(req.Gallery),
		ScheduleLink: stringValue(req.Schedule),
	}, nil
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
