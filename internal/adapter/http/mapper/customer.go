package mapper

import (
	"time"

	"github.com/agenciathoth/checklist/internal/adapter/http/dto"
	"github.com/agenciathoth/checklist/internal/core/domain"
)

func ToCustomerItems(customers []domain.Customer) []dto.CustomerItem {
	items := make([]dto.CustomerItem, 0, len(customers))
	for _, customer := range customers {
		items = append(items, ToCustomerItem(customer))
	}
	return items
}

func ToCustomerItem(customer domain.Customer) dto.CustomerItem {
	item := dto.CustomerItem{
		ID:           customer.ID,
		Name:         customer.Name,
		Slug:         customer.Slug,
		Presentation: customer.Presentation,
		WhatsappLink: customer.WhatsappLink,
		ContractLink: customer.ContractLink,
		GalleryLink:  customer.GalleryLink,
		ScheduleLink: customer.ScheduleLink,
		CreatedAt:    customer.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    customer.UpdatedAt.Format(time.RFC3339),
	}

	if customer.ArchivedAt != nil {
		value := customer.ArchivedAt.Format(time.RFC3339)
		item.ArchivedAt = &value
	}

	if len(customer.Tasks) > 0 {
		item.Tasks = ToTaskItems(customer.Tasks)
	}

	return item
}
