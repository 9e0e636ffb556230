package pricing

import "github.com/m04kA/SMC-CateringService/internal/domain"

// ItemLine is one selected item with its unit price
type ItemLine struct {
	Category  domain.Category `json:"category"`
	Item      string          `json:"item"`
	UnitPrice int             `json:"unitPrice"`
	Known     bool            `json:"known"` // false when the item is missing from the catalog
}

// Breakdown is an itemized price
type Breakdown struct {
	Items        []ItemLine `json:"items"`
	ItemsTotal   int        `json:"itemsTotal"`
	Guests       int        `json:"guests"`
	PerHead      int        `json:"perHead"`
	PerHeadTotal int        `json:"perHeadTotal"`
	StyleFee     int        `json:"styleFee"`
	Total        int        `json:"total"`
}
