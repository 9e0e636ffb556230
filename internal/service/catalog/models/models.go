package models

import (
	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/pricing"
)

// Response модели

// ItemResponse позиция меню с ценой
type ItemResponse struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// CategoryResponse категория меню
type CategoryResponse struct {
	Name  domain.Category `json:"name"`
	Items []ItemResponse  `json:"items"`
}

// CatalogResponse прайс-лист целиком
type CatalogResponse struct {
	Categories []CategoryResponse `json:"categories"`
	PerHead    int                `json:"perHead"`
	StyleFee   int                `json:"styleFee"`
	Styles     []string           `json:"styles"`
	Sets       []string           `json:"sets"`
}

// SetResponse готовый набор с расчетом стоимости
type SetResponse struct {
	Name      string            `json:"name"`
	Selection domain.Selection  `json:"selection"`
	Guests    int               `json:"guests"`
	Total     int               `json:"total"`
	Breakdown pricing.Breakdown `json:"breakdown"`
	Message   string            `json:"message"`
}

// FromDomainCatalog конвертирует каталог; позиции внутри категории отсортированы по имени
func FromDomainCatalog(c *domain.Catalog) *CatalogResponse {
	resp := &CatalogResponse{
		Categories: make([]CategoryResponse, 0, len(domain.Categories)),
		PerHead:    c.PerHead,
		StyleFee:   c.StyleFee,
		Styles:     append([]string{}, c.Styles...),
		Sets:       c.SetNames(),
	}

	for _, category := range domain.Categories {
		names := c.ItemNames(category)
		items := make([]ItemResponse, 0, len(names))
		for _, name := range names {
			items = append(items, ItemResponse{Name: name, Price: c.Price(category, name)})
		}
		resp.Categories = append(resp.Categories, CategoryResponse{Name: category, Items: items})
	}

	return resp
}
