package catalog

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CateringService/internal/service/catalog/models"
)

// Service сервис для чтения прайс-листа и готовых наборов
type Service struct {
	pricing PricingEngine
	logger  Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(pricing PricingEngine, logger Logger) *Service {
	return &Service{
		pricing: pricing,
		logger:  logger,
	}
}

// GetCatalog возвращает категории, цены, сборы и стили
func (s *Service) GetCatalog() *models.CatalogResponse {
	return models.FromDomainCatalog(s.pricing.Catalog())
}

// GetSet возвращает готовый набор (A, B, C) и его стоимость для guests гостей
func (s *Service) GetSet(name string, guests int) (*models.SetResponse, error) {
	selection, ok := s.pricing.Catalog().Set(name)
	if !ok {
		s.logger.Warn("GetSet: set %q not found", name)
		return nil, fmt.Errorf("%w: %q", ErrSetNotFound, name)
	}

	name = strings.ToUpper(strings.TrimSpace(name))
	if guests < 0 {
		guests = 0
	}
	breakdown := s.pricing.Breakdown(selection, guests)

	s.logger.Info("GetSet: set=%s, guests=%d, total=%d", name, guests, breakdown.Total)
	return &models.SetResponse{
		Name:      name,
		Selection: selection,
		Guests:    guests,
		Total:     breakdown.Total,
		Breakdown: breakdown,
		Message:   fmt.Sprintf("You selected Set %s", name),
	}, nil
}
