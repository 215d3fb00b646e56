package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/pkg/utils"
	"github.com/zoo-visit-planner/internal/usecase"
)

// CatalogHandler - обработчик каталога локаций и туров
type CatalogHandler struct {
	catalogUC *usecase.CatalogUseCase
	logger    *zap.Logger
}

// NewCatalogHandler - создание нового CatalogHandler
func NewCatalogHandler(catalogUC *usecase.CatalogUseCase, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: catalogUC,
		logger:    logger,
	}
}

// ListLocations godoc
// @Summary Список локаций зоопарка
// @Description Возвращает вольеры и объекты в порядке каталога. Фильтр: all, animals, places, dining (рестораны и кафе). Неизвестный фильтр означает all.
// @Tags Catalog
// @Produce json
// @Param filter query string false "Фильтр категорий" default(all)
// @Success 200 {object} utils.SuccessResponse{data=dto.LocationsResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/locations [get]
func (h *CatalogHandler) ListLocations(c *fiber.Ctx) error {
	result, err := h.catalogUC.Locations(c.Context(), c.Query("filter", "all"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// GetLocation godoc
// @Summary Локация по идентификатору
// @Tags Catalog
// @Produce json
// @Param id path string true "Идентификатор локации"
// @Success 200 {object} utils.SuccessResponse{data=domain.Location}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/locations/{id} [get]
func (h *CatalogHandler) GetLocation(c *fiber.Ctx) error {
	loc, err := h.catalogUC.Location(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, loc, nil)
}

// ListTours godoc
// @Summary Подготовленные туры
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.ToursResponse}
// @Router /api/v1/tours [get]
func (h *CatalogHandler) ListTours(c *fiber.Ctx) error {
	result, err := h.catalogUC.Tours(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Tours),
	})
}
