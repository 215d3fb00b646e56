package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/pkg/errors"
	"github.com/zoo-visit-planner/internal/pkg/utils"
	"github.com/zoo-visit-planner/internal/pkg/validator"
	"github.com/zoo-visit-planner/internal/usecase"
	"github.com/zoo-visit-planner/internal/usecase/dto"
)

// MapHandler - карта маршрута сессии
type MapHandler struct {
	mapUC  *usecase.MapUseCase
	logger *zap.Logger
}

// NewMapHandler - создание нового MapHandler
func NewMapHandler(mapUC *usecase.MapUseCase, logger *zap.Logger) *MapHandler {
	return &MapHandler{
		mapUC:  mapUC,
		logger: logger,
	}
}

// RenderMap godoc
// @Summary Карта маршрута в SVG
// @Description Рисует маршрут сессии: пунктирная линия, пронумерованные маркеры с подписями, бледные маркеры остальных локаций и легенда. Высота поверхности - width*350/800, dpr ограничен 2.
// @Tags Map
// @Produce image/svg+xml
// @Param id path string true "Идентификатор сессии"
// @Param width query number false "Ширина поверхности в CSS-пикселях" default(800)
// @Param dpr query number false "Device pixel ratio" default(1)
// @Success 200 {string} string "SVG document"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/map.svg [get]
func (h *MapHandler) RenderMap(c *fiber.Ctx) error {
	var req dto.MapRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	svg, err := h.mapUC.Render(c.Context(), c.Params("id"), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Set("Content-Type", "image/svg+xml")
	c.Set("Cache-Control", "no-cache")
	return c.Send(svg)
}

// HitTest godoc
// @Summary Попадание по карте
// @Description Возвращает первую локацию каталога, чей маркер ближе 40 пикселей к точке клика, и параметры преобразования
// @Tags Map
// @Produce json
// @Param id path string true "Идентификатор сессии"
// @Param x query number true "X в пикселях поверхности"
// @Param y query number true "Y в пикселях поверхности"
// @Param width query number false "Ширина поверхности в CSS-пикселях" default(800)
// @Param dpr query number false "Device pixel ratio" default(1)
// @Success 200 {object} utils.SuccessResponse{data=dto.HitTestResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/map/hit [get]
func (h *MapHandler) HitTest(c *fiber.Ctx) error {
	if c.Query("x") == "" || c.Query("y") == "" {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"x": "required", "y": "required",
		}))
	}

	var req dto.HitTestRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.mapUC.HitTest(c.Context(), c.Params("id"), &req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}
