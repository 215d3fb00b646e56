package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/pkg/utils"
	"github.com/zoo-visit-planner/internal/usecase"
)

// StatsHandler - сводка по каталогу и сохранённым планам
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler создает новый экземпляр StatsHandler
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{statsUC: statsUC, logger: logger}
}

// GetStatistics godoc
// @Summary Get planner statistics
// @Description Возвращает статистику по каталогу и сохранённым планам: количество локаций и туров, среднее число остановок, самые популярные локации
// @Tags Statistics
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.Statistics}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.statsUC.GetStatistics(c.Context())
	if err != nil {
		h.logger.Error("Failed to get statistics", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, stats, nil)
}

// RefreshStatistics godoc
// @Summary Refresh planner statistics
// @Description Пересчитывает статистику в обход кеша
// @Tags Statistics
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.Statistics}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stats/refresh [post]
func (h *StatsHandler) RefreshStatistics(c *fiber.Ctx) error {
	stats, err := h.statsUC.RefreshStatistics(c.Context())
	if err != nil {
		h.logger.Error("Failed to refresh statistics", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, stats, nil)
}
