package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/pkg/errors"
	"github.com/zoo-visit-planner/internal/pkg/utils"
	"github.com/zoo-visit-planner/internal/pkg/validator"
	"github.com/zoo-visit-planner/internal/usecase"
	"github.com/zoo-visit-planner/internal/usecase/dto"
)

// PlanHandler - сохранённые планы посещения
type PlanHandler struct {
	planUC *usecase.PlanUseCase
	logger *zap.Logger
}

// NewPlanHandler - создание нового PlanHandler
func NewPlanHandler(planUC *usecase.PlanUseCase, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{
		planUC: planUC,
		logger: logger,
	}
}

// ListPlans godoc
// @Summary Сохранённые планы
// @Description Новые планы первыми
// @Tags Plans
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.PlansResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/plans [get]
func (h *PlanHandler) ListPlans(c *fiber.Ctx) error {
	result, err := h.planUC.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list plans", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// SavePlan godoc
// @Summary Сохранить план
// @Description Сохраняет выбор и маршрут сессии. Пустое имя - "My Zoo Visit", пустая дата - сегодня, 0 посетителей - 2.
// @Tags Plans
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор сессии"
// @Param request body dto.SavePlanRequest false "Параметры плана"
// @Success 201 {object} utils.SuccessResponse{data=domain.Plan}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/plans [post]
func (h *PlanHandler) SavePlan(c *fiber.Ctx) error {
	var req dto.SavePlanRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest)
		}
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	plan, err := h.planUC.Save(c.Context(), c.Params("id"), &req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, plan)
}

// LoadPlan godoc
// @Summary Загрузить план в сессию
// @Description Заменяет выбор сессии и восстанавливает сохранённый маршрут. Локации, которых больше нет в каталоге, пропускаются.
// @Tags Plans
// @Produce json
// @Param id path string true "Идентификатор сессии"
// @Param plan_id path int true "Идентификатор плана"
// @Success 200 {object} utils.SuccessResponse{data=dto.PlanLoadResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/plans/{plan_id}/load [post]
func (h *PlanHandler) LoadPlan(c *fiber.Ctx) error {
	planID, err := parsePlanID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.planUC.Load(c.Context(), c.Params("id"), planID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// DeletePlan godoc
// @Summary Удалить план
// @Tags Plans
// @Produce json
// @Param plan_id path int true "Идентификатор плана"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/plans/{plan_id} [delete]
func (h *PlanHandler) DeletePlan(c *fiber.Ctx) error {
	planID, err := parsePlanID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.planUC.Delete(c.Context(), planID); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": planID}, nil)
}

func parsePlanID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("plan_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"plan_id": raw})
	}
	return id, nil
}
