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

// SessionHandler - выбор локаций и маршрут в рамках сессии планирования
type SessionHandler struct {
	plannerUC *usecase.PlannerUseCase
	logger    *zap.Logger
}

// NewSessionHandler - создание нового SessionHandler
func NewSessionHandler(plannerUC *usecase.PlannerUseCase, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		plannerUC: plannerUC,
		logger:    logger,
	}
}

// CreateSession godoc
// @Summary Новая сессия планирования
// @Description Создаёт сессию с пустым выбором и пустым маршрутом
// @Tags Sessions
// @Produce json
// @Success 201 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Router /api/v1/sessions [post]
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	result := h.plannerUC.CreateSession(c.Context())
	return utils.SendCreated(c, result)
}

// GetSelection godoc
// @Summary Текущий выбор
// @Description Выбранные локации в порядке добавления, их количество и суммарное время осмотра
// @Tags Sessions
// @Produce json
// @Param id path string true "Идентификатор сессии"
// @Success 200 {object} utils.SuccessResponse{data=dto.SelectionResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/selection [get]
func (h *SessionHandler) GetSelection(c *fiber.Ctx) error {
	result, err := h.plannerUC.Selection(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// ToggleSelection godoc
// @Summary Добавить или убрать локацию
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор сессии"
// @Param request body dto.ToggleSelectionRequest true "Локация"
// @Success 200 {object} utils.SuccessResponse{data=dto.ToggleResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/selection/toggle [post]
func (h *SessionHandler) ToggleSelection(c *fiber.Ctx) error {
	var req dto.ToggleSelectionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.plannerUC.Toggle(c.Context(), c.Params("id"), req.LocationID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// LoadTour godoc
// @Summary Загрузить тур
// @Description Заменяет выбор локациями тура и строит маршрут. Локации, которых нет в каталоге, пропускаются.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор сессии"
// @Param request body dto.LoadTourRequest true "Название тура"
// @Success 200 {object} utils.SuccessResponse{data=dto.TourLoadResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/tours/load [post]
func (h *SessionHandler) LoadTour(c *fiber.Ctx) error {
	var req dto.LoadTourRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.plannerUC.LoadTour(c.Context(), c.Params("id"), req.Name)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// GenerateRoute godoc
// @Summary Построить маршрут
// @Description Жадный маршрут ближайшего соседа от первой выбранной локации. При пустом выборе возвращает 400 и не меняет маршрут.
// @Tags Sessions
// @Produce json
// @Param id path string true "Идентификатор сессии"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/route [post]
func (h *SessionHandler) GenerateRoute(c *fiber.Ctx) error {
	result, err := h.plannerUC.GenerateRoute(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Route),
	})
}

// GetRoute godoc
// @Summary Текущий маршрут и расписание
// @Tags Sessions
// @Produce json
// @Param id path string true "Идентификатор сессии"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/route [get]
func (h *SessionHandler) GetRoute(c *fiber.Ctx) error {
	result, err := h.plannerUC.Route(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Route),
	})
}
