package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zoo-visit-planner/internal/pkg/errors"
)

// SuccessResponse - конверт успешного ответа API
type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

// ErrorResponse - конверт ответа с ошибкой
type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// Meta - количество элементов в списочных ответах
type Meta struct {
	Total int `json:"total"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{Data: data, Meta: meta})
}

// SendCreated отвечает 201 для созданных сессий и планов
func SendCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(SuccessResponse{Data: data})
}

// SendError отдаёт AppError с его статусом; прочие ошибки скрываются за 500
func SendError(c *fiber.Ctx, err error) error {
	appErr, ok := errors.As(err)
	if !ok {
		appErr = errors.ErrInternalServer
	}
	return c.Status(appErr.StatusCode).JSON(ErrorResponse{Error: appErr})
}
