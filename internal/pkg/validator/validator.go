package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/zoo-visit-planner/internal/domain"
	"github.com/zoo-visit-planner/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("plan_date", validatePlanDate)
}

// Validate - валидация структуры, ошибки приводятся к ErrInvalidRequest с перечнем полей
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"reason": err.Error()})
	}

	fields := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field())] = fe.Tag()
	}
	return errors.ErrInvalidRequest.WithDetails(fields)
}

// validatePlanDate допускает пустую дату (будет подставлена сегодняшняя) или YYYY-MM-DD
func validatePlanDate(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	if v == "" {
		return true
	}
	_, err := domain.ParsePlanDate(v)
	return err == nil
}
