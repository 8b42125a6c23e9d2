package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/execdash/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SetupValidator makes the binding validator report json/form tag names
// instead of Go field names. Call once before building the engine.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			if name, _, _ := strings.Cut(field.Tag.Get(tag), ","); name != "" && name != "-" {
				return name
			}
		}
		return field.Name
	})
}

// HandleValidationError writes a 400 listing every failed field
func HandleValidationError(c *gin.Context, err error) {
	var details []dto.ValidationDetail
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details = make([]dto.ValidationDetail, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, dto.ValidationDetail{
				Field:   fe.Field(),
				Message: describeFailure(fe),
			})
		}
	}

	c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(
		"Request validation failed",
		c.GetString("request_id"),
		details,
	))
}

func describeFailure(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "uuid":
		return "Invalid UUID format"
	case "oneof":
		return "Must be one of: " + fe.Param()
	case "startswith":
		return "Must start with " + fe.Param()
	case "min", "max":
		bound := "at least"
		if fe.Tag() == "max" {
			bound = "at most"
		}
		unit := ""
		if fe.Type().Kind() == reflect.String {
			unit = " characters"
		}
		return fmt.Sprintf("Must be %s %s%s", bound, fe.Param(), unit)
	default:
		return "Invalid value"
	}
}
