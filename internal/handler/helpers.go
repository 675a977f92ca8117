package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"unicode"

	"retrovault/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Report field names from json tags so validation errors match the wire
	// format ("campo": "productId", not "ProductID").
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register decimal.Decimal as a numeric type so that validator tags like
	// gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// password: ≥6 chars with at least one upper, one lower, and one digit.
	_ = validate.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		pw := fl.Field().String()
		if len(pw) < 6 {
			return false
		}
		var upper, lower, digit bool
		for _, r := range pw {
			switch {
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsLower(r):
				lower = true
			case unicode.IsDigit(r):
				digit = true
			}
		}
		return upper && lower && digit
	})
}

// bindAndValidate binds the JSON body and runs validator tags. Returns false
// and writes the 400 response if anything fails — the caller must return
// immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.Interno("JSON inválido").Response())
		return false
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, apierror.Interno("Errores de validación").Response())
			return false
		}
		campos := make([]apierror.CampoError, 0, len(verrs))
		for _, fe := range verrs {
			campos = append(campos, apierror.CampoError{Campo: fe.Field(), Mensaje: mensajeParaTag(fe)})
		}
		c.JSON(http.StatusBadRequest, apierror.Validacion(campos).Response())
		return false
	}
	return true
}

func mensajeParaTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "El campo es obligatorio"
	case "email":
		return "Debe proporcionar un email válido"
	case "min":
		return "Debe tener al menos " + fe.Param() + " caracteres"
	case "max":
		return "No puede exceder los " + fe.Param() + " caracteres"
	case "oneof":
		return "Valor no permitido (permitidos: " + fe.Param() + ")"
	case "alphanum":
		return "Debe ser alfanumérico"
	case "gt":
		return "Debe ser un número mayor a " + fe.Param()
	case "password":
		return "La contraseña debe tener al menos 6 caracteres, una mayúscula, una minúscula y un número"
	default:
		return "Valor inválido"
	}
}

// respondError translates a service error into its HTTP response. Anything
// outside the apierror taxonomy is logged and collapsed to a generic 500.
func respondError(c *gin.Context, err error) {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status(), apiErr.Response())
		return
	}
	log.Error().
		Str("path", c.FullPath()).
		Str("method", c.Request.Method).
		Err(err).
		Msg("unexpected handler error")
	c.JSON(http.StatusInternalServerError, apierror.Interno("Error interno del servidor").Response())
}
