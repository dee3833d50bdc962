package handler

import (
	"net/http"
	"reflect"

	"github.com/adrianLames/Sistema-Pedidos/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// failWrite reports a backend failure on a write endpoint: the error goes to
// the log via the context, the client gets 503 with the endpoint's message.
// 500 stays reserved for panics and read-path failures.
func failWrite(c *gin.Context, err error, mensaje string) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusServiceUnavailable, apierror.New(mensaje))
}

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// Both failure modes answer 400, matching what API clients already expect
// from this service. Returns false after writing the error response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}
