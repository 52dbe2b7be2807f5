package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"github.com/victor-jaber/Maybach-system-sub000/internal/apierror"
	"github.com/victor-jaber/Maybach-system-sub000/internal/service"

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

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
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
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError translates service-layer error kinds to HTTP status codes.
// Anything unrecognized becomes a 500 with a generic message so internals
// never leak to clients.
func respondError(c *gin.Context, err error) {
	var valErr *service.ValidationError
	var transErr *service.InvalidTransitionError
	var confErr *service.ConflictError
	var upErr *service.UpstreamError

	switch {
	case errors.Is(err, service.ErrNaoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, service.ErrCodigoInvalido):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	case errors.As(err, &valErr):
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(valErr.Fields))
	case errors.As(err, &transErr):
		c.JSON(http.StatusConflict, apierror.New(transErr.Error()))
	case errors.As(err, &confErr):
		c.JSON(http.StatusConflict, apierror.New(confErr.Error()))
	case errors.As(err, &upErr):
		c.JSON(http.StatusBadGateway, apierror.New("falha ao consultar serviço interno"))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("erro interno do servidor"))
	}
}

// parseUintParam extracts a numeric path parameter, writing a 400 and
// returning false when it is not a positive integer.
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return 0, false
	}
	return uint(id), true
}
