package handler

import (
	"net/http"
	"reflect"
	"strconv"

	"shakepos/internal/apierror"
	"shakepos/internal/dto"

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
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
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

// parseOrderForm converts the register form's parallel arrays into a typed
// OrderRequest. Parsing is deliberately permissive: non-numeric or negative
// quantities clamp to 0, a malformed amount reads as 0.00, and missing arrays
// read as empty. Bad input never fails the request.
func parseOrderForm(c *gin.Context) dto.OrderRequest {
	items := c.PostFormArray("item[]")
	if len(items) == 0 {
		items = c.PostFormArray("item")
	}
	qtys := c.PostFormArray("quantity[]")
	if len(qtys) == 0 {
		qtys = c.PostFormArray("quantity")
	}
	addOns := c.PostFormArray("add_on_qty[]")
	if len(addOns) == 0 {
		addOns = c.PostFormArray("add_on_qty")
	}

	req := dto.OrderRequest{
		Items:       items,
		Quantities:  clampInts(qtys),
		AddOnQtys:   clampInts(addOns),
		AmountGiven: parseAmount(c.PostForm("amount_given")),
	}
	return req
}

func clampInts(raw []string) []int {
	out := make([]int, len(raw))
	for i, s := range raw {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			n = 0
		}
		out[i] = n
	}
	return out
}

func parseAmount(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
