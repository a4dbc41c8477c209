package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/mertkaya/gradekeeper/internal/app/models/dto"
)

var validate = validator.New()

// BindAndValidate binds the JSON body into obj and validates the struct tags.
// On failure it writes a 400 response and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		c.JSON(http.StatusBadRequest, dto.NewErrorAPIResponse(errorDetail))
		return false
	}

	if err := validate.Struct(obj); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorAPIResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}
