package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

func JSONError(ctx iris.Context, status int, message string) {
	ctx.StopWithJSON(status, iris.Map{"error": message})
}

func CreateInternalServerError(ctx iris.Context) {
	JSONError(ctx, iris.StatusInternalServerError, "Internal server error")
}

// HandleValidationErrors maps ReadJSON / validator failures to a 400 response.
func HandleValidationErrors(err error, ctx iris.Context) {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		fields := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			fields = append(fields, fieldErr.Field())
		}
		JSONError(ctx, iris.StatusBadRequest, "Invalid fields: "+strings.Join(fields, ", "))
		return
	}

	JSONError(ctx, iris.StatusBadRequest, "Invalid request body")
}
