package utils

import (
	"github.com/Divyansh670/FeedbackHub/models"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// ManagerOnlyMiddleware ensures the requester has the manager role
func ManagerOnlyMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)
	if claims.Role != models.RoleManager {
		JSONError(ctx, iris.StatusForbidden, "Access denied")
		return
	}
	ctx.Next()
}
