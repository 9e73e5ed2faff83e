package routes

import (
	"github.com/Divyansh670/FeedbackHub/models"
	"github.com/Divyansh670/FeedbackHub/storage"
	"github.com/Divyansh670/FeedbackHub/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// GET /api/users/team — employees reporting to the authenticated manager
func GetTeamMembers(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	team := []models.User{}
	err := storage.DB.
		Where("manager_id = ? AND role = ?", claims.ID, models.RoleEmployee).
		Find(&team).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(team)
}
