package routes

import (
	"strings"

	"github.com/Divyansh670/FeedbackHub/models"
	"github.com/Divyansh670/FeedbackHub/storage"
	"github.com/Divyansh670/FeedbackHub/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"golang.org/x/crypto/bcrypt"
)

// POST /api/auth/login
func Login(ctx iris.Context) {
	var input LoginInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "Email and password required")
		return
	}

	var user models.User
	errorMsg := "Invalid credentials"
	res := storage.DB.Where("email = ?", strings.ToLower(input.Email)).Limit(1).Find(&user)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(ctx, iris.StatusUnauthorized, errorMsg)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		utils.JSONError(ctx, iris.StatusUnauthorized, errorMsg)
		return
	}

	token, err := utils.CreateAccessToken(user.ID, user.Role)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"token": token,
		"user":  user,
	})
}

// GET /api/auth/me — re-reads the user row so a token outliving its account
// answers 404 rather than a stale profile
func GetCurrentUser(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var user models.User
	res := storage.DB.Where("id = ?", claims.ID).Limit(1).Find(&user)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(ctx, iris.StatusNotFound, "User not found")
		return
	}

	ctx.JSON(user)
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
