package routes

import (
	"time"

	"github.com/Divyansh670/FeedbackHub/models"
	"github.com/Divyansh670/FeedbackHub/storage"
	"github.com/Divyansh670/FeedbackHub/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// EnrichedFeedback is a feedback row joined with both party names.
type EnrichedFeedback struct {
	ID             uint       `json:"id"`
	ManagerID      uint       `json:"manager_id"`
	EmployeeID     uint       `json:"employee_id"`
	Strengths      string     `json:"strengths"`
	AreasToImprove string     `json:"areas_to_improve"`
	Sentiment      string     `json:"sentiment"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	AcknowledgedAt *time.Time `json:"acknowledged_at"`
	ManagerName    string     `json:"manager_name"`
	EmployeeName   string     `json:"employee_name"`
}

// GET /api/feedback — a manager sees feedback they authored, an employee
// feedback written about them, newest first
func ListFeedback(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	column := "feedback.employee_id"
	if claims.Role == models.RoleManager {
		column = "feedback.manager_id"
	}

	list := []EnrichedFeedback{}
	err := storage.DB.Table("feedback").
		Select("feedback.*, m.name AS manager_name, e.name AS employee_name").
		Joins("JOIN users m ON m.id = feedback.manager_id").
		Joins("JOIN users e ON e.id = feedback.employee_id").
		Where(column+" = ?", claims.ID).
		Order("feedback.created_at DESC").
		Scan(&list).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(list)
}

// POST /api/feedback — managers only (role gate on the route)
func SubmitFeedback(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input SubmitFeedbackInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	managed, err := utils.ManagesEmployee(claims.ID, input.EmployeeID)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if !managed {
		utils.JSONError(ctx, iris.StatusNotFound, "Employee not found or not under your management")
		return
	}

	feedback := models.Feedback{
		ManagerID:      claims.ID,
		EmployeeID:     input.EmployeeID,
		Strengths:      input.Strengths,
		AreasToImprove: input.AreasToImprove,
		Sentiment:      input.Sentiment,
	}
	if err := storage.DB.Create(&feedback).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"message": "Feedback submitted successfully"})
}

// PUT /api/feedback/{id} — ownership failures answer 404 so a non-owner
// cannot probe which record ids exist
func UpdateFeedback(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusNotFound, "Feedback not found or access denied")
		return
	}

	var input UpdateFeedbackInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var feedback models.Feedback
	res := storage.DB.Where("id = ?", id).Limit(1).Find(&feedback)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if res.RowsAffected == 0 || !utils.CanWriteFeedback(claims.ID, &feedback) {
		utils.JSONError(ctx, iris.StatusNotFound, "Feedback not found or access denied")
		return
	}

	updates := map[string]interface{}{
		"strengths":        input.Strengths,
		"areas_to_improve": input.AreasToImprove,
		"sentiment":        input.Sentiment,
	}
	if err := storage.DB.Model(&feedback).Updates(updates).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"message": "Feedback updated successfully"})
}

// POST /api/feedback/{id}/acknowledge — one-shot; repeat attempts and
// wrong-principal attempts get the same 404
func AcknowledgeFeedback(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusNotFound, "Feedback not found or access denied")
		return
	}

	var feedback models.Feedback
	res := storage.DB.Where("id = ?", id).Limit(1).Find(&feedback)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if res.RowsAffected == 0 || !utils.CanAcknowledge(claims.ID, &feedback) {
		utils.JSONError(ctx, iris.StatusNotFound, "Feedback not found or access denied")
		return
	}

	// UpdateColumn so the content-edit timestamp is not touched.
	now := time.Now()
	if err := storage.DB.Model(&feedback).UpdateColumn("acknowledged_at", &now).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"message": "Feedback acknowledged successfully"})
}

type SubmitFeedbackInput struct {
	EmployeeID     uint   `json:"employee_id" validate:"required"`
	Strengths      string `json:"strengths" validate:"required"`
	AreasToImprove string `json:"areas_to_improve" validate:"required"`
	Sentiment      string `json:"sentiment" validate:"required,oneof=positive neutral negative"`
}

type UpdateFeedbackInput struct {
	Strengths      string `json:"strengths" validate:"required"`
	AreasToImprove string `json:"areas_to_improve" validate:"required"`
	Sentiment      string `json:"sentiment" validate:"required,oneof=positive neutral negative"`
}
