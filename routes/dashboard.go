package routes

import (
	"time"

	"github.com/Divyansh670/FeedbackHub/models"
	"github.com/Divyansh670/FeedbackHub/storage"
	"github.com/Divyansh670/FeedbackHub/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// GET /api/dashboard/stats — managers only (role gate on the route)
func GetDashboardStats(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var totalTeamMembers int64
	storage.DB.Model(&models.User{}).
		Where("manager_id = ?", claims.ID).
		Count(&totalTeamMembers)

	var totalFeedback int64
	storage.DB.Model(&models.Feedback{}).
		Where("manager_id = ?", claims.ID).
		Count(&totalFeedback)

	since := time.Now().AddDate(0, 0, -30)
	var recentFeedback int64
	storage.DB.Model(&models.Feedback{}).
		Where("manager_id = ? AND created_at >= ?", claims.ID, since).
		Count(&recentFeedback)

	// All three keys are always reported, even at zero.
	sentimentDist := map[string]int64{
		models.SentimentPositive: 0,
		models.SentimentNeutral:  0,
		models.SentimentNegative: 0,
	}
	var rows []struct {
		Sentiment string
		Count     int64
	}
	storage.DB.Model(&models.Feedback{}).
		Select("sentiment, COUNT(*) AS count").
		Where("manager_id = ?", claims.ID).
		Group("sentiment").
		Scan(&rows)
	for _, row := range rows {
		sentimentDist[row.Sentiment] = row.Count
	}

	ctx.JSON(iris.Map{
		"total_team_members":     totalTeamMembers,
		"total_feedback":         totalFeedback,
		"recent_feedback":        recentFeedback,
		"sentiment_distribution": sentimentDist,
	})
}
