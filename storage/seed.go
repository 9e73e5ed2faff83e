package storage

import (
	"github.com/Divyansh670/FeedbackHub/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDemoData provisions the demo accounts and feedback on an empty store.
// It is a no-op when any user already exists, so repeated boots are safe.
func SeedDemoData(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	manager := models.User{
		Email:        "manager@company.com",
		PasswordHash: string(hash),
		Name:         "John Manager",
		Role:         models.RoleManager,
	}
	if err := db.Create(&manager).Error; err != nil {
		return err
	}

	employees := []models.User{
		{
			Email:        "employee@company.com",
			PasswordHash: string(hash),
			Name:         "Jane Employee",
			Role:         models.RoleEmployee,
			ManagerID:    &manager.ID,
		},
		{
			Email:        "employee2@company.com",
			PasswordHash: string(hash),
			Name:         "Bob Employee",
			Role:         models.RoleEmployee,
			ManagerID:    &manager.ID,
		},
	}
	if err := db.Create(&employees).Error; err != nil {
		return err
	}

	demoFeedback := []models.Feedback{
		{
			ManagerID:      manager.ID,
			EmployeeID:     employees[0].ID,
			Strengths:      "Excellent communication skills and always meets deadlines. Shows great initiative in team projects.",
			AreasToImprove: "Could improve technical documentation and consider taking on more leadership responsibilities.",
			Sentiment:      models.SentimentPositive,
		},
		{
			ManagerID:      manager.ID,
			EmployeeID:     employees[1].ID,
			Strengths:      "Strong analytical skills and attention to detail. Great at problem-solving.",
			AreasToImprove: "Could improve collaboration with remote team members and communication in meetings.",
			Sentiment:      models.SentimentNeutral,
		},
	}
	return db.Create(&demoFeedback).Error
}
