package utils

import (
	"github.com/Divyansh670/FeedbackHub/models"
	"github.com/Divyansh670/FeedbackHub/storage"
)

// Access predicates shared by every protected route. Each one is evaluated
// against the principal resolved from the request's access token.

func IsManager(user *models.User) bool {
	return user.Role == models.RoleManager
}

// ManagesEmployee reports whether employeeID names an existing employee whose
// manager reference equals managerID.
func ManagesEmployee(managerID, employeeID uint) (bool, error) {
	var count int64
	err := storage.DB.Model(&models.User{}).
		Where("id = ? AND role = ? AND manager_id = ?", employeeID, models.RoleEmployee, managerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// CanReadFeedback allows the authoring manager and the subject employee.
func CanReadFeedback(principalID uint, record *models.Feedback) bool {
	return principalID == record.ManagerID || principalID == record.EmployeeID
}

// CanWriteFeedback reserves content edits for the authoring manager.
func CanWriteFeedback(principalID uint, record *models.Feedback) bool {
	return principalID == record.ManagerID
}

// CanAcknowledge allows only the subject employee, and only while the record
// is still unacknowledged.
func CanAcknowledge(principalID uint, record *models.Feedback) bool {
	return principalID == record.EmployeeID && record.AcknowledgedAt == nil
}
