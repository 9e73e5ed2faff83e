package models

import "time"

const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Feedback is a structured review a manager wrote about one of their
// employees. Content fields belong to the authoring manager; AcknowledgedAt
// is stamped once by the subject employee and never cleared.
type Feedback struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	ManagerID      uint       `json:"manager_id" gorm:"index;not null"`
	EmployeeID     uint       `json:"employee_id" gorm:"index;not null"`
	Strengths      string     `json:"strengths" gorm:"type:text;not null"`
	AreasToImprove string     `json:"areas_to_improve" gorm:"type:text;not null"`
	Sentiment      string     `json:"sentiment" gorm:"type:varchar(20);not null;index"` // positive, neutral, negative
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	AcknowledgedAt *time.Time `json:"acknowledged_at"`
}

// TableName keeps the singular table name the schema was created with.
func (Feedback) TableName() string {
	return "feedback"
}
