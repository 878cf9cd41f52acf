package feedback

import (
	"time"

	"github.com/saulo-duarte/appraisal-api/internal/employee"
	"github.com/saulo-duarte/appraisal-api/internal/store"
	"github.com/saulo-duarte/appraisal-api/internal/user"
)

const EntityName = "Feedback"

const TypeSelf = "Self-Feedback"

type Feedback struct {
	ID           int64                     `gorm:"primaryKey" json:"feedbackId"`
	EmployeeID   int64                     `gorm:"not null;index" json:"employeeId"`
	Employee     *employee.EmployeeProfile `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"employee,omitempty"`
	ReviewerID   int64                     `gorm:"not null;index" json:"reviewerId"`
	Reviewer     *user.User                `gorm:"foreignKey:ReviewerID;constraint:OnDelete:CASCADE" json:"reviewer,omitempty"`
	FeedbackType string                    `gorm:"type:text;not null" json:"feedbackType"`
	Comments     string                    `gorm:"type:text" json:"comments,omitempty"`
	Rating       int                       `gorm:"not null;default:0" json:"rating"`
	Achievements string                    `gorm:"type:text" json:"achievements,omitempty"`
	Challenges   string                    `gorm:"type:text" json:"challenges,omitempty"`
	Improvements string                    `gorm:"type:text" json:"improvements,omitempty"`
	CreatedAt    time.Time                 `gorm:"autoCreateTime" json:"createdAt"`
}

func (Feedback) TableName() string {
	return store.TableFeedbacks
}
