package goal

import (
	"time"

	"github.com/saulo-duarte/appraisal-api/internal/appraisal"
	"github.com/saulo-duarte/appraisal-api/internal/employee"
	"github.com/saulo-duarte/appraisal-api/internal/store"
	util "github.com/saulo-duarte/appraisal-api/internal/utils"
)

const EntityName = "Goal"

const (
	StatusPending    = "Pending"
	CreatedByManager = "manager"
	CreatedBySelf    = "self"
)

type Goal struct {
	ID              int64                     `gorm:"primaryKey" json:"goalId"`
	EmployeeID      int64                     `gorm:"not null;index" json:"employeeId"`
	Employee        *employee.EmployeeProfile `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"employee,omitempty"`
	AppraisalID     *int64                    `gorm:"index" json:"appraisalId"`
	Appraisal       *appraisal.Appraisal      `gorm:"foreignKey:AppraisalID;constraint:OnDelete:SET NULL" json:"appraisal,omitempty"`
	Title           string                    `gorm:"type:text" json:"title"`
	Description     string                    `gorm:"type:text" json:"description,omitempty"`
	Status          string                    `gorm:"type:text;not null" json:"status"`
	Priority        string                    `gorm:"type:text" json:"priority,omitempty"`
	Category        string                    `gorm:"type:text" json:"category,omitempty"`
	StartDate       util.LocalDate            `json:"startDate"`
	TargetDate      util.LocalDate            `json:"targetDate"`
	CompletionDate  util.LocalDate            `json:"completionDate"`
	Progress        int                       `gorm:"not null;default:0" json:"progress"`
	ManagerComments string                    `gorm:"type:text" json:"managerComments,omitempty"`
	CreatedBy       string                    `gorm:"type:text;not null" json:"createdBy"`
	CreatedAt       time.Time                 `gorm:"autoCreateTime" json:"createdAt"`
}

func (Goal) TableName() string {
	return store.TableGoals
}
