package appraisal

import (
	"time"

	"github.com/saulo-duarte/appraisal-api/internal/employee"
	"github.com/saulo-duarte/appraisal-api/internal/reviewcycle"
	"github.com/saulo-duarte/appraisal-api/internal/store"
	util "github.com/saulo-duarte/appraisal-api/internal/utils"
)

const EntityName = "Appraisal"

const StatusSubmitted = "Submitted"

type Appraisal struct {
	ID              int64                     `gorm:"primaryKey" json:"appraisalId"`
	EmployeeID      int64                     `gorm:"not null;index" json:"employeeId"`
	Employee        *employee.EmployeeProfile `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"employee,omitempty"`
	ReviewCycleID   *int64                    `gorm:"index" json:"cycleId"`
	ReviewCycle     *reviewcycle.ReviewCycle  `gorm:"foreignKey:ReviewCycleID;constraint:OnDelete:CASCADE" json:"reviewCycle,omitempty"`
	SelfRating      int                       `gorm:"not null;default:0" json:"selfRating"`
	ManagerRating   int                       `gorm:"not null;default:0" json:"managerRating"`
	Status          string                    `gorm:"type:text;not null" json:"status"`
	CycleName       string                    `gorm:"type:text" json:"cycleName"`
	AppraisalDate   util.LocalDate            `json:"appraisalDate"`
	PeriodStart     util.LocalDate            `json:"periodStart"`
	PeriodEnd       util.LocalDate            `json:"periodEnd"`
	ReviewDate      util.LocalDate            `json:"reviewDate"`
	ManagerName     string                    `gorm:"type:text" json:"managerName,omitempty"`
	ReviewerRole    string                    `gorm:"type:text" json:"reviewerRole,omitempty"`
	ManagerComments string                    `gorm:"type:text" json:"managerComments,omitempty"`
	CreatedAt       time.Time                 `gorm:"autoCreateTime" json:"createdAt"`
}

func (Appraisal) TableName() string {
	return store.TableAppraisals
}
