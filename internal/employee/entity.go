package employee

import (
	"time"

	"gorm.io/datatypes"

	"github.com/saulo-duarte/appraisal-api/internal/store"
	"github.com/saulo-duarte/appraisal-api/internal/user"
	util "github.com/saulo-duarte/appraisal-api/internal/utils"
)

const EntityName = "EmployeeProfile"

type EmployeeProfile struct {
	ID                  int64                       `gorm:"primaryKey" json:"employeeProfileId"`
	UserID              int64                       `gorm:"not null;index" json:"userId"`
	User                *user.User                  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Department          string                      `gorm:"type:text" json:"department"`
	Designation         string                      `gorm:"type:text" json:"designation"`
	DateOfJoining       util.LocalDate              `json:"dateOfJoining"`
	ReportingManager    string                      `gorm:"type:text" json:"reportingManager"`
	CurrentProject      string                      `gorm:"type:text" json:"currentProject"`
	CurrentTeam         string                      `gorm:"type:text" json:"currentTeam"`
	Skills              datatypes.JSONSlice[string] `json:"skills"`
	LastAppraisalRating *int                        `json:"lastAppraisalRating"`
	CurrentGoals        datatypes.JSONSlice[string] `json:"currentGoals"`
	CreatedAt           time.Time                   `gorm:"autoCreateTime" json:"createdAt"`
}

func (EmployeeProfile) TableName() string {
	return store.TableEmployeeProfiles
}
