package reviewcycle

import (
	"time"

	"github.com/saulo-duarte/appraisal-api/internal/store"
	util "github.com/saulo-duarte/appraisal-api/internal/utils"
)

const EntityName = "ReviewCycle"

const (
	StatusScheduled  = "Scheduled"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

type ReviewCycle struct {
	ID          int64          `gorm:"primaryKey" json:"cycleId"`
	CycleName   string         `gorm:"type:text;not null" json:"cycleName"`
	Status      string         `gorm:"type:text;not null" json:"status"`
	Deadline    util.LocalDate `gorm:"not null" json:"deadline"`
	StartDate   util.LocalDate `json:"startDate"`
	EndDate     util.LocalDate `json:"endDate"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
}

func (ReviewCycle) TableName() string {
	return store.TableReviewCycles
}
