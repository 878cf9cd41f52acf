// Package schema lists the persisted models in dependency order.
package schema

import (
	"github.com/saulo-duarte/appraisal-api/internal/appraisal"
	"github.com/saulo-duarte/appraisal-api/internal/employee"
	"github.com/saulo-duarte/appraisal-api/internal/feedback"
	"github.com/saulo-duarte/appraisal-api/internal/goal"
	"github.com/saulo-duarte/appraisal-api/internal/reviewcycle"
	"github.com/saulo-duarte/appraisal-api/internal/user"
)

func Models() []any {
	return []any{
		&user.User{},
		&employee.EmployeeProfile{},
		&reviewcycle.ReviewCycle{},
		&appraisal.Appraisal{},
		&goal.Goal{},
		&feedback.Feedback{},
	}
}
