package employee

import (
	"gorm.io/datatypes"

	"github.com/saulo-duarte/appraisal-api/internal/payload"
	util "github.com/saulo-duarte/appraisal-api/internal/utils"
)

type Patch struct {
	User                payload.Opt[int64]
	Department          payload.Opt[string]
	Designation         payload.Opt[string]
	DateOfJoining       payload.Opt[util.LocalDate]
	ReportingManager    payload.Opt[string]
	CurrentProject      payload.Opt[string]
	CurrentTeam         payload.Opt[string]
	Skills              payload.Opt[[]string]
	LastAppraisalRating payload.Opt[int]
	CurrentGoals        payload.Opt[[]string]
}

var Fields = payload.Fields[Patch]{
	payload.Ref("user", func(p *Patch) *payload.Opt[int64] { return &p.User }, "userId").
		Aliases("user_id", "userId", "user"),
	payload.String("department", func(p *Patch) *payload.Opt[string] { return &p.Department }),
	payload.String("designation", func(p *Patch) *payload.Opt[string] { return &p.Designation }),
	payload.Date("dateOfJoining", func(p *Patch) *payload.Opt[util.LocalDate] { return &p.DateOfJoining }).
		Aliases("dateOfJoining", "date_of_joining", "joiningDate"),
	payload.String("reportingManager", func(p *Patch) *payload.Opt[string] { return &p.ReportingManager }).
		Aliases("reportingManager", "reporting_manager"),
	payload.String("currentProject", func(p *Patch) *payload.Opt[string] { return &p.CurrentProject }).
		Aliases("currentProject", "current_project"),
	payload.String("currentTeam", func(p *Patch) *payload.Opt[string] { return &p.CurrentTeam }).
		Aliases("currentTeam", "current_team"),
	payload.Strings("skills", func(p *Patch) *payload.Opt[[]string] { return &p.Skills }),
	payload.Int("lastAppraisalRating", func(p *Patch) *payload.Opt[int] { return &p.LastAppraisalRating }).
		Aliases("lastAppraisalRating", "last_appraisal_rating").
		Check(payload.Between(0, 5)),
	payload.Strings("currentGoals", func(p *Patch) *payload.Opt[[]string] { return &p.CurrentGoals }).
		Aliases("currentGoals", "current_goals"),
}

func (p Patch) apply(e *EmployeeProfile) {
	p.Department.Apply(&e.Department)
	p.Designation.Apply(&e.Designation)
	p.DateOfJoining.Apply(&e.DateOfJoining)
	p.ReportingManager.Apply(&e.ReportingManager)
	p.CurrentProject.Apply(&e.CurrentProject)
	p.CurrentTeam.Apply(&e.CurrentTeam)
	applyList(p.Skills, &e.Skills)
	p.LastAppraisalRating.ApplyPtr(&e.LastAppraisalRating)
	applyList(p.CurrentGoals, &e.CurrentGoals)
}

func applyList(o payload.Opt[[]string], dst *datatypes.JSONSlice[string]) {
	var list []string
	o.Apply(&list)
	if o.Set {
		*dst = datatypes.JSONSlice[string](list)
	}
}
