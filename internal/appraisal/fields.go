package appraisal

import (
	"github.com/saulo-duarte/appraisal-api/internal/payload"
	util "github.com/saulo-duarte/appraisal-api/internal/utils"
)

type Patch struct {
	Employee        payload.Opt[int64]
	ReviewCycle     payload.Opt[int64]
	SelfRating      payload.Opt[int]
	ManagerRating   payload.Opt[int]
	Status          payload.Opt[string]
	CycleName       payload.Opt[string]
	AppraisalDate   payload.Opt[util.LocalDate]
	PeriodStart     payload.Opt[util.LocalDate]
	PeriodEnd       payload.Opt[util.LocalDate]
	ReviewDate      payload.Opt[util.LocalDate]
	ManagerName     payload.Opt[string]
	ReviewerRole    payload.Opt[string]
	ManagerComments payload.Opt[string]
}

var Fields = payload.Fields[Patch]{
	payload.Ref("employee", func(p *Patch) *payload.Opt[int64] { return &p.Employee }, "employeeProfileId", "employeeId").
		Aliases("employee_id", "employeeId", "employeeProfileId", "employee"),
	payload.Ref("reviewCycle", func(p *Patch) *payload.Opt[int64] { return &p.ReviewCycle }, "cycleId", "reviewCycleId").
		Aliases("review_cycle_id", "reviewCycleId", "cycle_id", "cycleId", "reviewCycle", "cycle"),
	payload.Int("selfRating", func(p *Patch) *payload.Opt[int] { return &p.SelfRating }).
		Aliases("selfRating", "self_rating").
		Default(0).
		Check(payload.Between(0, 5)),
	payload.Int("managerRating", func(p *Patch) *payload.Opt[int] { return &p.ManagerRating }).
		Aliases("managerRating", "manager_rating").
		Default(0).
		Check(payload.Between(0, 5)),
	payload.String("status", func(p *Patch) *payload.Opt[string] { return &p.Status }).
		Default(StatusSubmitted).
		NotNull().
		Check(payload.NotBlank),
	payload.String("cycleName", func(p *Patch) *payload.Opt[string] { return &p.CycleName }).
		Aliases("cycleName", "cycle_name"),
	payload.Date("appraisalDate", func(p *Patch) *payload.Opt[util.LocalDate] { return &p.AppraisalDate }).
		Aliases("appraisalDate", "appraisal_date"),
	payload.Date("periodStart", func(p *Patch) *payload.Opt[util.LocalDate] { return &p.PeriodStart }).
		Aliases("periodStart", "period_start"),
	payload.Date("periodEnd", func(p *Patch) *payload.Opt[util.LocalDate] { return &p.PeriodEnd }).
		Aliases("periodEnd", "period_end"),
	payload.Date("reviewDate", func(p *Patch) *payload.Opt[util.LocalDate] { return &p.ReviewDate }).
		Aliases("reviewDate", "review_date"),
	payload.String("managerName", func(p *Patch) *payload.Opt[string] { return &p.ManagerName }).
		Aliases("managerName", "manager_name"),
	payload.String("reviewerRole", func(p *Patch) *payload.Opt[string] { return &p.ReviewerRole }).
		Aliases("reviewerRole", "reviewer_role"),
	payload.String("managerComments", func(p *Patch) *payload.Opt[string] { return &p.ManagerComments }).
		Aliases("managerComments", "manager_comments"),
}

func (p Patch) apply(a *Appraisal) {
	p.SelfRating.Apply(&a.SelfRating)
	p.ManagerRating.Apply(&a.ManagerRating)
	p.Status.Apply(&a.Status)
	p.CycleName.Apply(&a.CycleName)
	p.AppraisalDate.Apply(&a.AppraisalDate)
	p.PeriodStart.Apply(&a.PeriodStart)
	p.PeriodEnd.Apply(&a.PeriodEnd)
	p.ReviewDate.Apply(&a.ReviewDate)
	p.ManagerName.Apply(&a.ManagerName)
	p.ReviewerRole.Apply(&a.ReviewerRole)
	p.ManagerComments.Apply(&a.ManagerComments)
}
