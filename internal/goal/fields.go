package goal

import (
	"github.com/saulo-duarte/appraisal-api/internal/payload"
	util "github.com/saulo-duarte/appraisal-api/internal/utils"
)

type Patch struct {
	Employee        payload.Opt[int64]
	Appraisal       payload.Opt[int64]
	Title           payload.Opt[string]
	Description     payload.Opt[string]
	Status          payload.Opt[string]
	Priority        payload.Opt[string]
	Category        payload.Opt[string]
	StartDate       payload.Opt[util.LocalDate]
	TargetDate      payload.Opt[util.LocalDate]
	CompletionDate  payload.Opt[util.LocalDate]
	Progress        payload.Opt[int]
	ManagerComments payload.Opt[string]
	CreatedBy       payload.Opt[string]
}

var Fields = payload.Fields[Patch]{
	payload.Ref("employee", func(p *Patch) *payload.Opt[int64] { return &p.Employee }, "employeeProfileId", "employeeId").
		Aliases("employee_id", "employeeId", "employeeProfileId", "employee"),
	payload.Ref("appraisal", func(p *Patch) *payload.Opt[int64] { return &p.Appraisal }, "appraisalId").
		Aliases("appraisal_id", "appraisalId", "appraisal"),
	payload.String("title", func(p *Patch) *payload.Opt[string] { return &p.Title }),
	payload.String("description", func(p *Patch) *payload.Opt[string] { return &p.Description }),
	payload.String("status", func(p *Patch) *payload.Opt[string] { return &p.Status }).
		Default(StatusPending).
		NotNull().
		Check(payload.NotBlank),
	payload.String("priority", func(p *Patch) *payload.Opt[string] { return &p.Priority }),
	payload.String("category", func(p *Patch) *payload.Opt[string] { return &p.Category }),
	payload.Date("startDate", func(p *Patch) *payload.Opt[util.LocalDate] { return &p.StartDate }).
		Aliases("start_date", "startDate"),
	payload.Date("targetDate", func(p *Patch) *payload.Opt[util.LocalDate] { return &p.TargetDate }).
		Aliases("target_date", "targetDate", "endDate"),
	payload.Date("completionDate", func(p *Patch) *payload.Opt[util.LocalDate] { return &p.CompletionDate }).
		Aliases("completion_date", "completionDate"),
	payload.Int("progress", func(p *Patch) *payload.Opt[int] { return &p.Progress }).
		Aliases("progress", "progressPercentage").
		Default(0).
		Check(payload.Between(0, 100)),
	payload.String("managerComments", func(p *Patch) *payload.Opt[string] { return &p.ManagerComments }).
		Aliases("manager_comments", "managerComments"),
	payload.String("createdBy", func(p *Patch) *payload.Opt[string] { return &p.CreatedBy }).
		Aliases("created_by", "createdBy").
		Default(CreatedByManager).
		NotNull().
		Check(payload.NotBlank),
}

func (p Patch) apply(g *Goal) {
	p.Title.Apply(&g.Title)
	p.Description.Apply(&g.Description)
	p.Status.Apply(&g.Status)
	p.Priority.Apply(&g.Priority)
	p.Category.Apply(&g.Category)
	p.StartDate.Apply(&g.StartDate)
	p.TargetDate.Apply(&g.TargetDate)
	p.CompletionDate.Apply(&g.CompletionDate)
	p.Progress.Apply(&g.Progress)
	p.ManagerComments.Apply(&g.ManagerComments)
	p.CreatedBy.Apply(&g.CreatedBy)
}
