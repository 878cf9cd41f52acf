package reviewcycle

import (
	"github.com/saulo-duarte/appraisal-api/internal/payload"
	util "github.com/saulo-duarte/appraisal-api/internal/utils"
)

type Patch struct {
	CycleName   payload.Opt[string]
	Status      payload.Opt[string]
	Deadline    payload.Opt[util.LocalDate]
	StartDate   payload.Opt[util.LocalDate]
	EndDate     payload.Opt[util.LocalDate]
	Description payload.Opt[string]
}

var Fields = payload.Fields[Patch]{
	payload.String("cycleName", func(p *Patch) *payload.Opt[string] { return &p.CycleName }).
		Aliases("cycleName", "cycle_name", "name").
		NotNull().
		Check(payload.NotBlank),
	payload.String("status", func(p *Patch) *payload.Opt[string] { return &p.Status }).
		Default(StatusScheduled).
		NotNull().
		Check(payload.NotBlank),
	payload.Date("deadline", func(p *Patch) *payload.Opt[util.LocalDate] { return &p.Deadline }).
		NotNull(),
	payload.Date("startDate", func(p *Patch) *payload.Opt[util.LocalDate] { return &p.StartDate }).
		Aliases("startDate", "start_date"),
	payload.Date("endDate", func(p *Patch) *payload.Opt[util.LocalDate] { return &p.EndDate }).
		Aliases("endDate", "end_date"),
	payload.String("description", func(p *Patch) *payload.Opt[string] { return &p.Description }),
}

func (p Patch) apply(c *ReviewCycle) {
	p.CycleName.Apply(&c.CycleName)
	p.Status.Apply(&c.Status)
	p.Deadline.Apply(&c.Deadline)
	p.StartDate.Apply(&c.StartDate)
	p.EndDate.Apply(&c.EndDate)
	p.Description.Apply(&c.Description)
}
