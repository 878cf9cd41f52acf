package feedback

import "github.com/saulo-duarte/appraisal-api/internal/payload"

type Patch struct {
	Employee     payload.Opt[int64]
	Reviewer     payload.Opt[int64]
	FeedbackType payload.Opt[string]
	Comments     payload.Opt[string]
	Rating       payload.Opt[int]
	Achievements payload.Opt[string]
	Challenges   payload.Opt[string]
	Improvements payload.Opt[string]
}

var Fields = payload.Fields[Patch]{
	payload.Ref("employee", func(p *Patch) *payload.Opt[int64] { return &p.Employee }, "employeeProfileId", "employeeId").
		Aliases("employee_id", "employeeId", "employeeProfileId", "employee"),
	payload.Ref("reviewer", func(p *Patch) *payload.Opt[int64] { return &p.Reviewer }, "userId", "reviewerId").
		Aliases("reviewer_id", "reviewerId", "manager_id", "managerId", "reviewer", "manager"),
	payload.String("feedbackType", func(p *Patch) *payload.Opt[string] { return &p.FeedbackType }).
		Aliases("feedbackType", "feedback_type", "type").
		Default(TypeSelf).
		NotNull().
		Check(payload.NotBlank),
	payload.String("comments", func(p *Patch) *payload.Opt[string] { return &p.Comments }),
	payload.Int("rating", func(p *Patch) *payload.Opt[int] { return &p.Rating }).
		Default(0).
		Check(payload.Between(1, 5)),
	payload.String("achievements", func(p *Patch) *payload.Opt[string] { return &p.Achievements }),
	payload.String("challenges", func(p *Patch) *payload.Opt[string] { return &p.Challenges }),
	payload.String("improvements", func(p *Patch) *payload.Opt[string] { return &p.Improvements }).
		Aliases("improvements", "areasOfImprovement"),
}

func (p Patch) apply(f *Feedback) {
	p.FeedbackType.Apply(&f.FeedbackType)
	p.Comments.Apply(&f.Comments)
	p.Rating.Apply(&f.Rating)
	p.Achievements.Apply(&f.Achievements)
	p.Challenges.Apply(&f.Challenges)
	p.Improvements.Apply(&f.Improvements)
}
