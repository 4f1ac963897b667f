package domain

// ProjectStatus is the canonical project vocabulary. Raw project status strings are
// normalized into it before filtering or grouping.
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "Active"
	ProjectStatusOnHold    ProjectStatus = "On Hold"
	ProjectStatusCompleted ProjectStatus = "Completed"
	ProjectStatusPipeline  ProjectStatus = "Pipeline"
)

// ProjectStatuses lists the canonical statuses in display order.
func ProjectStatuses() []ProjectStatus {
	return []ProjectStatus{
		ProjectStatusActive,
		ProjectStatusOnHold,
		ProjectStatusCompleted,
		ProjectStatusPipeline,
	}
}

// TaskCount tracks task completion inside a project.
type TaskCount struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// Project groups tickets and members. Status is kept as entered.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Progress    float64   `json:"progress"`
	Budget      float64   `json:"budget"`
	Spent       float64   `json:"spent"`
	Team        []string  `json:"team"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Tasks       TaskCount `json:"tasks"`
}

// HasMember reports whether name is on the project team.
func (p Project) HasMember(name string) bool {
	for _, member := range p.Team {
		if member == name {
			return true
		}
	}
	return false
}

// Validate enforces the full project form.
func (p Project) Validate() error {
	errs := fieldErrors{}
	errs.require("name", p.Name)
	p.validateRanges(errs)
	return errs.err("project")
}

// ValidateQuickAdd enforces the quick-add form, which also requires an end date.
func (p Project) ValidateQuickAdd() error {
	errs := fieldErrors{}
	errs.require("name", p.Name)
	errs.require("endDate", p.EndDate)
	p.validateRanges(errs)
	return errs.err("project")
}

func (p Project) validateRanges(errs fieldErrors) {
	errs.percent("progress", p.Progress)
	errs.nonNegative("budget", p.Budget)
	errs.nonNegative("spent", p.Spent)
	if p.Tasks.Completed < 0 || p.Tasks.Total < 0 {
		errs["tasks"] = "must not be negative"
	}
}

// Clone returns a deep copy.
func (p Project) Clone() Project {
	if p.Team != nil {
		p.Team = append([]string(nil), p.Team...)
	}
	return p
}
