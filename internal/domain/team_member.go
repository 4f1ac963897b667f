package domain

// TeamMember is a person on the team. Projects holds project names and is not enforced.
type TeamMember struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Role           string   `json:"role"`
	Email          string   `json:"email"`
	Projects       []string `json:"projects"`
	Performance    float64  `json:"performance"`
	Attendance     float64  `json:"attendance"`
	HoursLogged    float64  `json:"hoursLogged"`
	TasksCompleted int      `json:"tasksCompleted"`
	Tasks          int      `json:"tasks"`
	ActualHours    float64  `json:"actualHours"`
	PlannedHours   float64  `json:"plannedHours"`
}

// Validate enforces the member form.
func (m TeamMember) Validate() error {
	errs := fieldErrors{}
	errs.require("name", m.Name)
	errs.require("role", m.Role)
	errs.percent("performance", m.Performance)
	errs.percent("attendance", m.Attendance)
	errs.nonNegative("hoursLogged", m.HoursLogged)
	errs.nonNegative("actualHours", m.ActualHours)
	errs.nonNegative("plannedHours", m.PlannedHours)
	if m.TasksCompleted < 0 || m.Tasks < 0 {
		errs["tasks"] = "must not be negative"
	}
	return errs.err("member")
}

// Clone returns a deep copy.
func (m TeamMember) Clone() TeamMember {
	if m.Projects != nil {
		m.Projects = append([]string(nil), m.Projects...)
	}
	return m
}
