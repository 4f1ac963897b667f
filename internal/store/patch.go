package store

import "github.com/spec-kit/teamboard/internal/domain"

// Patches carry only the fields being changed; nil means unchanged.

type TicketPatch struct {
	Title        *string                `json:"title,omitempty"`
	Description  *string                `json:"description,omitempty"`
	Status       *domain.TicketStatus   `json:"status,omitempty"`
	Priority     *domain.TicketPriority `json:"priority,omitempty"`
	Assignee     *string                `json:"assignee,omitempty"`
	Project      *string                `json:"project,omitempty"`
	TimeSpent    *float64               `json:"timeSpent,omitempty"`
	TimeEstimate *float64               `json:"timeEstimate,omitempty"`
	Comments     *[]domain.Comment      `json:"comments,omitempty"`
}

func (p TicketPatch) apply(t *domain.Ticket) {
	set(&t.Title, p.Title)
	set(&t.Description, p.Description)
	set(&t.Status, p.Status)
	set(&t.Priority, p.Priority)
	set(&t.Assignee, p.Assignee)
	set(&t.Project, p.Project)
	set(&t.TimeSpent, p.TimeSpent)
	set(&t.TimeEstimate, p.TimeEstimate)
	if p.Comments != nil {
		t.Comments = append([]domain.Comment{}, (*p.Comments)...)
	}
}

type ProjectPatch struct {
	Name        *string           `json:"name,omitempty"`
	Description *string           `json:"description,omitempty"`
	Status      *string           `json:"status,omitempty"`
	Priority    *string           `json:"priority,omitempty"`
	Progress    *float64          `json:"progress,omitempty"`
	Budget      *float64          `json:"budget,omitempty"`
	Spent       *float64          `json:"spent,omitempty"`
	Team        *[]string         `json:"team,omitempty"`
	StartDate   *string           `json:"startDate,omitempty"`
	EndDate     *string           `json:"endDate,omitempty"`
	Tasks       *domain.TaskCount `json:"tasks,omitempty"`
}

func (p ProjectPatch) apply(pr *domain.Project) {
	set(&pr.Name, p.Name)
	set(&pr.Description, p.Description)
	set(&pr.Status, p.Status)
	set(&pr.Priority, p.Priority)
	set(&pr.Progress, p.Progress)
	set(&pr.Budget, p.Budget)
	set(&pr.Spent, p.Spent)
	set(&pr.StartDate, p.StartDate)
	set(&pr.EndDate, p.EndDate)
	set(&pr.Tasks, p.Tasks)
	if p.Team != nil {
		pr.Team = append([]string{}, (*p.Team)...)
	}
}

type MemberPatch struct {
	Name           *string   `json:"name,omitempty"`
	Role           *string   `json:"role,omitempty"`
	Email          *string   `json:"email,omitempty"`
	Projects       *[]string `json:"projects,omitempty"`
	Performance    *float64  `json:"performance,omitempty"`
	Attendance     *float64  `json:"attendance,omitempty"`
	HoursLogged    *float64  `json:"hoursLogged,omitempty"`
	TasksCompleted *int      `json:"tasksCompleted,omitempty"`
	Tasks          *int      `json:"tasks,omitempty"`
	ActualHours    *float64  `json:"actualHours,omitempty"`
	PlannedHours   *float64  `json:"plannedHours,omitempty"`
}

func (p MemberPatch) apply(m *domain.TeamMember) {
	set(&m.Name, p.Name)
	set(&m.Role, p.Role)
	set(&m.Email, p.Email)
	set(&m.Performance, p.Performance)
	set(&m.Attendance, p.Attendance)
	set(&m.HoursLogged, p.HoursLogged)
	set(&m.TasksCompleted, p.TasksCompleted)
	set(&m.Tasks, p.Tasks)
	set(&m.ActualHours, p.ActualHours)
	set(&m.PlannedHours, p.PlannedHours)
	if p.Projects != nil {
		m.Projects = append([]string{}, (*p.Projects)...)
	}
}

// CertificationPatch sets ExpirationDate when non-nil; ClearExpiration removes it.
type CertificationPatch struct {
	Name            *string   `json:"name,omitempty"`
	Provider        *string   `json:"provider,omitempty"`
	DateObtained    *string   `json:"dateObtained,omitempty"`
	ExpirationDate  *string   `json:"expirationDate,omitempty"`
	ClearExpiration bool      `json:"clearExpiration,omitempty"`
	Skills          *[]string `json:"skills,omitempty"`
	Level           *string   `json:"level,omitempty"`
	IsCompleted     *bool     `json:"isCompleted,omitempty"`
	AssignedTo      *string   `json:"assignedTo,omitempty"`
	Progress        *float64  `json:"progress,omitempty"`
}

func (p CertificationPatch) apply(c *domain.Certification) {
	set(&c.Name, p.Name)
	set(&c.Provider, p.Provider)
	set(&c.DateObtained, p.DateObtained)
	set(&c.Level, p.Level)
	set(&c.IsCompleted, p.IsCompleted)
	set(&c.AssignedTo, p.AssignedTo)
	set(&c.Progress, p.Progress)
	if p.Skills != nil {
		c.Skills = append([]string{}, (*p.Skills)...)
	}
	switch {
	case p.ClearExpiration:
		c.ExpirationDate = nil
	case p.ExpirationDate != nil:
		exp := *p.ExpirationDate
		c.ExpirationDate = &exp
	}
}

func set[V any](dst *V, src *V) {
	if src != nil {
		*dst = *src
	}
}
