package domain

import "time"

// TicketStatus is set directly by the user; it is never derived.
type TicketStatus string

const (
	TicketStatusDevelopment TicketStatus = "development"
	TicketStatusInProgress  TicketStatus = "in-progress"
	TicketStatusQA          TicketStatus = "qa"
	TicketStatusUAT         TicketStatus = "uat"
	TicketStatusDone        TicketStatus = "done"
	TicketStatusCompleted   TicketStatus = "completed"
	TicketStatusBlocked     TicketStatus = "blocked"
)

// TicketStatuses lists statuses in board column order.
func TicketStatuses() []TicketStatus {
	return []TicketStatus{
		TicketStatusDevelopment,
		TicketStatusInProgress,
		TicketStatusQA,
		TicketStatusUAT,
		TicketStatusDone,
		TicketStatusCompleted,
		TicketStatusBlocked,
	}
}

// IsValid checks if the status is known.
func (s TicketStatus) IsValid() bool {
	for _, candidate := range TicketStatuses() {
		if s == candidate {
			return true
		}
	}
	return false
}

// TicketPriority enumerates urgency.
type TicketPriority string

const (
	TicketPriorityCritical TicketPriority = "critical"
	TicketPriorityHigh     TicketPriority = "high"
	TicketPriorityMedium   TicketPriority = "medium"
	TicketPriorityLow      TicketPriority = "low"
)

// IsValid checks if the priority is known.
func (p TicketPriority) IsValid() bool {
	switch p {
	case TicketPriorityCritical, TicketPriorityHigh, TicketPriorityMedium, TicketPriorityLow:
		return true
	default:
		return false
	}
}

// Comment is a single entry in a ticket thread.
type Comment struct {
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Ticket is a unit of tracked work. Time values are hours.
type Ticket struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Status       TicketStatus   `json:"status"`
	Priority     TicketPriority `json:"priority"`
	Assignee     string         `json:"assignee"`
	Project      string         `json:"project"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	TimeSpent    float64        `json:"timeSpent"`
	TimeEstimate float64        `json:"timeEstimate"`
	Comments     []Comment      `json:"comments"`
}

// ApplyDefaults fills status and priority for newly entered tickets.
func (t *Ticket) ApplyDefaults() {
	if t.Status == "" {
		t.Status = TicketStatusDevelopment
	}
	if t.Priority == "" {
		t.Priority = TicketPriorityMedium
	}
	if t.Comments == nil {
		t.Comments = []Comment{}
	}
}

// Validate enforces the required fields of the ticket entry form.
func (t Ticket) Validate() error {
	errs := fieldErrors{}
	errs.require("title", t.Title)
	errs.require("description", t.Description)
	errs.require("assignee", t.Assignee)
	errs.require("project", t.Project)
	if t.TimeEstimate <= 0 {
		errs["timeEstimate"] = "must be greater than 0"
	}
	errs.nonNegative("timeSpent", t.TimeSpent)
	if t.Status != "" && !t.Status.IsValid() {
		errs["status"] = "unknown status"
	}
	if t.Priority != "" && !t.Priority.IsValid() {
		errs["priority"] = "unknown priority"
	}
	return errs.err("ticket")
}

// Clone returns a deep copy.
func (t Ticket) Clone() Ticket {
	if t.Comments != nil {
		t.Comments = append([]Comment(nil), t.Comments...)
	}
	return t
}
