package domain

// Certification tracks a member's certificate. ExpirationDate is the raw persisted value;
// nil means it does not expire or is not completed yet.
type Certification struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Provider       string   `json:"provider"`
	DateObtained   string   `json:"dateObtained"`
	ExpirationDate *string  `json:"expirationDate"`
	Skills         []string `json:"skills"`
	Level          string   `json:"level"`
	IsCompleted    bool     `json:"isCompleted"`
	AssignedTo     string   `json:"assignedTo"`
	Progress       float64  `json:"progress"`
}

// Validate enforces the certification form.
func (c Certification) Validate() error {
	errs := fieldErrors{}
	errs.require("name", c.Name)
	errs.require("provider", c.Provider)
	errs.require("assignedTo", c.AssignedTo)
	errs.percent("progress", c.Progress)
	return errs.err("certification")
}

// Clone returns a deep copy.
func (c Certification) Clone() Certification {
	if c.Skills != nil {
		c.Skills = append([]string(nil), c.Skills...)
	}
	if c.ExpirationDate != nil {
		exp := *c.ExpirationDate
		c.ExpirationDate = &exp
	}
	return c
}
