package domain

// HolidayType distinguishes days off from observed days.
type HolidayType string

const (
	HolidayTypePublic     HolidayType = "public"
	HolidayTypeObservance HolidayType = "observance"
)

// Holiday is a calendar entry. Date uses YYYY-MM-DD.
type Holiday struct {
	Date string      `json:"date"`
	Name string      `json:"name"`
	Type HolidayType `json:"type"`
}

// Validate checks the holiday fields.
func (h Holiday) Validate() error {
	errs := fieldErrors{}
	errs.require("date", h.Date)
	errs.require("name", h.Name)
	if h.Type != HolidayTypePublic && h.Type != HolidayTypeObservance {
		errs["type"] = "must be public or observance"
	}
	return errs.err("holiday")
}
