package status

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/pkg/util/errorutil"
)

// CertificationStatus is derived from a certification's raw fields.
type CertificationStatus string

const (
	CertificationInProgress   CertificationStatus = "in-progress"
	CertificationExpiringSoon CertificationStatus = "expiring-soon"
	CertificationExpired      CertificationStatus = "expired"
	CertificationCompleted    CertificationStatus = "completed"
)

// CertificationStatuses lists every classifier output in bucket order.
func CertificationStatuses() []CertificationStatus {
	return []CertificationStatus{
		CertificationInProgress,
		CertificationExpiringSoon,
		CertificationExpired,
		CertificationCompleted,
	}
}

// DateParseError reports an expiration date that is not a calendar date.
type DateParseError struct {
	// CertificationID is set when a Classifier reports the failure.
	CertificationID string
	Value           string
	Err             error
}

func (e *DateParseError) Error() string {
	if e.CertificationID != "" {
		return fmt.Sprintf("certification %s: parse date %q: %v", e.CertificationID, e.Value, e.Err)
	}
	return fmt.Sprintf("parse date %q: %v", e.Value, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}

const dateLayout = "2006-01-02"

// ParseCalendarDate parses YYYY-MM-DD, or an RFC 3339 timestamp whose date part is used,
// into midnight of that day in loc.
func ParseCalendarDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.ParseInLocation(dateLayout, value, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, &DateParseError{Value: value, Err: err}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
}

// ClassifyCertification maps completion and expiration to a status as of now.
// An unparseable expiration yields CertificationInProgress together with a *DateParseError.
func ClassifyCertification(isCompleted bool, expiration *string, now time.Time) (CertificationStatus, error) {
	if isCompleted {
		return CertificationCompleted, nil
	}
	if expiration == nil || strings.TrimSpace(*expiration) == "" {
		return CertificationInProgress, nil
	}

	expires, err := ParseCalendarDate(*expiration, now.Location())
	if err != nil {
		return CertificationInProgress, err
	}

	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	if expires.Before(today) {
		return CertificationExpired, nil
	}
	// calendar month, strict before: exactly one month out is not expiring soon
	if expires.Before(today.AddDate(0, 1, 0)) {
		return CertificationExpiringSoon, nil
	}
	return CertificationInProgress, nil
}

// Classifier applies ClassifyCertification with an injected clock and an explicit policy for
// malformed dates.
type Classifier struct {
	now    func() time.Time
	logger *zap.Logger
	strict bool
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Classifier) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the logger used to report malformed dates.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Classifier) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStrictDates makes Certification return parse errors as well as logging them.
func WithStrictDates(strict bool) Option {
	return func(c *Classifier) {
		c.strict = strict
	}
}

// NewClassifier builds a lenient classifier using the wall clock unless options say otherwise.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{now: time.Now, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Now returns the classifier's current time.
func (c *Classifier) Now() time.Time {
	return c.now()
}

// Certification classifies cert. A malformed expiration date is always logged and the cert
// falls back to CertificationInProgress; strict classifiers also return the *DateParseError,
// tagged with the certification ID.
func (c *Classifier) Certification(cert domain.Certification) (CertificationStatus, error) {
	status, err := ClassifyCertification(cert.IsCompleted, cert.ExpirationDate, c.now())
	if err == nil {
		return status, nil
	}
	c.logger.Warn("malformed certification expiration date",
		zap.String("certification_id", cert.ID),
		zap.String("name", cert.Name),
		zap.Bool("strict", c.strict),
		zap.Error(err))
	if !c.strict {
		return status, nil
	}
	var parseErr *DateParseError
	if errors.As(err, &parseErr) {
		return status, &DateParseError{CertificationID: cert.ID, Value: parseErr.Value, Err: parseErr.Err}
	}
	return status, err
}

// CertificationStatus classifies cert for display. Malformed dates are logged by Certification;
// callers that must honour strict mode use Certification or Certifications instead.
func (c *Classifier) CertificationStatus(cert domain.Certification) CertificationStatus {
	status, _ := c.Certification(cert)
	return status
}

// Certifications classifies certs in order. In strict mode every malformed expiration date is
// reported through a single MalformedDatesError.
func (c *Classifier) Certifications(certs []domain.Certification) ([]CertificationStatus, error) {
	statuses := make([]CertificationStatus, len(certs))
	var failed []*DateParseError
	for i, cert := range certs {
		status, err := c.Certification(cert)
		statuses[i] = status
		var parseErr *DateParseError
		if errors.As(err, &parseErr) {
			failed = append(failed, parseErr)
		}
	}
	return statuses, MalformedDatesError(failed)
}

// MalformedDatesError folds date failures into one validation error answered with 422. Details
// map certification ID to the rejected value. It returns nil when failed is empty.
func MalformedDatesError(failed []*DateParseError) error {
	if len(failed) == 0 {
		return nil
	}
	details := make(map[string]any, len(failed))
	errs := make([]error, 0, len(failed))
	for _, parseErr := range failed {
		details[parseErr.CertificationID] = parseErr.Value
		errs = append(errs, parseErr)
	}
	domainErr := errorutil.NewDomainError(errorutil.CodeValidation,
		"malformed certification expiration dates", http.StatusUnprocessableEntity, details)
	domainErr.Err = errors.Join(errs...)
	return domainErr
}
