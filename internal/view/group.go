package view

import (
	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/status"
)

// Bucket is a named group of records sharing a status.
type Bucket[T any] struct {
	Name    string `json:"name"`
	Records []T    `json:"records"`
}

// Groups is an ordered set of buckets. Every declared bucket is present, possibly empty.
type Groups[T any] struct {
	Buckets []Bucket[T] `json:"buckets"`
}

// Group partitions records by key. Buckets follow order; keys outside order are appended in
// first-seen order so that no record is dropped. Records keep their relative input order.
func Group[T any](records []T, order []string, key func(T) string) Groups[T] {
	index := make(map[string]int, len(order))
	buckets := make([]Bucket[T], 0, len(order))
	addBucket := func(name string) int {
		index[name] = len(buckets)
		buckets = append(buckets, Bucket[T]{Name: name, Records: []T{}})
		return index[name]
	}
	for _, name := range order {
		if _, dup := index[name]; !dup {
			addBucket(name)
		}
	}
	for _, record := range records {
		name := key(record)
		i, ok := index[name]
		if !ok {
			i = addBucket(name)
		}
		buckets[i].Records = append(buckets[i].Records, record)
	}
	return Groups[T]{Buckets: buckets}
}

// Get returns the records of the named bucket, or nil when no such bucket exists.
func (g Groups[T]) Get(name string) []T {
	for _, bucket := range g.Buckets {
		if bucket.Name == name {
			return bucket.Records
		}
	}
	return nil
}

// Names returns bucket names in order.
func (g Groups[T]) Names() []string {
	names := make([]string, 0, len(g.Buckets))
	for _, bucket := range g.Buckets {
		names = append(names, bucket.Name)
	}
	return names
}

// Flatten concatenates buckets in order.
func (g Groups[T]) Flatten() []T {
	var out []T
	for _, bucket := range g.Buckets {
		out = append(out, bucket.Records...)
	}
	return out
}

// NonEmpty returns only buckets with records, for displays that suppress empty groups.
func (g Groups[T]) NonEmpty() []Bucket[T] {
	out := make([]Bucket[T], 0, len(g.Buckets))
	for _, bucket := range g.Buckets {
		if len(bucket.Records) > 0 {
			out = append(out, bucket)
		}
	}
	return out
}

// Counts returns the size of every bucket.
func (g Groups[T]) Counts() map[string]int {
	counts := make(map[string]int, len(g.Buckets))
	for _, bucket := range g.Buckets {
		counts[bucket.Name] = len(bucket.Records)
	}
	return counts
}

func GroupTickets(tickets []domain.Ticket) Groups[domain.Ticket] {
	order := make([]string, 0, len(domain.TicketStatuses()))
	for _, s := range domain.TicketStatuses() {
		order = append(order, string(s))
	}
	return Group(tickets, order, func(t domain.Ticket) string { return string(t.Status) })
}

func GroupProjects(projects []domain.Project) Groups[domain.Project] {
	order := make([]string, 0, len(domain.ProjectStatuses()))
	for _, s := range domain.ProjectStatuses() {
		order = append(order, string(s))
	}
	return Group(projects, order, func(p domain.Project) string {
		return string(status.NormalizeProjectStatus(p.Status))
	})
}

// CertificationOrder is the bucket order for certifications.
func CertificationOrder() []string {
	order := make([]string, 0, len(status.CertificationStatuses()))
	for _, s := range status.CertificationStatuses() {
		order = append(order, string(s))
	}
	return order
}

// GroupCertifications buckets by derived status. The groups are complete even when a strict
// classifier reports malformed dates.
func GroupCertifications(certs []domain.Certification, classifier *status.Classifier) (Groups[domain.Certification], error) {
	statusOf, err := CertificationStatuses(certs, classifier)
	return Group(certs, CertificationOrder(), statusOf), err
}
