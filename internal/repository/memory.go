package repository

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/teamboard/internal/domain"
)

// memoryTable is an insertion-ordered record set used when no database is configured. Missing
// ids report pgx.ErrNoRows so callers handle both backends the same way.
type memoryTable[T any] struct {
	mu    sync.RWMutex
	rows  []T
	id    func(T) string
	clone func(T) T
}

func newMemoryTable[T any](id func(T) string, clone func(T) T) *memoryTable[T] {
	return &memoryTable[T]{id: id, clone: clone}
}

func (m *memoryTable[T]) index(id string) int {
	for i, row := range m.rows {
		if m.id(row) == id {
			return i
		}
	}
	return -1
}

func (m *memoryTable[T]) List(_ context.Context) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, 0, len(m.rows))
	for _, row := range m.rows {
		out = append(out, m.clone(row))
	}
	return out, nil
}

func (m *memoryTable[T]) GetByID(_ context.Context, id string) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i := m.index(id)
	if i < 0 {
		return nil, pgx.ErrNoRows
	}
	row := m.clone(m.rows[i])
	return &row, nil
}

func (m *memoryTable[T]) Create(_ context.Context, row *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.index(m.id(*row)) >= 0 {
		return ErrDuplicateID
	}
	m.rows = append(m.rows, m.clone(*row))
	return nil
}

func (m *memoryTable[T]) Update(_ context.Context, row *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(m.id(*row))
	if i < 0 {
		return pgx.ErrNoRows
	}
	m.rows[i] = m.clone(*row)
	return nil
}

func (m *memoryTable[T]) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id)
	if i < 0 {
		return pgx.ErrNoRows
	}
	m.rows = append(m.rows[:i], m.rows[i+1:]...)
	return nil
}

func NewMemoryTicketRepository() TicketRepository {
	return newMemoryTable(func(t domain.Ticket) string { return t.ID }, domain.Ticket.Clone)
}

func NewMemoryProjectRepository() ProjectRepository {
	return newMemoryTable(func(p domain.Project) string { return p.ID }, domain.Project.Clone)
}

func NewMemoryMemberRepository() MemberRepository {
	return newMemoryTable(func(m domain.TeamMember) string { return m.ID }, domain.TeamMember.Clone)
}

func NewMemoryCertificationRepository() CertificationRepository {
	return newMemoryTable(func(c domain.Certification) string { return c.ID }, domain.Certification.Clone)
}

type memoryHolidayRepository struct {
	holidays []domain.Holiday
}

// NewMemoryHolidayRepository returns a holiday calendar holding seed.
func NewMemoryHolidayRepository(seed ...domain.Holiday) HolidayRepository {
	return &memoryHolidayRepository{holidays: append([]domain.Holiday(nil), seed...)}
}

func (r *memoryHolidayRepository) List(_ context.Context) ([]domain.Holiday, error) {
	return append([]domain.Holiday{}, r.holidays...), nil
}
