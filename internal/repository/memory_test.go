package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/m-mizutani/gt"

	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/repository"
)

func TestMemoryTicketRepository(t *testing.T) {
	repo := repository.NewMemoryTicketRepository()
	ctx := context.Background()

	ticket := &domain.Ticket{ID: "t1", Title: "Login page", Comments: []domain.Comment{{Author: "Bob", Text: "hi"}}}
	gt.NoError(t, repo.Create(ctx, ticket)).Required()
	gt.True(t, errors.Is(repo.Create(ctx, ticket), repository.ErrDuplicateID))

	got, err := repo.GetByID(ctx, "t1")
	gt.NoError(t, err).Required()
	got.Comments[0].Text = "mutated"

	again, err := repo.GetByID(ctx, "t1")
	gt.NoError(t, err).Required()
	gt.Equal(t, again.Comments[0].Text, "hi")

	ticket.Title = "Renamed"
	gt.NoError(t, repo.Update(ctx, ticket))
	list, err := repo.List(ctx)
	gt.NoError(t, err).Required()
	gt.A(t, list).Length(1)
	gt.Equal(t, list[0].Title, "Renamed")

	gt.NoError(t, repo.Delete(ctx, "t1"))
	gt.True(t, errors.Is(repo.Delete(ctx, "t1"), pgx.ErrNoRows))
	gt.True(t, errors.Is(repo.Update(ctx, ticket), pgx.ErrNoRows))
	_, err = repo.GetByID(ctx, "t1")
	gt.True(t, errors.Is(err, pgx.ErrNoRows))
}

func TestMemoryRepositoriesKeepInsertionOrder(t *testing.T) {
	repo := repository.NewMemoryProjectRepository()
	ctx := context.Background()
	for _, id := range []string{"c", "a", "b"} {
		gt.NoError(t, repo.Create(ctx, &domain.Project{ID: id, Name: id}))
	}
	list, err := repo.List(ctx)
	gt.NoError(t, err).Required()
	gt.Equal(t, []string{list[0].ID, list[1].ID, list[2].ID}, []string{"c", "a", "b"})
}

func TestMemoryHolidayRepository(t *testing.T) {
	seed := []domain.Holiday{{Date: "2026-12-25", Name: "Christmas", Type: domain.HolidayTypePublic}}
	repo := repository.NewMemoryHolidayRepository(seed...)
	seed[0].Name = "changed"

	list, err := repo.List(context.Background())
	gt.NoError(t, err).Required()
	gt.A(t, list).Length(1)
	gt.Equal(t, list[0].Name, "Christmas")
}
