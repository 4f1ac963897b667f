package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/spec-kit/teamboard/internal/config"
	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/store"
)

func cmdAddProject(cfg *config.Config, out io.Writer) *cli.Command {
	var endDate string
	return &cli.Command{
		Name:      "add-project",
		Usage:     "Quick-add a pipeline project",
		ArgsUsage: "<name>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "end-date",
				Usage:       "Target end date (YYYY-MM-DD)",
				Destination: &endDate,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			s, err := openSession(ctx, cfg, out)
			if err != nil {
				return err
			}
			project, err := s.store.AddProjectQuick(ctx, strings.Join(c.Args().Slice(), " "), endDate)
			if err == nil {
				_, err = fmt.Fprintf(out, "created project %s (%s)\n", project.Name, project.ID)
			}
			return s.finish(err)
		},
	}
}

func cmdComment(cfg *config.Config, out io.Writer) *cli.Command {
	var author string
	return &cli.Command{
		Name:      "comment",
		Usage:     "Add a comment to a ticket",
		ArgsUsage: "<ticket-id> <text>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "author",
				Usage:       "Comment author",
				Sources:     cli.EnvVars("USER"),
				Destination: &author,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.NArg() < 2 {
				return errors.New("comment requires a ticket id and text")
			}
			s, err := openSession(ctx, cfg, out)
			if err != nil {
				return err
			}
			text := strings.Join(c.Args().Tail(), " ")
			ticket, err := s.store.AddComment(ctx, c.Args().First(), author, text)
			if err == nil {
				_, err = fmt.Fprintf(out, "commented on %s (%d comments)\n", ticket.Title, len(ticket.Comments))
			}
			return s.finish(err)
		},
	}
}

func cmdDelete(cfg *config.Config, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a ticket, project, member or certification",
		ArgsUsage: "<ticket|project|member|certification> <id>",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.NArg() != 2 {
				return errors.New("delete requires an entity and an id")
			}
			entity, id := c.Args().Get(0), c.Args().Get(1)
			s, err := openSession(ctx, cfg, out)
			if err != nil {
				return err
			}
			err = deleteEntity(ctx, s.store, entity, id)
			if err == nil {
				_, err = fmt.Fprintf(out, "deleted %s %s\n", entity, id)
			}
			return s.finish(err)
		},
	}
}

func deleteEntity(ctx context.Context, st *store.Store, entity, id string) error {
	switch entity {
	case "ticket":
		return st.DeleteTicket(ctx, id)
	case "project":
		return st.DeleteProject(ctx, id)
	case "member":
		return st.DeleteMember(ctx, id)
	case "certification", "cert":
		return st.DeleteCertification(ctx, id)
	default:
		return fmt.Errorf("unknown entity %q", entity)
	}
}

// ticketStatusUsage lists the accepted statuses for the move command.
func ticketStatusUsage() string {
	names := make([]string, 0, len(domain.TicketStatuses()))
	for _, s := range domain.TicketStatuses() {
		names = append(names, string(s))
	}
	return strings.Join(names, "|")
}

func cmdMove(cfg *config.Config, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "move",
		Usage:     "Change a ticket's status",
		ArgsUsage: "<ticket-id> <" + ticketStatusUsage() + ">",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.NArg() != 2 {
				return errors.New("move requires a ticket id and a status")
			}
			s, err := openSession(ctx, cfg, out)
			if err != nil {
				return err
			}
			next := domain.TicketStatus(c.Args().Get(1))
			ticket, err := s.store.UpdateTicket(ctx, c.Args().First(), store.TicketPatch{Status: &next})
			if err == nil {
				_, err = fmt.Fprintf(out, "%s is now %s\n", ticket.Title, ticket.Status)
			}
			return s.finish(err)
		},
	}
}
