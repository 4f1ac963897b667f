package cli

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/spec-kit/teamboard/internal/config"
	"github.com/spec-kit/teamboard/internal/view"
)

// filterFlags holds the list predicates shared by collection commands.
type filterFlags struct {
	Search string
	Status string
	Member string
	Group  bool
}

// Flags returns CLI flags for filtering. withGroup adds --group for grouped output.
func (f *filterFlags) Flags(withStatus, withGroup bool) []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "search",
			Aliases:     []string{"q"},
			Usage:       "Case-insensitive text search",
			Category:    "Filter",
			Destination: &f.Search,
		},
		&cli.StringFlag{
			Name:        "member",
			Usage:       "Only records involving this member",
			Category:    "Filter",
			Value:       view.All,
			Destination: &f.Member,
		},
	}
	if withStatus {
		flags = append(flags, &cli.StringFlag{
			Name:        "status",
			Usage:       "Only records with this status",
			Category:    "Filter",
			Value:       view.All,
			Destination: &f.Status,
		})
	}
	if withGroup {
		flags = append(flags, &cli.BoolFlag{
			Name:        "group",
			Usage:       "Group records by status",
			Category:    "Display",
			Destination: &f.Group,
		})
	}
	return flags
}

func (f *filterFlags) criteria() view.Criteria {
	return view.Criteria{Search: f.Search, Status: f.Status, Member: f.Member}
}

func cmdTickets(cfg *config.Config, out io.Writer) *cli.Command {
	var filter filterFlags
	return &cli.Command{
		Name:  "tickets",
		Usage: "List tickets",
		Flags: filter.Flags(true, true),
		Action: func(ctx context.Context, _ *cli.Command) error {
			s, err := openSession(ctx, cfg, out)
			if err != nil {
				return err
			}
			tickets := view.FilterTickets(s.store.Tickets(), filter.criteria())
			return s.finish(s.render.Tickets(tickets, filter.Group))
		},
	}
}

func cmdProjects(cfg *config.Config, out io.Writer) *cli.Command {
	var filter filterFlags
	return &cli.Command{
		Name:  "projects",
		Usage: "List projects",
		Flags: filter.Flags(true, true),
		Action: func(ctx context.Context, _ *cli.Command) error {
			s, err := openSession(ctx, cfg, out)
			if err != nil {
				return err
			}
			projects := view.FilterProjects(s.store.Projects(), filter.criteria())
			return s.finish(s.render.Projects(projects, filter.Group))
		},
	}
}

func cmdMembers(cfg *config.Config, out io.Writer) *cli.Command {
	var filter filterFlags
	return &cli.Command{
		Name:  "members",
		Usage: "List team members",
		Flags: filter.Flags(false, false),
		Action: func(ctx context.Context, _ *cli.Command) error {
			s, err := openSession(ctx, cfg, out)
			if err != nil {
				return err
			}
			members := view.FilterMembers(s.store.Members(), filter.criteria())
			return s.finish(s.render.Members(members))
		},
	}
}

func cmdCertifications(cfg *config.Config, out io.Writer) *cli.Command {
	var filter filterFlags
	return &cli.Command{
		Name:    "certifications",
		Aliases: []string{"certs"},
		Usage:   "List certifications with derived status",
		Flags:   filter.Flags(true, true),
		Action: func(ctx context.Context, _ *cli.Command) error {
			s, err := openSession(ctx, cfg, out)
			if err != nil {
				return err
			}
			certs, err := view.FilterCertifications(s.store.Certifications(), filter.criteria(), s.classifier)
			if renderErr := s.render.Certifications(certs, filter.Group); err == nil {
				err = renderErr
			}
			return s.finish(err)
		},
	}
}

func cmdHolidays(cfg *config.Config, out io.Writer) *cli.Command {
	var days int
	return &cli.Command{
		Name:  "holidays",
		Usage: "List holidays",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "upcoming",
				Usage:       "Only holidays within this many days from today (0 lists all)",
				Category:    "Filter",
				Destination: &days,
			},
		},
		Action: func(ctx context.Context, _ *cli.Command) error {
			s, err := openSession(ctx, cfg, out)
			if err != nil {
				return err
			}
			holidays := s.store.Holidays()
			if days > 0 {
				holidays = view.UpcomingHolidays(holidays, s.classifier.Now(), days)
			}
			return s.finish(s.render.Holidays(holidays))
		},
	}
}

func cmdSummary(cfg *config.Config, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "Show dashboard headline figures",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "holiday-window",
				Usage:       "Days ahead to look for holidays",
				Category:    "Board",
				Value:       cfg.Board.HolidayWindowDays,
				Sources:     cli.EnvVars("BOARD_HOLIDAY_WINDOW_DAYS"),
				Destination: &cfg.Board.HolidayWindowDays,
			},
		},
		Action: func(ctx context.Context, _ *cli.Command) error {
			s, err := openSession(ctx, cfg, out)
			if err != nil {
				return err
			}
			summary, err := view.Summarize(s.store.Snapshot(), s.classifier, cfg.Board.HolidayWindowDays)
			if renderErr := s.render.Summary(summary); err == nil {
				err = renderErr
			}
			return s.finish(err)
		},
	}
}
