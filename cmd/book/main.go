package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"chiclon/internal/client"
	"chiclon/internal/domains/booking/model"
	scheduleModel "chiclon/internal/domains/schedule/model"
	"chiclon/internal/submission"
)

const (
	flagServer  = "server"
	flagTimeout = "timeout"
	flagDate    = "date"
	flagHours   = "hours"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	app := &cli.App{
		Name:  "book",
		Usage: "book a Chiclon appointment from the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagServer,
				Usage:   "booking service base URL",
				EnvVars: []string{"CHICLON_SERVER"},
				Value:   "http://localhost:3000",
			},
			&cli.DurationFlag{
				Name:  flagTimeout,
				Usage: "how long to wait for the booking service",
				Value: 15 * time.Second,
			},
			&cli.StringFlag{
				Name:    flagHours,
				Usage:   "business hours the server runs with, e.g. 1=9-18,6=9-17",
				EnvVars: []string{"BOOKING_BUSINESS_HOURS"},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log every state change",
			},
		},
		Before: func(c *cli.Context) error {
			level := zerolog.InfoLevel
			if c.Bool("verbose") {
				level = zerolog.DebugLevel
			}

			zerolog.SetGlobalLevel(level)

			return nil
		},
		Commands: []*cli.Command{
			slotsCommand(),
			haircutsCommand(),
			appointmentCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("book failed")
	}
}

func newClient(c *cli.Context) *client.Client {
	return client.New(c.String(flagServer))
}

func withTimeout(c *cli.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Context, c.Duration(flagTimeout))
}

func slotsCommand() *cli.Command {
	return &cli.Command{
		Name:  "slots",
		Usage: "list the hours offered on a date",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagDate, Usage: "date as YYYY-MM-DD", Required: true},
		},
		Action: func(c *cli.Context) error {
			ctx, cancel := withTimeout(c)
			defer cancel()

			return printSlots(ctx, newClient(c), c.String(flagDate))
		},
	}
}

func printSlots(ctx context.Context, booker *client.Client, date string) error {
	slots, err := booker.Slots(ctx, date)
	if err != nil {
		return err
	}

	if len(slots) == 0 {
		fmt.Printf("We are closed on %s.\n", date)

		return nil
	}

	fmt.Printf("Open hours on %s:\n", date)

	for _, slot := range slots {
		fmt.Printf("  %s  (%s)\n", slot.Label, slot.Value)
	}

	return nil
}

func haircutsCommand() *cli.Command {
	return &cli.Command{
		Name:  "haircuts",
		Usage: "list the haircut types",
		Action: func(c *cli.Context) error {
			ctx, cancel := withTimeout(c)
			defer cancel()

			types, err := newClient(c).HaircutTypes(ctx)
			if err != nil {
				return err
			}

			for _, haircut := range types {
				fmt.Printf("  %-12s %s\n", haircut.Code, haircut.Name)
			}

			return nil
		},
	}
}

func appointmentCommand() *cli.Command {
	return &cli.Command{
		Name:  "appointment",
		Usage: "submit a booking; without --time the open hours of --date are listed instead",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: model.FieldName, Usage: "client name"},
			&cli.StringFlag{Name: model.FieldPhone, Usage: "phone number"},
			&cli.StringFlag{Name: model.FieldEmail, Usage: "email address"},
			&cli.StringFlag{Name: "haircut", Usage: "haircut code, see the haircuts command"},
			&cli.StringFlag{Name: flagDate, Usage: "date as YYYY-MM-DD"},
			&cli.StringFlag{Name: model.FieldTime, Usage: "hour as HH:00"},
			&cli.StringFlag{Name: model.FieldNotes, Usage: "anything the barber should know"},
		},
		Action: func(c *cli.Context) error {
			ctx, cancel := withTimeout(c)
			defer cancel()

			booker := newClient(c)

			if c.String(model.FieldTime) == "" && c.String(flagDate) != "" {
				return printSlots(ctx, booker, c.String(flagDate))
			}

			form, err := newForm(booker, c.String(flagHours))
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}

			state := form.Submit(ctx, map[string]string{
				model.FieldName:        c.String(model.FieldName),
				model.FieldPhone:       c.String(model.FieldPhone),
				model.FieldEmail:       c.String(model.FieldEmail),
				model.FieldHaircutType: c.String("haircut"),
				model.FieldDate:        c.String(flagDate),
				model.FieldTime:        c.String(model.FieldTime),
				model.FieldNotes:       c.String(model.FieldNotes),
			})

			return report(state)
		},
	}
}

// newForm builds a form whose slots follow the same business hours as the server.
func newForm(booker submission.RemoteBooker, hours string) (*submission.Form, error) {
	businessHours, err := scheduleModel.ParseBusinessHours(hours)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", flagHours, err)
	}

	return submission.NewForm(booker,
		submission.WithBusinessHours(businessHours),
		submission.WithObserver(func(state submission.State) {
			log.Debug().Str("status", state.Status.String()).Msg("submission state changed")
		}),
	), nil
}

func report(state submission.State) error {
	switch state.Status {
	case submission.Succeeded:
		fmt.Println(state.Notice.Message)

		if booking := state.Booking; booking != nil {
			fmt.Printf("  %s, %s on %s at %s\n", booking.Name, booking.HaircutType, booking.Date, booking.Time)
		}

		return nil
	case submission.Failed:
		return cli.Exit(state.Reason, 1)
	default:
		return cli.Exit(state.Notice.Message, 2)
	}
}
