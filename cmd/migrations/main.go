package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/shishobooks/nameparser/pkg/config"
	"github.com/shishobooks/nameparser/pkg/contacts"
	"github.com/shishobooks/nameparser/pkg/database"
	"github.com/shishobooks/nameparser/pkg/migrations"
	"github.com/shishobooks/nameparser/pkg/models"
	"github.com/uptrace/bun/migrate"
	"github.com/urfave/cli/v2"
)

func main() {
	log := logger.New()

	cfg, err := config.New()
	if err != nil {
		log.Err(err).Fatal("config error")
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Err(err).Fatal("database error")
	}

	app := &cli.App{
		Name:        "migrations",
		Usage:       "CLI to interact with migrations",
		Description: "CLI to interact with migrations and keep stored contacts in sync with the parser",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "create migration tables",
				Action: func(c *cli.Context) error {
					migrator := migrate.NewMigrator(db, migrations.Migrations)
					return migrator.Init(c.Context)
				},
			},
			{
				Name:  "migrate",
				Usage: "migrate database",
				Action: func(c *cli.Context) error {
					migrator := migrate.NewMigrator(db, migrations.Migrations)

					group, err := migrator.Migrate(c.Context)
					if err != nil {
						return err
					}

					if group.ID == 0 {
						fmt.Printf("There are no new migrations to run\n")
						return nil
					}

					fmt.Printf("Migrated to %s\n", group)
					return nil
				},
			},
			{
				Name:  "rollback",
				Usage: "rollback the last migration group",
				Action: func(c *cli.Context) error {
					migrator := migrate.NewMigrator(db, migrations.Migrations)

					group, err := migrator.Rollback(c.Context)
					if err != nil {
						return err
					}

					if group.ID == 0 {
						fmt.Printf("There are no groups to roll back\n")
						return nil
					}

					fmt.Printf("Rolled back %s\n", group)
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "create Go migration",
				Action: func(c *cli.Context) error {
					migrator := migrate.NewMigrator(db, migrations.Migrations)

					name := strings.Join(c.Args().Slice(), "_")
					mf, err := migrator.CreateGoMigration(
						c.Context,
						name,
						migrate.WithGoTemplate(migrationTemplate),
					)
					if err != nil {
						return err
					}
					fmt.Printf("Created migration %s (%s)\n", mf.Name, mf.Path)

					return nil
				},
			},
			{
				Name:  "reparse-contacts",
				Usage: "re-run the name parser over every stored contact",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "batch-size", Value: 100, Usage: "number of contacts to load at a time"},
				},
				Action: func(c *cli.Context) error {
					svc := contacts.NewService(db, cfg.DatabaseMaxRetries)
					updated, total, err := reparseContacts(c.Context, svc, c.Int("batch-size"))
					if err != nil {
						return err
					}
					fmt.Printf("Reparsed %d contacts, %d changed\n", total, updated)
					return nil
				},
			},
			{
				Name:  "status",
				Usage: "print migrations status",
				Action: func(c *cli.Context) error {
					migrator := migrate.NewMigrator(db, migrations.Migrations)

					ms, err := migrator.MigrationsWithStatus(c.Context)
					if err != nil {
						return err
					}
					fmt.Printf("Migrations: %s\n", ms)
					fmt.Printf("Unapplied migrations: %s\n", ms.Unapplied())
					fmt.Printf("Last migration group: %s\n", ms.LastGroup())

					return nil
				},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Err(err).Fatal("app run error")
	}
}

// reparseContacts loads every contact before writing anything, since
// reparsing can change a contact's position in the listing order.
func reparseContacts(ctx context.Context, svc *contacts.Service, batchSize int) (int, int, error) {
	if batchSize < 1 {
		return 0, 0, errors.New("batch size must be at least 1")
	}

	var all []*models.Contact
	for offset := 0; ; offset += batchSize {
		list, err := svc.ListContacts(ctx, contacts.ListContactsOptions{
			Limit:  &batchSize,
			Offset: &offset,
		})
		if err != nil {
			return 0, 0, err
		}
		all = append(all, list...)
		if len(list) < batchSize {
			break
		}
	}

	updated := 0
	for _, contact := range all {
		changed, err := svc.ReparseContact(ctx, contact)
		if err != nil {
			return updated, len(all), errors.Wrapf(err, "failed to reparse contact %s", contact.ID)
		}
		if changed {
			updated++
		}
	}
	return updated, len(all), nil
}

const migrationTemplate = `package %s

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

func init() {
	up := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec("")
		return errors.WithStack(err)
	}

	down := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec("")
		return errors.WithStack(err)
	}

	Migrations.MustRegister(up, down)
}
`
