package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/sangkips/kuittikone/internal/application/service"
	"github.com/sangkips/kuittikone/internal/bootstrap"
	"github.com/sangkips/kuittikone/internal/config"
	"github.com/sangkips/kuittikone/internal/infrastructure/seed"
	"github.com/sangkips/kuittikone/pkg/asciiart"
	"github.com/sangkips/kuittikone/pkg/printer"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(afero.NewOsFs()).Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("kuittictl failed")
	}
}

// services is the store-backed part of the tool, opened per command
type services struct {
	store    *bootstrap.Store
	profiles *service.ProfileService
	receipts *service.ReceiptService
	backups  *service.BackupService
}

func openServices(c *cli.Context, fs afero.Fs) (*services, error) {
	cfg := loadConfig(c)
	st, err := bootstrap.OpenStore(c.Context, cfg, fs)
	if err != nil {
		return nil, err
	}

	var p printer.Printer = printer.NewNullPrinter()
	if c.Bool("print") {
		if p, err = printer.New(printer.Config{
			Type:    cfg.Printer.Type,
			USBPath: cfg.Printer.USBPath,
			Address: cfg.Printer.Address,
		}); err != nil {
			_ = st.Close()
			return nil, err
		}
	}

	profiles := service.NewProfileService(st.Documents)
	warranties := service.NewWarrantyService(st.Documents)
	return &services{
		store:    st,
		profiles: profiles,
		receipts: service.NewReceiptService(st.Documents, profiles, warranties,
			service.NewReceiptComposer(0), service.NewPrinterService(p, cfg.Printer.Width, nil), nil, cfg.Receipt.Width),
		backups: service.NewBackupService(st.Documents, fs, cfg.Store.BackupDir),
	}, nil
}

func loadConfig(c *cli.Context) *config.Config {
	cfg := config.LoadFile(c.String("env-file"))
	if store := c.String("store"); store != "" {
		cfg.Store.Driver = "file"
		cfg.Store.Path = store
	}
	config.SetupLogging(config.LogConfig{Level: c.String("log-level"), Format: "console"})
	return cfg
}

func newApp(fs afero.Fs) *cli.App {
	withServices := func(fn func(c *cli.Context, s *services) error) cli.ActionFunc {
		return func(c *cli.Context) error {
			s, err := openServices(c, fs)
			if err != nil {
				return err
			}
			defer s.store.Close()
			return fn(c, s)
		}
	}

	return &cli.App{
		Name:  "kuittictl",
		Usage: "compose receipts and manage merchant profiles",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env-file", Value: ".env", Usage: "configuration file"},
			&cli.StringFlag{Name: "store", Usage: "use this JSON store file instead of the configured store"},
			&cli.StringFlag{Name: "log-level", Value: "warn"},
		},
		Commands: []*cli.Command{
			{
				Name:  "seed",
				Usage: "insert the default profiles, or those of a YAML file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Usage: "YAML file with a presets map"},
				},
				Action: withServices(func(c *cli.Context, s *services) error {
					return seedProfiles(c.Context, c.App.Writer, fs, s.profiles, c.String("file"))
				}),
			},
			{
				Name:  "profiles",
				Usage: "list merchant profiles",
				Action: withServices(func(c *cli.Context, s *services) error {
					active := s.store.Documents.ActiveID()
					for _, p := range s.profiles.List() {
						marker := " "
						if p.PresetID == active {
							marker = "*"
						}
						fmt.Fprintf(c.App.Writer, "%s %-20s %-10s %s\n", marker, p.PresetID, p.TemplateType, p.CompanyName)
					}
					return nil
				}),
			},
			{
				Name:  "compose",
				Usage: "compose a receipt for a cart file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "cart", Required: true, Usage: "YAML cart file"},
					&cli.StringFlag{Name: "profile", Usage: "profile id, defaults to the active profile"},
					&cli.BoolFlag{Name: "print", Usage: "send the receipt to the configured printer"},
				},
				Action: withServices(func(c *cli.Context, s *services) error {
					cart, err := seed.LoadCart(fs, c.String("cart"))
					if err != nil {
						return err
					}
					out, err := s.receipts.Issue(c.Context, &service.IssueInput{
						PresetID: c.String("profile"),
						Items:    cart.Items,
						Payment:  cart.Payment,
						Print:    c.Bool("print"),
					})
					if err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, out.Receipt.Text)
					if out.PrintError != "" {
						fmt.Fprintln(c.App.ErrWriter, "print failed:", out.PrintError)
					}
					return nil
				}),
			},
			{
				Name:  "logo",
				Usage: "render a text logo",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "style", Value: "simple"},
					&cli.StringFlag{Name: "text", Required: true},
				},
				Action: func(c *cli.Context) error {
					fmt.Fprintln(c.App.Writer, asciiart.Render(c.String("text"), asciiart.ParseStyle(c.String("style"))))
					return nil
				},
			},
			{
				Name:  "backup",
				Usage: "write a snapshot of the store",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "dir", Usage: "target directory"},
				},
				Action: withServices(func(c *cli.Context, s *services) error {
					path, err := s.backups.Export(c.Context, c.String("dir"))
					if err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, path)
					return nil
				}),
			},
			{
				Name:  "restore",
				Usage: "replace the store with a snapshot",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Required: true},
				},
				Action: withServices(func(c *cli.Context, s *services) error {
					if err := s.backups.Restore(c.Context, c.String("file")); err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, "restored", c.String("file"))
					return nil
				}),
			},
		},
	}
}

// seedProfiles upserts the profiles of file, or the built-in defaults
func seedProfiles(ctx context.Context, w io.Writer, fs afero.Fs, profiles *service.ProfileService, file string) error {
	seeds := seed.DefaultProfiles()
	if file != "" {
		var err error
		if seeds, err = seed.LoadProfiles(fs, file); err != nil {
			return err
		}
	}
	for _, p := range seeds {
		if _, err := profiles.Upsert(ctx, p); err != nil {
			return err
		}
		fmt.Fprintln(w, "seeded", p.PresetID)
	}
	return nil
}
