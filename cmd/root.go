package cmd

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"resort-concierge/config"
	"resort-concierge/logger"
	"resort-concierge/model"
	"resort-concierge/store"
	"resort-concierge/tui"
)

const appName = "resort-concierge"

// flags override the environment configuration for a single run.
type flags struct {
	catalog  string
	logLevel string
	logFile  string
	debug    bool
}

var opts flags

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Resort concierge for the terminal",
	Long: `Book sunbeds, order drinks and food, call a waiter and manage room services
from the terminal.

Configuration is read from the environment and an optional .env file:
  CONCIERGE_GUEST_NAME, CONCIERGE_HOTEL_NAME, CONCIERGE_ROOM_NUMBER, CONCIERGE_SUNBED_QUOTA,
  CONCIERGE_WAITER_AUTO_RESOLVE, CONCIERGE_ROOM_AUTO_RESOLVE, CONCIERGE_CATALOG,
  CONCIERGE_LOG_LEVEL, CONCIERGE_LOG_FILE, CONCIERGE_DEBUG`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConcierge()
	},
}

func newVersionCmd(version, commit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of " + appName,
		Run: func(cmd *cobra.Command, args []string) {
			out := fmt.Sprintf("%s %s", appName, version)
			if commit != "none" && commit != "" {
				out += fmt.Sprintf(" (%s)", commit)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
		},
	}
}

// Execute wires the subcommands and runs the one named on the command line.
func Execute(version, commit string) error {
	rootCmd.Version = version
	rootCmd.PersistentFlags().StringVar(&opts.catalog, "catalog", "", "path to a catalog.json overriding the built-in sunbeds and menu")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "write debug logs")
	rootCmd.AddCommand(newMenuCmd(), newSunbedsCmd(), newVersionCmd(version, commit))
	return rootCmd.Execute()
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.catalog != "" {
		cfg.CatalogPath = opts.catalog
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}
	if opts.debug {
		cfg.Debug = true
	}
	return cfg, nil
}

func loadCatalog() (store.Catalog, error) {
	cfg, err := loadConfig()
	if err != nil {
		return store.Catalog{}, err
	}
	return store.LoadCatalog(cfg.CatalogPath)
}

func runConcierge() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFile, cfg.Debug)
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "logging disabled: %v\n", err)
		log = logger.Discard()
	}
	defer log.Close()

	catalog, err := store.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Error("catalog unavailable", slog.Any("error", err))
		return err
	}
	log.Info("starting concierge",
		slog.String("version", rootCmd.Version),
		slog.String("guest", cfg.GuestName),
		slog.Int("sunbeds", len(catalog.Sunbeds)),
		slog.Int("menu_items", len(catalog.Menu)),
	)

	app := tui.New(tui.Options{
		Guest: model.GuestInfo{
			UserName:    cfg.GuestName,
			HotelName:   cfg.HotelName,
			RoomNumber:  cfg.RoomNumber,
			SunbedQuota: cfg.SunbedQuota,
		},
		Catalog:           catalog,
		WaiterAutoResolve: cfg.WaiterAutoResolve,
		RoomAutoResolve:   cfg.RoomAutoResolve,
		Logger:            log.WithComponent("tui"),
	})
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		log.Error("program exited", slog.Any("error", err))
		return err
	}
	return nil
}
