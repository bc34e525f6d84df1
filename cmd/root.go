package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/registro/internal/app"
	"github.com/zjrosen/registro/internal/config"
	"github.com/zjrosen/registro/internal/log"
	"github.com/zjrosen/registro/internal/registry"
	"github.com/zjrosen/registro/internal/ui/styles"
	"github.com/zjrosen/registro/internal/ui/userlist"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "registro",
	Short:   "A terminal ui for registering users",
	Long:    `An interactive console session that registers users after validating name, email, and password shape, and lists the accepted registrations on exit.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/registro/config.yaml)")
	rootCmd.Flags().Bool("debug", false,
		"write structured logs to registro.log")

	// Bind flags to viper
	_ = viper.BindPFlag("debug", rootCmd.Flags().Lookup("debug"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("debug", defaults.Debug)
	viper.SetDefault("ui.show_count", defaults.UI.ShowCount)
	viper.SetDefault("ui.mask_password", defaults.UI.MaskPassword)
	viper.SetDefault("theme.highlight", defaults.Theme.Highlight)
	viper.SetDefault("theme.subtle", defaults.Theme.Subtle)
	viper.SetDefault("theme.error", defaults.Theme.Error)
	viper.SetDefault("theme.success", defaults.Theme.Success)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .registro/config.yaml (current directory)
		// 2. ~/.config/registro/config.yaml (user config)
		if _, err := os.Stat(".registro/config.yaml"); err == nil {
			viper.SetConfigFile(".registro/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "registro"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .registro/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".registro/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runApp(cmd *cobra.Command, args []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Debug || os.Getenv("REGISTRO_DEBUG") != "" {
		cleanup, err := log.Init("registro.log")
		if err != nil {
			return fmt.Errorf("initializing log: %w", err)
		}
		defer cleanup()
	} else {
		log.SetEnabled(false)
	}

	styles.ApplyTheme(cfg.Theme.Highlight, cfg.Theme.Subtle, cfg.Theme.Error, cfg.Theme.Success)

	log.Info(log.CatApp, "Session started", "version", version)

	reg := registry.New()
	model := app.New(reg, cfg)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	// Persist the password echo preference when it was toggled in-session.
	if m, ok := final.(app.Model); ok && m.MaskPassword() != cfg.UI.MaskPassword {
		ui := cfg.UI
		ui.MaskPassword = m.MaskPassword()
		configFilePath := viper.ConfigFileUsed()
		if configFilePath == "" {
			configFilePath = ".registro/config.yaml"
		}
		if saveErr := config.SaveUI(configFilePath, ui); saveErr != nil {
			log.ErrorErr(log.CatConfig, "Failed to save ui settings", saveErr, "path", configFilePath)
		}
	}

	printUsers(cmd, reg)
	return nil
}

// printUsers writes the final listing to stdout, one user per line, in
// insertion order. Passwords never appear.
func printUsers(cmd *cobra.Command, reg *registry.Registry) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\n=== Lista de usuarios registrados ===")
	users := reg.Users()
	if len(users) == 0 {
		fmt.Fprintln(out, userlist.EmptyMessage)
		return
	}
	for _, u := range users {
		fmt.Fprintln(out, u)
	}
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
