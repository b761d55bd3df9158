// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/luxfi/filesystem/perms"
	luxlog "github.com/luxfi/log"
	"github.com/mbattoken/mbat-cli/cmd/contractcmd"
	"github.com/mbattoken/mbat-cli/cmd/migratecmd"
	"github.com/mbattoken/mbat-cli/pkg/application"
	"github.com/mbattoken/mbat-cli/pkg/config"
	"github.com/mbattoken/mbat-cli/pkg/constants"
	"github.com/mbattoken/mbat-cli/pkg/prompts"
	"github.com/mbattoken/mbat-cli/pkg/ux"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	app        *application.App
	logFactory luxlog.Factory

	logLevel       string
	Version        = "0.1.0"
	cfgFile        string
	nonInteractive bool
)

func NewRootCmd() *cobra.Command {
	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use: constants.CLIName,
		Long: `mbat - deployment tool for the MBAT token.

mbat runs the numbered deployment migrations against an EVM network and keeps
a record of every contract it deployed, per network.

QUICK START:

  # Deploy everything to a local node
  mbat migrate --rpc http://127.0.0.1:8545

  # Only the MBAT token, checking its supply afterwards
  mbat contract deploy mbat --verify

  # See what was deployed
  mbat contract deployments --network development

The deployer key is taken from --private-key, MBAT_PRIVATE_KEY or
MBAT_MNEMONIC, in that order, or prompted for.`,
		PersistentPreRunE: createApp,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mbat/cli.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "ERROR", "log level for the application")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false,
		"Disable prompts; fail if required values are missing (also enabled when stdin is not a TTY or CI=1)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Show verbose output (info level logs)")
	rootCmd.PersistentFlags().Bool("debug", false, "Show debug output (debug level logs)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Show only errors (quiet mode)")

	// add sub commands
	rootCmd.AddCommand(migratecmd.NewCmd(app))
	rootCmd.AddCommand(contractcmd.NewCmd(app))

	return rootCmd
}

func createApp(cmd *cobra.Command, _ []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(baseDir)
	if err != nil {
		return err
	}

	// Adjust log level based on flags BEFORE any logging happens
	if cmd.Flags().Changed("debug") {
		setLogLevel("DEBUG")
	} else if cmd.Flags().Changed("verbose") {
		setLogLevel("INFO")
	} else if cmd.Flags().Changed("quiet") {
		setLogLevel("ERROR")
	} else if logLevel != "" {
		setLogLevel(logLevel)
	}

	// If --non-interactive flag is set, propagate to env so IsInteractive() sees it
	if nonInteractive {
		_ = os.Setenv(prompts.EnvNonInteractive, "1")
	}

	prompter := prompts.NewPrompterForMode(nonInteractive)
	app.Setup(baseDir, log, config.New(), prompter)

	return initConfig()
}

func setLogLevel(name string) {
	lvl, err := luxlog.ToLevel(name)
	if err != nil {
		return
	}
	logFactory.SetLogLevel(constants.CLIName, lvl)
	logFactory.SetDisplayLevel(constants.CLIName, lvl)
}

func setupEnv() (string, error) {
	// Set base dir
	home, err := os.UserHomeDir()
	if err != nil {
		// no logger here yet
		fmt.Printf("unable to get the home directory %s\n", err)
		return "", err
	}
	baseDir := filepath.Join(home, constants.BaseDirName)

	// Create base dir if it doesn't exist
	err = os.MkdirAll(baseDir, 0o750)
	if err != nil {
		// no logger here yet
		fmt.Printf("failed creating the basedir %s: %s\n", baseDir, err)
		return "", err
	}

	deploymentsDir := filepath.Join(baseDir, constants.DeploymentsDir)
	if err = os.MkdirAll(deploymentsDir, 0o750); err != nil {
		fmt.Printf("failed creating the deployments dir %s: %s\n", deploymentsDir, err)
		return "", err
	}

	return baseDir, nil
}

func setupLogging(baseDir string) (luxlog.Logger, error) {
	config := luxlog.Config{}
	config.LogLevel, _ = luxlog.ToLevel("INFO")
	config.DisplayLevel, _ = luxlog.ToLevel("WARN")

	config.Directory = filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(config.Directory, perms.ReadWriteExecute); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}

	config.LogFormat = luxlog.Colors
	config.MaxSize = constants.MaxLogFileSize
	config.MaxFiles = constants.MaxNumOfLogFiles
	config.MaxAge = constants.RetainOldFiles

	// Register ux package as internal so caller tracking shows actual source, not the wrapper
	luxlog.RegisterInternalPackages("github.com/mbattoken/mbat-cli/pkg/ux")

	factory := luxlog.NewFactoryWithConfig(config)
	log, err := factory.Make(constants.CLIName)
	if err != nil {
		factory.Close()
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	logFactory = factory
	// User output goes to stdout, logs go to stderr
	ux.ResetUserLog(log, os.Stdout)
	return log, nil
}

// initConfig reads in config file and ENV variables if set.
// Priority: flags > env vars > config file > defaults
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		viper.AddConfigPath(filepath.Join(home, constants.BaseDirName))
		viper.SetConfigType(constants.DefaultConfigFileType)
		viper.SetConfigName(constants.DefaultConfigFileName) // cli.json
	}

	config.SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		// No config file is normal, defaults and env vars still apply
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed reading config file: %w", err)
	}
	app.Log.Debug("using config file", "config-file", viper.ConfigFileUsed())
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	app = application.New()
	// replaced by the file backed log once the command starts
	ux.NewUserLog(luxlog.NewNoOpLogger(), os.Stdout)
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		ux.Logger.PrintError("%s", err)
		os.Exit(1)
	}
}
