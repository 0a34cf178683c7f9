package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tripapp/internal/platform/config"
)

var version = "dev"

// newRootCmd builds the command tree. Flags override the config file and
// TRIPAPP_* environment variables.
func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:          "tripapp",
		Short:        "Trip registration service",
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (yaml)")
	root.PersistentFlags().String("database-url", "", "postgres connection URL; empty uses the in-memory store")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	_ = v.BindPFlag("database.url", root.PersistentFlags().Lookup("database-url"))
	_ = v.BindPFlag("log.level", root.PersistentFlags().Lookup("log-level"))

	load := func() (config.Config, error) {
		return config.Load(v, cfgFile)
	}

	root.AddCommand(newServeCmd(v, load), newMigrateCmd(load))
	return root
}
