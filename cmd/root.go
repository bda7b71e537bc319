package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/bgraf/routetracker/config"
	"github.com/spf13/cobra"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "routetracker",
	Short: "Upload hiking tracks and show them on a map",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	var err error

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.routetracker.yaml)")

	rootCmd.PersistentFlags().StringP("store", "s", "", "Routes file or database")
	err = viper.BindPFlag(
		config.KeyStorePath,
		rootCmd.PersistentFlags().Lookup("store"),
	)
	if err != nil {
		panic(err)
	}

	rootCmd.PersistentFlags().String("driver", "", "Store driver (json or sqlite)")
	err = viper.BindPFlag(
		config.KeyStoreDriver,
		rootCmd.PersistentFlags().Lookup("driver"),
	)
	if err != nil {
		panic(err)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.SetDefaults()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in the working and home directory with name ".routetracker" (without extension).
		if dir, err := os.Getwd(); err == nil {
			viper.AddConfigPath(dir)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".routetracker")
	}

	viper.SetEnvPrefix("routetracker")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
