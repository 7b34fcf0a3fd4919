package main

import (
	"fmt"
	"os"

	"hapsay-service/internal/console"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	client *console.Client
	cache  = console.NewQueryCache()
)

var rootCmd = &cobra.Command{
	Use:           "hapsayctl",
	Short:         "Admin console for the hapsay records service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		client = console.NewClient(viper.GetString("api"), viper.GetString("token"))
	},
}

func init() {
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("api", "http://localhost:3000", "API base URL")
	rootCmd.PersistentFlags().String("token", "", "bearer token for secured endpoints")

	viper.SetEnvPrefix("hapsay")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("api", rootCmd.PersistentFlags().Lookup("api"))
	_ = viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
