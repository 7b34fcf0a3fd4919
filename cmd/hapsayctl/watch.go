package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"hapsay-service/internal/console"
	"hapsay-service/internal/realtime"

	"github.com/spf13/cobra"
)

var watchView string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream list invalidations, optionally re-rendering one view",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		view, ok := views[watchView]
		if watchView != "" && !ok {
			return fmt.Errorf("unknown view %q", watchView)
		}
		if ok {
			_ = view.Render(ctx, out, client, cache)
		}

		return console.Watch(ctx, client.BaseURL(), cache, func(ev realtime.Event) {
			fmt.Fprintf(out, "%s  %-13s %-6s %s\n", ev.At.Local().Format("15:04:05"), ev.Key, ev.Method, ev.Path)
			if ok && ev.Key == watchView {
				_ = view.Render(ctx, out, client, cache)
			}
		})
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchView, "view", "", "view to refresh on change (stations, officers, blotter, clearance, users)")
	rootCmd.AddCommand(watchCmd)
}
