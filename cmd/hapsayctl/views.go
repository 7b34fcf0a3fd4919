package main

import (
	"context"
	"io"

	"hapsay-service/internal/console"

	"github.com/spf13/cobra"
)

// renderer is satisfied by every console.ListView instantiation.
type renderer interface {
	Render(ctx context.Context, w io.Writer, client *console.Client, cache *console.QueryCache) error
}

var views = map[string]renderer{
	console.KeyStations:  console.StationsView,
	console.KeyOfficers:  console.OfficersView,
	console.KeyBlotter:   console.BlotterView,
	console.KeyClearance: console.ClearanceView,
	console.KeyUsers:     console.UsersView,
}

func listCommand(key, short string) *cobra.Command {
	return &cobra.Command{
		Use:   key,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return views[key].Render(cmd.Context(), cmd.OutOrStdout(), client, cache)
		},
	}
}

func init() {
	rootCmd.AddCommand(
		listCommand(console.KeyStations, "List police stations"),
		listCommand(console.KeyOfficers, "List officers, newest first"),
		listCommand(console.KeyBlotter, "List blotter reports"),
		listCommand(console.KeyClearance, "List clearance applications"),
		listCommand(console.KeyUsers, "List user accounts"),
	)
}
