package main

import (
	"context"
	"fmt"

	"hapsay-service/config"
	"hapsay-service/internal/officer"
	"hapsay-service/internal/station"
	"hapsay-service/internal/store"
	"hapsay-service/pkg/constants"
	"hapsay-service/pkg/idgen"
	"hapsay-service/pkg/zap"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
)

// Legacy index names left by an earlier schema with usernames.
var usernameIndexes = []string{"username_1", "username"}

var maintenanceCmd = &cobra.Command{
	Use:   "maintenance",
	Short: "One-off database maintenance, run against MONGO_URI",
}

var populateIDsCmd = &cobra.Command{
	Use:   "populate-ids",
	Short: "Assign custom ids to stations stored without one",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(cmd.Context(), func(ctx context.Context, cfg *config.Config, db *mongo.Database) error {
			logger, err := zap.New(cfg)
			if err != nil {
				return err
			}
			stations := station.NewStationRepository(db.Collection(constants.StationsCollection))
			officers := officer.NewOfficerRepository(db.Collection(constants.OfficersCollection))
			svc := station.NewStationService(stations, officers, idgen.NewAssigner(), logger)

			n, err := svc.BackfillCustomIDs(ctx)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d stations\n", n)
			return err
		})
	},
}

var dropUsernameIndexCmd = &cobra.Command{
	Use:   "drop-username-index",
	Short: "Drop the legacy username index from the users collection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(cmd.Context(), func(ctx context.Context, _ *config.Config, db *mongo.Database) error {
			users := db.Collection(constants.UsersCollection)
			for _, name := range usernameIndexes {
				dropped, err := store.DropIndexIfExists(ctx, users, name)
				if err != nil {
					return fmt.Errorf("drop %s: %w", name, err)
				}
				if dropped {
					fmt.Fprintf(cmd.OutOrStdout(), "Dropped %s index\n", name)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s index does not exist\n", name)
				}
			}
			return nil
		})
	},
}

func withDatabase(ctx context.Context, fn func(context.Context, *config.Config, *mongo.Database) error) error {
	cfg := config.LoadConfig()
	if cfg.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}

	mongoClient, err := store.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return err
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	return fn(ctx, cfg, mongoClient.Database(cfg.MongoDB))
}

func init() {
	maintenanceCmd.AddCommand(populateIDsCmd, dropUsernameIndexCmd)
	rootCmd.AddCommand(maintenanceCmd)
}
