package main

import (
	"fmt"

	"hapsay-service/internal/console"
	"hapsay-service/internal/models"

	"github.com/spf13/cobra"
)

var (
	stationForm console.StationForm
	officerForm console.OfficerForm
)

var officerRadio, officerMobile string

var stationCmd = &cobra.Command{
	Use:   "station",
	Short: "Create or edit a police station",
}

var stationCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a station",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stationForm.ID = ""
		station, msg, err := stationForm.Submit(cmd.Context(), client, cache)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", orDefault(msg, "Created"), station.Name, station.CustomID)
		return nil
	},
}

var stationEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update the given fields of a station",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stationForm.ID = args[0]
		station, msg, err := stationForm.Submit(cmd.Context(), client, cache)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", orDefault(msg, "Updated"), station.Name)
		return nil
	},
}

var officerCmd = &cobra.Command{
	Use:   "officer",
	Short: "Create officers or change their status",
}

var officerCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an officer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if officerMobile != "" || officerRadio != "" {
			officerForm.Contact = &models.OfficerContact{MobileNumber: officerMobile, RadioID: officerRadio}
		}
		officer, msg, err := officerForm.Submit(cmd.Context(), client, cache)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", orDefault(msg, "Created"), officer.FirstName, officer.LastName)
		return nil
	},
}

var officerStatusCmd = &cobra.Command{
	Use:   "status <id> <active|inactive|suspended>",
	Short: "Set an officer's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		form := console.OfficerStatusForm{ID: args[0], Status: args[1]}
		officer, msg, err := form.Submit(cmd.Context(), client, cache)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s %s is %s\n", orDefault(msg, "Updated"), officer.FirstName, officer.LastName, officer.Status)
		return nil
	},
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func init() {
	for _, c := range []*cobra.Command{stationCreateCmd, stationEditCmd} {
		f := c.Flags()
		f.StringVar(&stationForm.Name, "name", "", "station name")
		f.StringVar(&stationForm.Address, "address", "", "street address")
		f.StringVar(&stationForm.PhoneNumber, "phone", "", "mobile phone number")
		f.StringVar(&stationForm.Landline, "landline", "", "landline number")
		f.StringVar(&stationForm.Email, "email", "", "contact email")
		f.StringVar(&stationForm.Latitude, "lat", "", "latitude")
		f.StringVar(&stationForm.Longitude, "lng", "", "longitude")
	}
	stationCmd.AddCommand(stationCreateCmd, stationEditCmd)

	f := officerCreateCmd.Flags()
	f.StringVar(&officerForm.FirstName, "first-name", "", "first name")
	f.StringVar(&officerForm.LastName, "last-name", "", "last name")
	f.StringVar(&officerForm.Email, "email", "", "login email")
	f.StringVar(&officerForm.Password, "password", "", "initial password, at least 6 characters")
	f.StringVar(&officerForm.BadgeNumber, "badge", "", "badge number")
	f.StringVar(&officerForm.Rank, "rank", "", "rank")
	f.StringVar(&officerForm.StationID, "station", "", "station id")
	f.StringVar(&officerForm.Status, "status", "", "active, inactive or suspended")
	f.StringVar(&officerMobile, "mobile", "", "mobile number")
	f.StringVar(&officerRadio, "radio", "", "radio id")
	officerCmd.AddCommand(officerCreateCmd, officerStatusCmd)

	rootCmd.AddCommand(stationCmd, officerCmd)
}
