package console

import (
	"context"
	"net/http"
	"strings"

	"hapsay-service/internal/models"
)

// Form values are checked for presence only; the server validates the rest.
type Form interface {
	Missing() []string
}

// MissingFieldsError lists the required inputs left blank.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "Missing required fields: " + strings.Join(e.Fields, ", ")
}

func check(f Form) error {
	if missing := f.Missing(); len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}

func missing(pairs ...string) []string {
	var out []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			out = append(out, pairs[i])
		}
	}
	return out
}

// StationForm creates a station, or edits one when ID is set.
type StationForm struct {
	ID          string `json:"-"`
	Name        string `json:"name,omitempty"`
	Address     string `json:"address,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Landline    string `json:"landline,omitempty"`
	Email       string `json:"email,omitempty"`
	Latitude    string `json:"latitude,omitempty"`
	Longitude   string `json:"longitude,omitempty"`
}

func (f StationForm) Missing() []string {
	if f.ID != "" {
		return nil
	}
	return missing("name", f.Name, "address", f.Address, "phone_number", f.PhoneNumber, "landline", f.Landline)
}

func (f StationForm) Submit(ctx context.Context, client *Client, cache *QueryCache) (*models.Station, string, error) {

	if err := check(f); err != nil {
		return nil, "", err
	}

	method, path := http.MethodPost, "/api/stations/create"
	if f.ID != "" {
		method, path = http.MethodPut, "/api/stations/update/"+f.ID
	}

	var station models.Station
	env, err := client.Do(ctx, method, path, f, &station)
	if err != nil {
		return nil, "", err
	}

	cache.Invalidate(KeyStations)
	return &station, env.Message, nil

}

type OfficerForm struct {
	FirstName   string                 `json:"first_name"`
	LastName    string                 `json:"last_name"`
	Email       string                 `json:"email"`
	Password    string                 `json:"password"`
	BadgeNumber string                 `json:"badge_number,omitempty"`
	Rank        string                 `json:"rank,omitempty"`
	StationID   string                 `json:"station_id,omitempty"`
	Contact     *models.OfficerContact `json:"contact,omitempty"`
	Status      string                 `json:"status,omitempty"`
}

func (f OfficerForm) Missing() []string {
	return missing("first_name", f.FirstName, "last_name", f.LastName, "email", f.Email, "password", f.Password)
}

// Submit creates the officer. The station list is invalidated too since
// its roster changes.
func (f OfficerForm) Submit(ctx context.Context, client *Client, cache *QueryCache) (*models.OfficerView, string, error) {

	if err := check(f); err != nil {
		return nil, "", err
	}

	var officer models.OfficerView
	env, err := client.Do(ctx, http.MethodPost, "/api/officers/", f, &officer)
	if err != nil {
		return nil, "", err
	}

	cache.Invalidate(KeyOfficers, KeyStations)
	return &officer, env.Message, nil

}

type OfficerStatusForm struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (f OfficerStatusForm) Missing() []string {
	return missing("id", f.ID, "status", f.Status)
}

func (f OfficerStatusForm) Submit(ctx context.Context, client *Client, cache *QueryCache) (*models.OfficerView, string, error) {

	if err := check(f); err != nil {
		return nil, "", err
	}

	var officer models.OfficerView
	env, err := client.Do(ctx, http.MethodPatch, "/api/officers/"+f.ID+"/status", f, &officer)
	if err != nil {
		return nil, "", err
	}

	cache.Invalidate(KeyOfficers)
	return &officer, env.Message, nil

}
