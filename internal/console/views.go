package console

import (
	"strconv"
	"strings"
	"time"

	"hapsay-service/internal/models"
)

// Query keys, matching the keys the server publishes on /api/ws.
const (
	KeyStations  = "stations"
	KeyOfficers  = "officers"
	KeyBlotter   = "blotter"
	KeyClearance = "clearance"
	KeyUsers     = "users"
)

var StationsView = ListView[models.StationView]{
	Key:     KeyStations,
	Path:    "/api/stations/getStations",
	Noun:    "stations",
	Columns: []string{"STATION NAME", "CODE", "ADDRESS", "PHONE", "EMAIL", "OFFICERS"},
	Row: func(s models.StationView) []string {
		return []string{
			s.Name,
			dash(s.CustomID),
			s.Address,
			dash(s.Contact.PhoneNumber),
			dash(s.Contact.Email),
			strconv.Itoa(len(s.Officers)),
		}
	},
}

var OfficersView = ListView[models.OfficerView]{
	Key:     KeyOfficers,
	Path:    "/api/officers/",
	Noun:    "officers",
	Columns: []string{"NAME", "RANK", "BADGE NUMBER", "EMAIL", "STATUS", "STATION"},
	Row: func(o models.OfficerView) []string {
		station := ""
		if o.Station != nil {
			station = o.Station.Name
		}
		return []string{
			strings.TrimSpace(o.FirstName + " " + o.LastName),
			dash(o.Rank),
			dash(o.BadgeNumber),
			o.Email,
			string(o.Status),
			dash(station),
		}
	},
}

var BlotterView = ListView[models.BlotterView]{
	Key:     KeyBlotter,
	Path:    "/api/blotter/",
	Noun:    "blotter reports",
	Columns: []string{"ID", "REPORTER", "TYPE", "DATE FILED", "STATUS", "OFFICER"},
	Row: func(b models.BlotterView) []string {
		reporter, officer := "", ""
		if b.User != nil {
			reporter = fullName(b.User)
		}
		if b.Officer != nil {
			officer = strings.TrimSpace(b.Officer.FirstName + " " + b.Officer.LastName)
		}
		return []string{
			b.ID.Hex(),
			dash(reporter),
			string(b.Incident.Type),
			day(b.CreatedAt),
			string(b.Status),
			dash(officer),
		}
	},
}

var ClearanceView = ListView[models.ClearanceView]{
	Key:     KeyClearance,
	Path:    "/api/clearance/",
	Noun:    "clearances",
	Columns: []string{"ID", "APPLICANT", "PURPOSE", "DATE APPLIED", "APPOINTMENT", "STATUS"},
	Row: func(c models.ClearanceView) []string {
		applicant, appointment := "", ""
		if c.User != nil {
			applicant = fullName(c.User)
		}
		if c.AppointmentDate != nil {
			appointment = day(*c.AppointmentDate)
		}
		return []string{
			c.ID.Hex(),
			dash(applicant),
			c.Purpose,
			day(c.CreatedAt),
			dash(appointment),
			c.Status,
		}
	},
}

var UsersView = ListView[models.User]{
	Key:     KeyUsers,
	Path:    "/api/users/",
	Noun:    "users",
	Columns: []string{"ID", "NAME", "EMAIL", "STATUS", "LAST ACTIVITY"},
	Row: func(u models.User) []string {
		last := ""
		if u.LastActivity != nil {
			last = u.LastActivity.Format("2006-01-02 15:04")
		}
		return []string{u.ID.Hex(), dash(fullName(&u)), u.Email, string(u.Status), dash(last)}
	},
}

func fullName(u *models.User) string {
	return strings.Join(strings.Fields(u.PersonalInfo.GivenName+" "+u.PersonalInfo.Surname), " ")
}

func day(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
