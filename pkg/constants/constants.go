package constants

// gin context keys
const (
	Token     = "token"
	Subject   = "subject"
	Role      = "role"
	RequestID = "request_id"

	RequestIDHeader = "X-Request-ID"
)

// Collection names.
const (
	UsersCollection         = "users"
	OfficersCollection      = "officers"
	StationsCollection      = "policestations"
	BlottersCollection      = "blotters"
	ClearancesCollection    = "clearanceapplications"
	SOSRequestsCollection   = "sosrequests"
	AnnouncementsCollection = "announcements"
)

// StationIDPrefix prefixes station custom ids, e.g. PS-V1StGXR8_Z.
const StationIDPrefix = "PS"
