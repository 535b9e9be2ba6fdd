package matching

// Accompaniment modes a client can request. The values are the wire strings
// used in client profiles and in the persisted assignment log.
const (
	ModeAny      = "peu_importe"
	ModeInPerson = "presentiel"
	ModeRemote   = "visio"
)

// Client is one client submission. It is built per request and never stored
// on its own; the chosen assignment embeds it in full. JSON field names match
// the assignment log format.
type Client struct {
	LastName        string   `json:"nom" mapstructure:"nom"`
	FirstName       string   `json:"prenom" mapstructure:"prenom"`
	Gender          string   `json:"gender" mapstructure:"gender"`
	JobSector       string   `json:"job_sector" mapstructure:"job_sector"`
	WorkEnv         string   `json:"work_env" mapstructure:"work_env"`
	Styles          []string `json:"style" mapstructure:"style"`
	Size            string   `json:"size" mapstructure:"size"`
	Budget          string   `json:"budget" mapstructure:"budget"`
	Language        string   `json:"language" mapstructure:"language"`
	City            string   `json:"city" mapstructure:"city"`
	FavoriteBrand   string   `json:"favorite_brand" mapstructure:"favorite_brand"`
	ServiceType     string   `json:"service_type" mapstructure:"service_type"`
	Objective       string   `json:"objective" mapstructure:"objective"`
	LifeEvent       string   `json:"life_event" mapstructure:"life_event"`
	NeedsConfidence bool     `json:"needs_confidence" mapstructure:"needs_confidence"`
	Mode            string   `json:"mode" mapstructure:"mode"`
	ExtraInfo       string   `json:"extra_info" mapstructure:"extra_info"`
}

// MissingFields returns the required fields that are still empty. Matching
// must not run until this is empty.
func (c *Client) MissingFields() []string {
	var missing []string
	if c.FirstName == "" {
		missing = append(missing, "prenom")
	}
	if c.LastName == "" {
		missing = append(missing, "nom")
	}
	if c.City == "" {
		missing = append(missing, "city")
	}
	if c.Budget == "" {
		missing = append(missing, "budget")
	}
	return missing
}

// FullName returns a display name, falling back to "Client" when empty.
func (c *Client) FullName() string {
	name := c.FirstName
	if name == "" {
		name = "Client"
	}
	if c.LastName != "" {
		name += " " + c.LastName
	}
	return name
}
