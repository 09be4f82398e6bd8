package domain

// Settings holds the typed application configuration.
type Settings struct {
	Matching MatchingSettings
	Server   ServerSettings
	SMTP     SMTPSettings
	App      AppSettings
}

// MatchingSettings configure the matches view and new users.
type MatchingSettings struct {
	// Requirement is the match_requirement given to newly created users.
	Requirement float64

	// Aspects names the scoring aspects, in order.
	Aspects []string
}

// ServerSettings configure the HTTP API.
type ServerSettings struct {
	Addr string
}

// SMTPSettings configure registration emails. An empty Host disables SMTP.
type SMTPSettings struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled reports whether an SMTP host is configured.
func (s SMTPSettings) Enabled() bool {
	return s.Host != ""
}

// AppSettings holds values used when talking to users.
type AppSettings struct {
	// BaseURL prefixes links sent in notifications.
	BaseURL string
}

// Default settings values.
const (
	DefaultMatchRequirement = 1.0
	DefaultServerAddr       = ":8080"
	DefaultSMTPPort         = 587
	DefaultBaseURL          = "http://localhost:8080"
	DefaultAspect           = "test_property"
)

// DefaultSettings returns settings with every default applied.
func DefaultSettings() Settings {
	return Settings{
		Matching: MatchingSettings{
			Requirement: DefaultMatchRequirement,
			Aspects:     []string{DefaultAspect},
		},
		Server: ServerSettings{Addr: DefaultServerAddr},
		SMTP:   SMTPSettings{Port: DefaultSMTPPort},
		App:    AppSettings{BaseURL: DefaultBaseURL},
	}
}
