package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Persistence struct {
	StateDir   string `yaml:"stateDir" validate:"required|unixPath"`
	HistoryDir string `yaml:"historyDir" validate:"required|unixPath"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type WatchConfig struct {
	Interval time.Duration `yaml:"interval" validate:"required|min:1"`
	Timezone string        `yaml:"timezone"`
}

type EndpointsConfig struct {
	WishlistURL    string        `yaml:"wishlistUrl" validate:"required|fullUrl"`
	LeaderboardURL string        `yaml:"leaderboardUrl" validate:"required|fullUrl"`
	ProfileBaseURL string        `yaml:"profileBaseUrl" validate:"required|fullUrl"`
	Timeout        time.Duration `yaml:"timeout"`
}

type CaptureConfig struct {
	Enabled     bool          `yaml:"enabled"`
	DevtoolsURL string        `yaml:"devtoolsUrl"`
	Window      time.Duration `yaml:"window"`
	SettleDelay time.Duration `yaml:"settleDelay"`
	ClickX      float64       `yaml:"clickX"`
	ClickY      float64       `yaml:"clickY"`
}

type NotifierConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhookUrl"`
	DryRun     bool   `yaml:"dryRun"`
}

type Templates struct {
	Milestone string `yaml:"milestone"`
	Rank      string `yaml:"rank"`
	Tip       string `yaml:"tip"`
}

type Profile struct {
	Username   string             `yaml:"username"`
	UID        string             `yaml:"uid"`
	Items      []string           `yaml:"items"`
	Threshold  float64            `yaml:"threshold"`
	Thresholds map[string]float64 `yaml:"thresholds"`
	DetailView bool               `yaml:"detailView"`
	Templates  Templates          `yaml:"templates"`
}

// ThresholdFor returns the milestone threshold for a wishlist item.
// A per-item threshold wins over the profile default; zero disables
// milestone events for that item.
func (p *Profile) ThresholdFor(item string) float64 {
	if t, ok := p.Thresholds[item]; ok {
		return t
	}
	return p.Threshold
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Once        bool
	Path        string
	Watch       WatchConfig     `yaml:"watch"`
	Endpoints   EndpointsConfig `yaml:"endpoints"`
	Capture     CaptureConfig   `yaml:"capture"`
	Profiles    []Profile       `yaml:"profiles"`
	Notifier    NotifierConfig  `yaml:"notifier"`
	WebServer   Server          `yaml:"webServer"`
	Persistence Persistence     `yaml:"persistence"`
	Logger      LoggerConfig    `yaml:"logger"`
	Cache       CacheConfig     `yaml:"cache"`
	Metrics     MetricsConfig   `yaml:"metrics"`
}
