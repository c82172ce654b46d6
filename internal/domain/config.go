package domain

// Default patterns handed out by the clock service. Callers producing
// documents and log lines depend on these verbatim.
const (
	DefaultDatePattern      = "%Y-%m-%d"
	DefaultTimePattern      = "%H:%M:%S"
	DefaultTimestampPattern = "%Y-%m-%d %H:%M:%S"
	DocumentPattern         = "%B %Y"
	LogTimestampPattern     = "[%Y-%m-%d %H:%M]"
)

// Config holds the optional settings read from timehandler.yaml.
type Config struct {
	Timezone  string        `yaml:"timezone"`
	Formats   FormatsConfig `yaml:"formats"`
	LogFile   string        `yaml:"log_file"`
	NTPServer string        `yaml:"ntp_server"`
}

// FormatsConfig overrides the default patterns of the convenience formatters.
// The document and log patterns are fixed and have no entry here.
type FormatsConfig struct {
	Date      string `yaml:"date"`
	Time      string `yaml:"time"`
	Timestamp string `yaml:"timestamp"`
}

// DatePattern returns the configured date pattern or the default.
func (c *Config) DatePattern() string {
	if c == nil || c.Formats.Date == "" {
		return DefaultDatePattern
	}
	return c.Formats.Date
}

// TimePattern returns the configured time pattern or the default.
func (c *Config) TimePattern() string {
	if c == nil || c.Formats.Time == "" {
		return DefaultTimePattern
	}
	return c.Formats.Time
}

// TimestampPattern returns the configured timestamp pattern or the default.
func (c *Config) TimestampPattern() string {
	if c == nil || c.Formats.Timestamp == "" {
		return DefaultTimestampPattern
	}
	return c.Formats.Timestamp
}

// DefaultTimezone returns the configured zone, or "" for host local time.
func (c *Config) DefaultTimezone() string {
	if c == nil {
		return ""
	}
	return c.Timezone
}
