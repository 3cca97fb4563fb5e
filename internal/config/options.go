package config

const (
	defaultLogFile                = "bookhaven.log"
	defaultLogLevel               = "info"
	defaultLogFileMaxSize         = 20
	defaultLogFileMaxBackups      = 3
	defaultLogFileMaxAge          = 28
	defaultLogCompress            = false
	defaultPort                   = 8080
	defaultHost                   = "0.0.0.0"
	defaultData                   = "/var/opt/bookhaven"
	defaultMetricsCollector       = false
	defaultMetricsAllowedNetworks = "127.0.0.1/8"
)

// Options holds the runtime configuration.
// Field tags are mapstructure instead of json because viper unmarshals
// through mapstructure, see:
// https://pkg.go.dev/github.com/mitchellh/mapstructure#hdr-Field_Tags
type Options struct {
	// LogFile is the file to write logs to
	LogFile string `mapstructure:"log_file"`
	// LogLevel is the level of logging to show
	LogLevel string `mapstructure:"log_level"`
	// LogFileMaxSize is the maximum size of the log file before it is rotated, in MiB
	LogFileMaxSize int `mapstructure:"log_file_max_size"`
	// LogFileMaxBackups is the maximum number of rotated log files to keep
	LogFileMaxBackups int `mapstructure:"log_file_max_backups"`
	// LogFileMaxAge is the maximum number of days to keep a log file
	LogFileMaxAge int `mapstructure:"log_file_max_age"`
	// LogCompress is whether or not to compress rotated log files
	LogCompress bool `mapstructure:"log_compress"`
	// DSN is the path of the sqlite database
	DSN string `mapstructure:"dsn_uri"`
	// Port is the port to listen on
	Port int `mapstructure:"port"`
	// Host is the host to listen on
	Host string `mapstructure:"host"`
	// Data is the directory to store data
	Data string `mapstructure:"data"`
	// HardcoverToken is the bearer token for the Hardcover metadata API.
	// Usually supplied through the HARDCOVER_TOKEN environment variable.
	HardcoverToken string `mapstructure:"hardcover_token"`
	// For metrics
	MetricsCollector       bool     `mapstructure:"metrics_collector"`
	MetricsAllowedNetworks []string `mapstructure:"metrics_allowed_networks"`
}

func GetDefaultOptions() *Options {
	Opts = &Options{
		LogFile:                defaultLogFile,
		LogLevel:               defaultLogLevel,
		LogFileMaxSize:         defaultLogFileMaxSize,
		LogFileMaxBackups:      defaultLogFileMaxBackups,
		LogFileMaxAge:          defaultLogFileMaxAge,
		LogCompress:            defaultLogCompress,
		Port:                   defaultPort,
		Host:                   defaultHost,
		Data:                   defaultData,
		MetricsCollector:       defaultMetricsCollector,
		MetricsAllowedNetworks: []string{defaultMetricsAllowedNetworks},
	}
	return Opts
}
