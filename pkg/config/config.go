package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	iso8601 "github.com/senseyeio/duration"
	"github.com/stopboard/stopboard/pkg/util"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const environmentPrefix = "STOPBOARD_"

type Config struct {
	StopsFile       string `yaml:"stops_file"`
	StationsFile    string `yaml:"stations_file"`
	RefreshInterval string `yaml:"refresh_interval"`
	Listen          string `yaml:"listen"`

	ResRobot ResRobotConfig `yaml:"resrobot"`
	Redis    RedisConfig    `yaml:"redis"`
}

type ResRobotConfig struct {
	Endpoint    string `yaml:"endpoint"`
	APIKey      string `yaml:"api_key"`
	MaxJourneys int    `yaml:"max_journeys"`

	// ISO-8601 duration of the departure window, eg. PT3H20M
	Lookahead string `yaml:"lookahead"`
}

// RedisConfig enables the shared departure cache when Address is set
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	Database int    `yaml:"database"`
}

func Default() *Config {
	return &Config{
		StopsFile:       "public/stops.min2.json",
		StationsFile:    "stations.json",
		RefreshInterval: "20m",
		Listen:          ":8080",
		ResRobot: ResRobotConfig{
			Endpoint:    "https://api.resrobot.se/v2.1/departureBoard",
			MaxJourneys: 50,
			Lookahead:   "PT200M",
		},
	}
}

// Load reads the optional YAML file at path on top of the defaults, then applies
// STOPBOARD_ environment overrides.
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		contents, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		if err := yaml.Unmarshal(contents, config); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", path, err)
		}
	}

	if err := config.applyEnvironment(util.GetEnvironmentVariables(environmentPrefix)); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// FromCLI loads the config named by the global --config flag
func FromCLI(c *cli.Context) (*Config, error) {
	return Load(c.String("config"))
}

func (c *Config) applyEnvironment(env map[string]string) error {
	overrides := map[string]*string{
		"STOPBOARD_STOPS_FILE":        &c.StopsFile,
		"STOPBOARD_STATIONS_FILE":     &c.StationsFile,
		"STOPBOARD_REFRESH_INTERVAL":  &c.RefreshInterval,
		"STOPBOARD_LISTEN":            &c.Listen,
		"STOPBOARD_RESROBOT_ENDPOINT": &c.ResRobot.Endpoint,
		"STOPBOARD_RESROBOT_API_KEY":  &c.ResRobot.APIKey,
		"STOPBOARD_LOOKAHEAD":         &c.ResRobot.Lookahead,
		"STOPBOARD_REDIS_ADDRESS":     &c.Redis.Address,
		"STOPBOARD_REDIS_PASSWORD":    &c.Redis.Password,
	}

	for key, target := range overrides {
		if env[key] != "" {
			*target = env[key]
		}
	}

	if env["STOPBOARD_RESROBOT_MAX_JOURNEYS"] != "" {
		n, err := strconv.Atoi(env["STOPBOARD_RESROBOT_MAX_JOURNEYS"])
		if err != nil {
			return fmt.Errorf("STOPBOARD_RESROBOT_MAX_JOURNEYS: %w", err)
		}
		c.ResRobot.MaxJourneys = n
	}

	if env["STOPBOARD_REDIS_DATABASE"] != "" {
		n, err := strconv.Atoi(env["STOPBOARD_REDIS_DATABASE"])
		if err != nil {
			return fmt.Errorf("STOPBOARD_REDIS_DATABASE: %w", err)
		}
		c.Redis.Database = n
	}

	return nil
}

func (c *Config) Validate() error {
	if c.StopsFile == "" {
		return errors.New("stops_file must be set")
	}
	if c.StationsFile == "" {
		return errors.New("stations_file must be set")
	}
	if c.ResRobot.MaxJourneys <= 0 {
		return errors.New("resrobot max_journeys must be positive")
	}

	if _, err := c.RefreshDuration(); err != nil {
		return err
	}
	if _, err := c.LookaheadMinutes(time.Now()); err != nil {
		return err
	}

	return nil
}

func (c *Config) RefreshDuration() (time.Duration, error) {
	interval, err := time.ParseDuration(c.RefreshInterval)
	if err != nil {
		return 0, fmt.Errorf("invalid refresh_interval %q: %w", c.RefreshInterval, err)
	}
	if interval <= 0 {
		return 0, fmt.Errorf("refresh_interval must be positive but is %s", interval)
	}

	return interval, nil
}

// LookaheadMinutes resolves the lookahead window starting at from into whole minutes
func (c *Config) LookaheadMinutes(from time.Time) (int, error) {
	lookahead, err := iso8601.ParseISO8601(c.ResRobot.Lookahead)
	if err != nil {
		return 0, fmt.Errorf("invalid lookahead %q: %w", c.ResRobot.Lookahead, err)
	}

	minutes := int(lookahead.Shift(from).Sub(from).Minutes())
	if minutes <= 0 {
		return 0, fmt.Errorf("lookahead must be at least one minute but is %s", c.ResRobot.Lookahead)
	}

	return minutes, nil
}
