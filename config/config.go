package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging        LoggingConfig `yaml:"logging"`
	ServerPort     string        `yaml:"server_port"`
	MongoURI       string        `yaml:"mongo_uri"`
	MongoDBName    string        `yaml:"mongo_db_name"`
	Widgets        WidgetsConfig `yaml:"widgets"`
	Feeds          []FeedSource  `yaml:"feeds"`
	FeedFetchLimit int           `yaml:"feed_fetch_limit"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// WidgetsConfig holds site-wide rendering defaults applied by the demo
// handlers. The library itself never reads global configuration.
type WidgetsConfig struct {
	// Framework selects the CSS class vocabulary: "bootstrap" or "bulma".
	Framework string `yaml:"framework"`

	// DefaultPageSize is used when the request carries no per-page param.
	// 0 or less falls back to the library default.
	DefaultPageSize int `yaml:"default_page_size"`

	// MaxPageSize caps the per-page query param.
	MaxPageSize int `yaml:"max_page_size"`
}

// FeedSource is a single feed configuration item for the seeder
type FeedSource struct {
	Name   string `yaml:"name"`
	URL    string `yaml:"url"`
	RSSURL string `yaml:"rss_url"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	applyEnvOverrides(&c)
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// applyEnvOverrides lets deployment environments override connection
// settings without editing config.yaml.
func applyEnvOverrides(c *AppConfig) {
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.MongoURI = v
	}
	if v := os.Getenv("MONGO_DB_NAME"); v != "" {
		c.MongoDBName = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		c.ServerPort = v
	}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
