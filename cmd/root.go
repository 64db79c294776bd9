package cmd

import (
	"errors"
	"io/fs"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/pathfinder/internal/dialogue"
	"github.com/spigell/pathfinder/internal/recommend"
)

const (
	app       = "pathfinder"
	envPrefix = "PATHFINDER"
)

type Config struct {
	AI       *AIConfig       `mapstructure:"ai"`
	Matching *MatchingConfig `mapstructure:"matching"`
	Dialogue dialogue.Config `mapstructure:"dialogue"`
	Server   *ServerConfig   `mapstructure:"server"`
}

type AIConfig struct {
	Gemini *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey          string  `mapstructure:"api-key"`
	APIKeyFile      string  `mapstructure:"api-key-file"`
	Model           string  `mapstructure:"model"`
	Temperature     float32 `mapstructure:"temperature"`
	MaxOutputTokens int32   `mapstructure:"max-output-tokens"`
	MaxRetries      int     `mapstructure:"max-retries"`
	MaxLogLength    int     `mapstructure:"max-log-length"`
}

type MatchingConfig struct {
	recommend.Thresholds `mapstructure:",squash"`
	DisabledFilters      []string `mapstructure:"disabled-filters"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// envAliases are accepted in addition to the prefixed variables.
var envAliases = map[string]string{
	"ai.gemini.api-key":           "GEMINI_API_KEY",
	"ai.gemini.model":             "MODEL_NAME",
	"ai.gemini.temperature":       "TEMPERATURE",
	"ai.gemini.max-output-tokens": "MAX_TOKENS",
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "pathfinder helps students discover careers that match their interests",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	setDefaults(viper.GetViper())

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	for key, alias := range envAliases {
		if err := viper.BindEnv(key, envName(key), alias); err != nil {
			log.Fatalf("binding %s environment variable: %v", alias, err)
		}
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is pathfinder.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ai.gemini.api-key", "")
	v.SetDefault("ai.gemini.api-key-file", "")
	v.SetDefault("ai.gemini.model", "gemini-2.5-flash")
	v.SetDefault("ai.gemini.temperature", 0.7)
	v.SetDefault("ai.gemini.max-output-tokens", 500)
	v.SetDefault("ai.gemini.max-retries", 1)
	v.SetDefault("ai.gemini.max-log-length", 200)

	defaults := recommend.DefaultThresholds()
	v.SetDefault("matching.minimum-score", defaults.MinimumScore)
	v.SetDefault("matching.cross-category-score", defaults.CrossCategoryScore)
	v.SetDefault("matching.healthcare-score", defaults.HealthcareScore)
	v.SetDefault("matching.single-category-score", defaults.SingleCategoryScore)
	v.SetDefault("matching.limit", defaults.Limit)
	v.SetDefault("matching.disabled-filters", []string{})

	v.SetDefault("dialogue.max-questions", dialogue.DefaultMaxQuestions)

	v.SetDefault("server.address", "127.0.0.1:8080")
}

func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
}

func initConfig() {
	// A missing .env is fine; a broken one is not.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env: %v", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		// We can't proceed if the given config file is missing or parsed with error.
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigName(app)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config.AI == nil {
		config.AI = &AIConfig{}
	}
	if config.AI.Gemini == nil {
		config.AI.Gemini = &GeminiConfig{}
	}
	if config.Matching == nil {
		config.Matching = &MatchingConfig{Thresholds: recommend.DefaultThresholds()}
	}
	if config.Server == nil {
		config.Server = &ServerConfig{}
	}

	return config, nil
}
