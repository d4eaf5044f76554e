package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
	Table    string `mapstructure:"table"`
}

type CloudStorageConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
	Prefix     string `mapstructure:"prefix"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type Config struct {
	Seed            int       `mapstructure:"seed"`
	StartDate       time.Time `mapstructure:"start_date"`
	EndDate         time.Time `mapstructure:"end_date"`
	NumRestaurants  int       `mapstructure:"num_restaurants"`
	SkipProbability float64   `mapstructure:"skip_probability"`

	OutputFormat          string `mapstructure:"output_format"` // console, csv, json, parquet, kafka, postgres
	OutputPath            string `mapstructure:"output_path"`
	KafkaBrokerList       string `mapstructure:"kafka_broker_list"`
	KafkaTopic            string `mapstructure:"kafka_topic"`
	KafkaSessionTimeoutMs int    `mapstructure:"kafka_session_timeout_ms"`

	Database     DatabaseConfig     `mapstructure:"database"`
	CloudStorage CloudStorageConfig `mapstructure:"cloud_storage"`

	DatasetPath string       `mapstructure:"dataset_path"`
	ArtifactDir string       `mapstructure:"artifact_dir"`
	Server      ServerConfig `mapstructure:"server"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig() (*Config, error) {
	viper.SetDefault("seed", 42)
	viper.SetDefault("num_restaurants", 10)
	viper.SetDefault("skip_probability", 0.15)
	viper.SetDefault("output_format", "csv")
	viper.SetDefault("output_path", "data/restaurant_waste.csv")
	viper.SetDefault("kafka_topic", "waste_records")
	viper.SetDefault("dataset_path", "data/restaurant_waste.csv")
	viper.SetDefault("artifact_dir", "models")
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 5001)

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if config.EndDate.Before(config.StartDate) {
		return nil, fmt.Errorf("end date %s is before start date %s",
			config.EndDate.Format("2006-01-02"), config.StartDate.Format("2006-01-02"))
	}

	return &config, nil
}
