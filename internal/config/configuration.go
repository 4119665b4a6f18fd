package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

type Configuration struct {
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	History HistoryConfig `yaml:"history"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"` // "sqlite" or "postgres"
	Path   string `yaml:"path"`   // sqlite database file
}

type ServerConfig struct {
	Port        int         `yaml:"port"`
	Concurrency int         `yaml:"concurrency"`
	LogConfig   LogConfig   `yaml:"log"`
	CleanConfig CleanConfig `yaml:"clean"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"logPath"`
}

type CleanConfig struct {
	Schedule string `yaml:"schedule"`
}

type HistoryConfig struct {
	MaxEntries  int `yaml:"maxEntries"`
	TodayLimit  int `yaml:"todayLimit"`
	WeeklyLimit int `yaml:"weeklyLimit"`
}

func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	data, err := os.ReadFile(configurationFilePath)
	if err != nil {
		return nil, err
	}
	var config Configuration
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Configuration) applyDefaults() {
	if c.Storage.Driver == "" {
		c.Storage.Driver = "sqlite"
	}
	if c.Storage.Path == "" {
		c.Storage.Path = "launchbox.db"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Concurrency == 0 {
		c.Server.Concurrency = 256
	}
	if c.Server.CleanConfig.Schedule == "" {
		c.Server.CleanConfig.Schedule = "@hourly"
	}
	if c.History.MaxEntries == 0 {
		c.History.MaxEntries = 500
	}
	if c.History.TodayLimit == 0 {
		c.History.TodayLimit = 50
	}
	if c.History.WeeklyLimit == 0 {
		c.History.WeeklyLimit = 100
	}
}
