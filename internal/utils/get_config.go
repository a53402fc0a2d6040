package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	AppPort   string `yaml:"APP_PORT"`
	JWTSecret string `yaml:"JWT_SECRET"`

	// Simulated remote-call latency for the login and pickup-scheduling
	// flows, in milliseconds.
	DemoDelayMS int `yaml:"DEMO_DELAY_MS"`

	LogDir             string `yaml:"LOG_DIR"`
	LimiterMax         int    `yaml:"LIMITER_MAX"`
	LimiterExpirationS int    `yaml:"LIMITER_EXPIRATION_S"`
}

var config = Config{
	AppPort:            "8080",
	JWTSecret:          "replate-demo-secret",
	DemoDelayMS:        1000,
	LogDir:             "./logs",
	LimiterMax:         10,
	LimiterExpirationS: 1,
}

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	os.Setenv("JWT_SECRET", config.JWTSecret)
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "JWT_SECRET":
		return config.JWTSecret
	case "LOG_DIR":
		return config.LogDir
	default:
		return ""
	}
}

func GetDemoDelayMS() int {
	return config.DemoDelayMS
}

func GetLimiterSettings() (max int, expirationSeconds int) {
	return config.LimiterMax, config.LimiterExpirationS
}
