package config

import (
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Server  Server  `yaml:"server"`
	Upload  Upload  `yaml:"upload"`
	Message Message `yaml:"message"`
}

type Server struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type Upload struct {
	MaxFileSizeBytes int64    `yaml:"max_file_size_bytes"`
	AllowedMimeTypes []string `yaml:"allowed_mime_types"`
}

type Message struct {
	MaxImages           int `yaml:"max_images"`
	MaxContentLength    int `yaml:"max_content_length"`
	MaxSenderNameLength int `yaml:"max_sender_name_length"`
}

type Private struct {
	Pg         Pg         `yaml:"pg"`
	Cloudinary Cloudinary `yaml:"cloudinary"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Cloudinary struct {
	CloudName string `yaml:"cloud_name"`
	ApiKey    string `yaml:"api_key"`
	ApiSecret string `yaml:"api_secret"`
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder.
// Credentials live in the private half so the public one can be committed.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	return &Config{public, private}
}
