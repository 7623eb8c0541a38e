package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env-default:"prod"`
	HTTPServer `yaml:"http_server"`
	DBUser     string `yaml:"db_user" env-required:"true"`
	DBPassword string `yaml:"db_password" env-required:"false"`
	DBHost     string `yaml:"db_host" env-default:"localhost"`
	DBPort     int    `yaml:"db_port" env-default:"3306"`
	DBName     string `yaml:"db_name" env-required:"true"`
	ParseTime  bool   `yaml:"parse_time" env-default:"true"`

	ArtifactsDir string `yaml:"artifacts_dir" env-default:"./artifacts"`

	Mail Mail `yaml:"mail"`

	AdminLogin string `yaml:"admin_login"`
	AdminPass  string `yaml:"admin_pass"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:4001"`
	Timeout     time.Duration `yaml:"timeout"  env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout"  env-default:"60s"`
}

type Mail struct {
	Endpoint string        `yaml:"endpoint" env-required:"true"`
	APIKey   string        `yaml:"api_key" env:"MAIL_API_KEY"`
	From     string        `yaml:"from" env-required:"true"`
	Timeout  time.Duration `yaml:"timeout" env-default:"30s"`
}

func MustConfig() *Config {
	var cfg Config

	path := "./config/local.yaml"

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
