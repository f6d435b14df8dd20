package bench

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds harness defaults, overridable by flags.
type Config struct {
	BaseURL string `env:"BENCH_BASE_URL" envDefault:"http://localhost:8080"`
	// Requests is the number of sequential calls per endpoint.
	Requests  int           `env:"BENCH_REQUESTS" envDefault:"100"`
	OutDir    string        `env:"BENCH_OUT_DIR" envDefault:"."`
	Prompt    string        `env:"BENCH_PROMPT" envDefault:"Once upon a time"`
	MaxLength int           `env:"BENCH_MAX_LENGTH" envDefault:"50"`
	Timeout   time.Duration `env:"BENCH_TIMEOUT" envDefault:"2m"`
	LogLvl    string        `env:"BENCH_LOG_LEVEL" envDefault:"info"`
}

// LoadConfig parses harness defaults from the environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
