package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds core runtime configuration shared across services.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"mindplay-server"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Redis       Redis
	Security    Security
	Game        Game
	Leaderboard Leaderboard
	Tutor       Tutor
	CORS        CORS
}

// Redis holds the score totals + leaderboard store configuration.
type Redis struct {
	Addr     string `env:"REDIS_ADDR,notEmpty"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"20"`
}

// Security stores secrets and the fixed demo credentials.
type Security struct {
	JWTSecret string `env:"JWT_SECRET,notEmpty"`
	// Bcrypt hashes for the two demo accounts. An empty hash disables the role.
	StudentPasswordHash string `env:"STUDENT_PASSWORD_HASH"`
	TeacherPasswordHash string `env:"TEACHER_PASSWORD_HASH"`
}

// Game groups gameplay pacing defaults.
type Game struct {
	RevealDelay       time.Duration `env:"GAME_REVEAL_DELAY" envDefault:"2s"`
	MemoryRevealDelay time.Duration `env:"MEMORY_REVEAL_DELAY" envDefault:"1s"`
	ShooterFrameRate  int           `env:"SHOOTER_FRAME_RATE" envDefault:"30"`
	ShooterLevelSecs  int           `env:"SHOOTER_LEVEL_SECONDS" envDefault:"60"`
	SessionTTL        time.Duration `env:"GAME_SESSION_TTL" envDefault:"1h"`
}

// Leaderboard governs top-N reads and broadcast behavior.
type Leaderboard struct {
	TopN          int    `env:"LEADERBOARD_TOP" envDefault:"50"`
	PubSubChannel string `env:"LEADERBOARD_CHANNEL" envDefault:"lb:updates"`
}

// Tutor configures the AI completion collaborator.
type Tutor struct {
	BaseURL string `env:"TUTOR_API_BASE_URL"`
	APIKey  string `env:"TUTOR_API_KEY"`
	Model   string `env:"TUTOR_MODEL" envDefault:"gpt-4o-mini"`
}

// CORS holds Cross-Origin Resource Sharing configuration.
type CORS struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://127.0.0.1:3000"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS" envSeparator:"," envDefault:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS" envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS" envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE" envDefault:"3600"`
}

// Load parses environment variables into App config.
func Load() (*App, error) {
	cfg := &App{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
