// Package config loads application settings from the environment. Narration
// preferences live here rather than in process-wide mutable globals; the UI
// keeps its own working copy per session.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	OpenAIAPIKey string `env:"OPENAI_API_KEY,required"`
	Model        string `env:"DUNGEON_MODEL" envDefault:"gpt-4o-mini"`
	Debug        bool   `env:"DEBUG"`

	SavePath        string `env:"DUNGEON_SAVE_FILE" envDefault:"savegame.json"`
	GenerationLogDB string `env:"DUNGEON_GENERATION_LOG" envDefault:"generations.db"`

	NarrationEnabled bool   `env:"DUNGEON_NARRATION"`
	NarrationVoice   string `env:"DUNGEON_VOICE" envDefault:"nova"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
