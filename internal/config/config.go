package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/schafkopf-go/sheepshead/internal/apperrors"
)

// Control 座位控制方式
type Control string

const (
	ControlHuman    Control = "human"
	ControlComputer Control = "computer"
)

// Config 游戏配置
type Config struct {
	Game GameConfig `yaml:"game"`
}

// PlayerConfig describes one seat at the table.
type PlayerConfig struct {
	Name    string  `yaml:"name"`
	Control Control `yaml:"control"`
}

// GameConfig 对局配置
type GameConfig struct {
	Players []PlayerConfig `yaml:"players"`
	// Goal ends the game when a player reaches it; 0 plays unbounded.
	Goal int `yaml:"goal"`
	// EnforceFollowSuit lets the engine reject plays that break the
	// follow rules instead of leaving validation to the front end.
	EnforceFollowSuit bool `yaml:"enforce_follow_suit"`
	// Seed fixes the shuffle; 0 seeds from entropy.
	Seed uint64 `yaml:"seed"`
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.fillDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default 返回默认配置: one human against two computers, first to 10.
func Default() *Config {
	cfg := &Config{
		Game: GameConfig{
			Players: []PlayerConfig{
				{Name: "You", Control: ControlHuman},
				{Name: "Ada", Control: ControlComputer},
				{Name: "Bert", Control: ControlComputer},
			},
			Goal: 10,
		},
	}
	cfg.fillDefaults()
	return cfg
}

func (c *Config) fillDefaults() {
	for i := range c.Game.Players {
		if c.Game.Players[i].Control == "" {
			c.Game.Players[i].Control = ControlComputer
		}
		if c.Game.Players[i].Name == "" {
			c.Game.Players[i].Name = fmt.Sprintf("Player %d", i+1)
		}
	}
}

// Validate rejects configurations the engine would refuse anyway, so the
// process fails before any screen is drawn.
func (c *Config) Validate() error {
	if n := len(c.Game.Players); n < 3 || n > 5 {
		return fmt.Errorf("%w: config names %d", apperrors.ErrPlayerCount, n)
	}
	for _, p := range c.Game.Players {
		if p.Control != ControlHuman && p.Control != ControlComputer {
			return fmt.Errorf("unknown control %q for player %s", p.Control, p.Name)
		}
	}
	return nil
}
