package config

// ChallengesConfig is the root of configs/challenges.yaml
type ChallengesConfig struct {
	Challenges Challenges `yaml:"challenges"`
}

// Challenges describes where puzzle inputs live and which days are run
type Challenges struct {
	Year     int         `yaml:"year"`
	InputDir string      `yaml:"input_dir"`
	Days     []DayConfig `yaml:"days"`
}

type DayConfig struct {
	Day         int    `yaml:"day"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Enabled     bool   `yaml:"enabled"`
	Input       string `yaml:"input"`
}
