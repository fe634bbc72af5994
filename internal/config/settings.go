package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the personalised text and optional overrides.
// Every field has a built-in default; a settings file only replaces what it names.
type Settings struct {
	Asker        string
	Sender       string
	Question     string
	Answer       string
	Message      string
	Caption      string
	Photo        string
	MasterVolume float64
	Mute         bool
	AcceptSound  string
	RejectSound  string
}

type yamlSounds struct {
	Accept string `yaml:"accept"`
	Reject string `yaml:"reject"`
}

type yamlSettings struct {
	Asker        *string    `yaml:"asker"`
	Sender       *string    `yaml:"sender"`
	Question     *string    `yaml:"question"`
	Answer       *string    `yaml:"answer"`
	Message      *string    `yaml:"message"`
	Caption      *string    `yaml:"caption"`
	Photo        *string    `yaml:"photo"`
	MasterVolume *float64   `yaml:"master_volume"`
	Mute         *bool      `yaml:"mute"`
	Sounds       yamlSounds `yaml:"sounds"`
}

// DefaultSettings returns the built-in greeting.
func DefaultSettings() Settings {
	return Settings{
		Asker:        "Vismaya",
		Sender:       "Aryan",
		Question:     "will you be my",
		Answer:       "I love you honey!!",
		Message:      "Thank you for saying yes. Every moment with you is a gift :)",
		Caption:      "2025",
		Photo:        "valentine.jpg",
		MasterVolume: 1.0,
	}
}

// LoadSettings reads overrides from a YAML file.
// An empty path or a missing file yields the defaults.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

func applyYamlSettings(s *Settings, f yamlSettings) {
	setString(&s.Asker, f.Asker)
	setString(&s.Sender, f.Sender)
	setString(&s.Question, f.Question)
	setString(&s.Answer, f.Answer)
	setString(&s.Message, f.Message)
	setString(&s.Caption, f.Caption)
	setString(&s.Photo, f.Photo)
	if f.MasterVolume != nil {
		s.MasterVolume = Clamp01(*f.MasterVolume)
	}
	if f.Mute != nil {
		s.Mute = *f.Mute
	}
	s.AcceptSound = f.Sounds.Accept
	s.RejectSound = f.Sounds.Reject
}

func setString(dst *string, v *string) {
	if v != nil && *v != "" {
		*dst = *v
	}
}

// Clamp01 limits v to [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
