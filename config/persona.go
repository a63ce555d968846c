package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Persona describes the agent identity and instructions handed to the LLM.
type Persona struct {
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	Instructions string `yaml:"instructions"`
}

// DefaultPersona is used when no persona file is configured or present.
var DefaultPersona = Persona{
	Name:        "news-capsule-agent",
	Description: "An assistant that researches topics and stores news capsules in blob storage",
	Instructions: "You are an AI Assistant tasked with helping users create news capsules " +
		"of topics they ask for and store them for consumption. Use the search tool to get " +
		"the latest news on a topic and summarize it. When the user asks you to store the " +
		"news, ask for the name of the container, then upload the summary with a unique, " +
		"descriptive blob name without special characters, saved as a .txt file unless " +
		"specified otherwise. Always prefer using available tools rather than answering " +
		"from your knowledge alone.",
}

// LoadPersona reads the agent persona from a YAML file. A missing file is not
// an error; the default persona is returned instead.
func LoadPersona(path string) (Persona, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultPersona, nil
		}
		return Persona{}, fmt.Errorf("read persona file: %w", err)
	}

	var p Persona
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Persona{}, fmt.Errorf("parse persona file %s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = DefaultPersona.Name
	}
	if p.Instructions == "" {
		p.Instructions = DefaultPersona.Instructions
	}
	return p, nil
}
