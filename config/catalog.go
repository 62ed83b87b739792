package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mergington.GO/core/registry"
)

// DefaultCatalog returns the built-in Mergington High School activity
// catalog. A fresh map is built on every call so callers can hand it to a
// registry without sharing slices.
func DefaultCatalog() map[string]registry.Activity {
	return map[string]registry.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Basketball Team": {
			Description:     "Join the school basketball team and compete in inter-school matches",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"alex@mergington.edu", "ryan@mergington.edu"},
		},
		"Swimming Club": {
			Description:     "Learn swimming techniques and participate in competitions",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"sarah@mergington.edu", "james@mergington.edu"},
		},
		"Art Studio": {
			Description:     "Explore various art mediums including painting, drawing, and sculpture",
			Schedule:        "Wednesdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"emily@mergington.edu", "lucas@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Develop acting skills and participate in school theater productions",
			Schedule:        "Mondays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"ava@mergington.edu", "ethan@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Develop critical thinking and public speaking through competitive debates",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"isabella@mergington.edu", "william@mergington.edu"},
		},
		"Science Olympiad": {
			Description:     "Compete in science and engineering challenges at regional and national levels",
			Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"mia@mergington.edu", "noah@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}

// LoadCatalog reads an activity catalog from a YAML file. The file maps
// activity name to description/schedule/max_participants/participants.
func LoadCatalog(path string) (map[string]registry.Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var catalog map[string]registry.Activity
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := validateCatalog(catalog); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return catalog, nil
}

// EffectiveCatalog returns the catalog the process should serve: the
// CATALOG_FILE override when set, the built-in catalog otherwise.
func EffectiveCatalog() (map[string]registry.Activity, error) {
	if AppConfig != nil && AppConfig.CatalogFile != "" {
		return LoadCatalog(AppConfig.CatalogFile)
	}
	return DefaultCatalog(), nil
}

func validateCatalog(catalog map[string]registry.Activity) error {
	if len(catalog) == 0 {
		return fmt.Errorf("no activities defined")
	}
	for name, act := range catalog {
		if name == "" {
			return fmt.Errorf("activity with empty name")
		}
		if act.MaxParticipants <= 0 {
			return fmt.Errorf("activity %q: max_participants must be positive", name)
		}
		seen := make(map[string]bool, len(act.Participants))
		for _, p := range act.Participants {
			if seen[p] {
				return fmt.Errorf("activity %q: duplicate participant %q", name, p)
			}
			seen[p] = true
		}
	}
	return nil
}
