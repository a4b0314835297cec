// Package portfolio serves the static portfolio dataset behind the
// read-only data API. Content is fixed at build time; the only logic is
// section lookup and validation.
package portfolio

import (
	"fmt"
	"sort"
	"time"

	"github.com/abirabbas/portfolio-api/internal/domain"
)

// Version identifies the dataset revision reported in response metadata.
const Version = "1.0.0"

type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Tag         string `json:"tag"`
	Link        string `json:"link"`
}

type Experience struct {
	Role    string   `json:"role"`
	Company string   `json:"company"`
	Period  string   `json:"period"`
	Details []string `json:"details"`
}

type JourneyStep struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Award struct {
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Description string `json:"description"`
}

type TrustPillar struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Commitments []string `json:"commitments"`
}

type AssistantAct struct {
	Act   string `json:"act"`
	Label string `json:"label"`
	Text  string `json:"text"`
}

type Metadata struct {
	LastUpdated   string `json:"lastUpdated"`
	Version       string `json:"version"`
	TotalSections int    `json:"totalSections"`
}

// Section returns one named slice of the dataset, or every section for
// "all". Unknown names produce an error listing the valid choices.
func Section(name string) (map[string]interface{}, error) {
	if !IsValidSection(name) {
		return nil, fmt.Errorf("invalid section %q, valid sections: %v", name, ValidSections())
	}

	meta := Metadata{
		LastUpdated:   time.Now().UTC().Format(time.RFC3339),
		Version:       Version,
		TotalSections: len(sections),
	}

	if name == "all" {
		all := make(map[string]interface{}, len(sections)+1)
		for key, value := range sections {
			all[key] = value
		}
		all["metadata"] = meta
		return all, nil
	}

	return map[string]interface{}{
		name:       sections[name],
		"metadata": meta,
	}, nil
}

// IsValidSection reports whether name addresses a known section.
func IsValidSection(name string) bool {
	if name == "all" {
		return true
	}
	_, ok := sections[name]
	return ok
}

// ValidSections lists addressable section names, sorted, with "all" last.
func ValidSections() []string {
	names := make([]string, 0, len(sections)+1)
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return append(names, "all")
}

func assistantActs() []AssistantAct {
	entries := domain.Passages()
	acts := make([]AssistantAct, len(entries))
	for i, entry := range entries {
		acts[i] = AssistantAct{
			Act:   entry.Metadata["act"],
			Label: entry.Metadata["label"],
			Text:  entry.Text,
		}
	}
	return acts
}
