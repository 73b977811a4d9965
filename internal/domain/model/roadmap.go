package model

// RoadmapStep is one module of a learning path.
type RoadmapStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Roadmap is a static learning path. The catalog is built once at startup
// and never mutated afterwards.
type Roadmap struct {
	Key         string        `json:"key"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Steps       []RoadmapStep `json:"steps"`
	Jobs        []string      `json:"jobs"`
}

// RoadmapSummary is the list-view projection of a roadmap.
type RoadmapSummary struct {
	Key         string   `json:"key"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Jobs        []string `json:"jobs"`
}
