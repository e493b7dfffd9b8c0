// Package types contains common read-model types shared across the
// application.
package types

import "github.com/okian/mastery/internal/domain/skill"

// Entry is one row of the mastery ranking.
type Entry struct {
	Rank          int        `json:"rank"`
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	Kind          skill.Kind `json:"skillType"`
	Progress      float64    `json:"progress"`
	PracticeHours float64    `json:"practiceHours"`
	Score         float64    `json:"score"`
}

// Stats aggregates the whole collection. On an empty collection all counts
// and the mean are zero and Highest/Lowest are nil.
type Stats struct {
	Count              int     `json:"count"`
	TechnicalCount     int     `json:"technicalCount"`
	SoftCount          int     `json:"softCount"`
	MeanScore          float64 `json:"meanScore"`
	TotalPracticeHours float64 `json:"totalPracticeHours"`
	Highest            *Entry  `json:"highest,omitempty"`
	Lowest             *Entry  `json:"lowest,omitempty"`
}
