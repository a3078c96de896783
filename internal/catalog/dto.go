package catalog

import (
	"strings"
	"time"

	"music-catalog/internal/errs"
)

type albumRequest struct {
	Name string `json:"name"`
	Year int    `json:"year"`
}

func (b *albumRequest) validate() error {
	b.Name = strings.TrimSpace(b.Name)

	var problems []string
	if b.Name == "" {
		problems = append(problems, "name: is required")
	}
	if b.Year < 1900 || b.Year > time.Now().Year() {
		problems = append(problems, "year: must be between 1900 and the current year")
	}
	if len(problems) > 0 {
		return errs.ValidationFields(problems)
	}
	return nil
}

type songRequest struct {
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	Genre     string  `json:"genre"`
	Performer string  `json:"performer"`
	Duration  *int    `json:"duration"`
	AlbumID   *string `json:"albumId"`
}

func (b *songRequest) validate() error {
	b.Title = strings.TrimSpace(b.Title)
	b.Genre = strings.TrimSpace(b.Genre)
	b.Performer = strings.TrimSpace(b.Performer)

	var problems []string
	if b.Title == "" {
		problems = append(problems, "title: is required")
	}
	if b.Year == 0 {
		problems = append(problems, "year: is required")
	}
	if b.Genre == "" {
		problems = append(problems, "genre: is required")
	}
	if b.Performer == "" {
		problems = append(problems, "performer: is required")
	}
	if b.Duration != nil && *b.Duration < 0 {
		problems = append(problems, "duration: must not be negative")
	}
	if len(problems) > 0 {
		return errs.ValidationFields(problems)
	}
	return nil
}

func (b *songRequest) input() SongInput {
	return SongInput{
		Title:     b.Title,
		Year:      b.Year,
		Genre:     b.Genre,
		Performer: b.Performer,
		Duration:  b.Duration,
		AlbumID:   b.AlbumID,
	}
}
