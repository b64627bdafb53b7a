package deck

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"slidedeck/internal/domain"
)

//go:embed default.toml
var defaultDeck []byte

// Validation errors
var (
	ErrNoSlides    = errors.New("deck has no slides")
	ErrEmptyTitle  = errors.New("slide has no title")
	ErrDuplicateID = errors.New("duplicate slide id")
)

// File is the on-disk deck format
type File struct {
	Title  string      `toml:"title"`
	Slides []SlideFile `toml:"slides"`
}

// SlideFile is one slide in a deck file
type SlideFile struct {
	ID       string       `toml:"id"`
	Title    string       `toml:"title"`
	Subtitle string       `toml:"subtitle"`
	Body     []string     `toml:"body"`
	Points   []string     `toml:"points"`
	Metrics  []MetricFile `toml:"metrics"`
	Notes    string       `toml:"notes"`
}

// MetricFile is one metric in a deck file
type MetricFile struct {
	Label  string  `toml:"label"`
	Value  float64 `toml:"value"`
	Suffix string  `toml:"suffix"`
}

// Default returns the embedded deck
func Default() (*domain.Deck, error) {
	d, err := Parse(defaultDeck)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded deck: %w", err)
	}
	return d, nil
}

// LoadFromPath loads a deck from a TOML file
func LoadFromPath(path string) (*domain.Deck, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("deck file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck file: %w", err)
	}

	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Load returns the deck at path, or the embedded deck if path is empty
func Load(path string) (*domain.Deck, error) {
	if path == "" {
		return Default()
	}
	return LoadFromPath(path)
}

// Parse decodes and validates deck TOML
func Parse(data []byte) (*domain.Deck, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("failed to parse deck at line %d column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("failed to parse deck: %w", err)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f.Deck(), nil
}

// Validate checks the deck is presentable
func (f *File) Validate() error {
	if len(f.Slides) == 0 {
		return ErrNoSlides
	}

	seen := make(map[string]int, len(f.Slides))
	for i, s := range f.Slides {
		if strings.TrimSpace(s.Title) == "" {
			return fmt.Errorf("slide %d: %w", i+1, ErrEmptyTitle)
		}
		if s.ID == "" {
			continue
		}
		if prev, ok := seen[s.ID]; ok {
			return fmt.Errorf("slide %d and %d share id %q: %w", prev+1, i+1, s.ID, ErrDuplicateID)
		}
		seen[s.ID] = i
	}
	return nil
}

// Deck converts the file into the immutable domain deck. Slides without an
// id get "slide-N".
func (f *File) Deck() *domain.Deck {
	slides := make([]domain.Slide, 0, len(f.Slides))
	for i, s := range f.Slides {
		id := s.ID
		if id == "" {
			id = fmt.Sprintf("slide-%d", i+1)
		}
		metrics := make([]domain.Metric, 0, len(s.Metrics))
		for _, m := range s.Metrics {
			metrics = append(metrics, domain.Metric{Label: m.Label, Value: m.Value, Suffix: m.Suffix})
		}
		slides = append(slides, domain.Slide{
			ID:       id,
			Title:    s.Title,
			Subtitle: s.Subtitle,
			Body:     append([]string(nil), s.Body...),
			Points:   append([]string(nil), s.Points...),
			Metrics:  metrics,
			Notes:    s.Notes,
		})
	}

	title := f.Title
	if title == "" {
		title = slides[0].Title
	}
	return domain.NewDeck(title, slides)
}
