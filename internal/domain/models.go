package domain

// Slide represents one full-viewport section of a deck
type Slide struct {
	ID       string
	Title    string
	Subtitle string
	Body     []string // paragraphs, wrapped to the slide width
	Points   []string // revealed one by one on entrance
	Metrics  []Metric // counted up on entrance
	Notes    string   // speaker notes, shown in the pager
}

// Metric is a number shown on a slide
type Metric struct {
	Label  string
	Value  float64
	Suffix string // "%", "+", "x" etc.
}

// Decimal reports whether the metric should be printed with one decimal place
func (m Metric) Decimal() bool {
	return m.Value != float64(int64(m.Value))
}

// Deck is an ordered, fixed collection of slides
type Deck struct {
	title  string
	slides []Slide
}

// NewDeck creates a deck from the given slides. The slice is copied.
func NewDeck(title string, slides []Slide) *Deck {
	s := make([]Slide, len(slides))
	copy(s, slides)
	return &Deck{title: title, slides: s}
}

// Title returns the deck title
func (d *Deck) Title() string { return d.title }

// Len returns the number of slides
func (d *Deck) Len() int { return len(d.slides) }

// Slide returns the slide at index i
func (d *Deck) Slide(i int) (Slide, bool) {
	if i < 0 || i >= len(d.slides) {
		return Slide{}, false
	}
	return d.slides[i], true
}

// Slides returns a copy of all slides
func (d *Deck) Slides() []Slide {
	out := make([]Slide, len(d.slides))
	copy(out, d.slides)
	return out
}
