package templates

// Template describes one presentation layout a resume can reference by ID.
type Template struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Preview     string   `json:"preview" yaml:"preview"`
	Category    string   `json:"category" yaml:"category"`
	Features    []string `json:"features" yaml:"features"`
}

func (t Template) clone() Template {
	out := t
	out.Features = make([]string, len(t.Features))
	copy(out.Features, t.Features)
	return out
}
