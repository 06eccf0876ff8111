package model

// ExcerptLibrary is the ordered set of excerpts produced by one ingestion run.
// Index 0 is always the synthetic silence excerpt.
type ExcerptLibrary struct {
	Name     string
	Excerpts []Excerpt
}

func NewLibrary(name string) *ExcerptLibrary {
	return &ExcerptLibrary{
		Name:     name,
		Excerpts: []Excerpt{SilenceExcerpt()},
	}
}

func (l *ExcerptLibrary) Add(e Excerpt) {
	l.Excerpts = append(l.Excerpts, e)
}

func (l ExcerptLibrary) Len() int {
	return len(l.Excerpts)
}

// Empty reports whether the library holds nothing beyond the silence excerpt.
func (l ExcerptLibrary) Empty() bool {
	return len(l.Excerpts) <= 1
}

func (l ExcerptLibrary) Names() []string {
	names := make([]string, 0, len(l.Excerpts))
	for _, e := range l.Excerpts {
		names = append(names, e.Name)
	}
	return names
}

func (l ExcerptLibrary) MinPitch() (uint8, bool) {
	var min uint8
	found := false
	for _, e := range l.Excerpts {
		p, ok := e.MinPitch()
		if !ok {
			continue
		}
		if !found || p < min {
			min = p
			found = true
		}
	}
	return min, found
}

// Clone returns a deep copy that shares no event storage with l.
func (l ExcerptLibrary) Clone() ExcerptLibrary {
	excerpts := make([]Excerpt, len(l.Excerpts))
	for i, e := range l.Excerpts {
		excerpts[i] = e.Clone()
	}
	return ExcerptLibrary{Name: l.Name, Excerpts: excerpts}
}

