package model

type ExcerptInfo struct {
	Name   string `json:"name"`
	Events int    `json:"events"`
	Ticks  uint64 `json:"ticks"`
}

type PresetInfo struct {
	Name          string    `json:"name"`
	Probabilities []float64 `json:"probabilities"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
