package model

// Window is the focused application window captured at the start of a run.
type Window struct {
	ID    int    `yaml:"id"            json:"id"`
	Title string `yaml:"title"         json:"title"`
	App   string `yaml:"app,omitempty" json:"app,omitempty"`
}
