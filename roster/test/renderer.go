package test

import (
	"github.com/hospital-mgmt/frontdesk/roster"
)

// Renderer records what the controller rendered.
type Renderer struct {
	Header       roster.Header
	Rows         []roster.Row
	Empty        bool
	Loading      bool
	Form         *roster.Form
	LoadingCalls []bool
	FormCloses   int
}

var _ roster.Renderer = &Renderer{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) RenderHeader(header roster.Header) {
	r.Header = header
}

func (r *Renderer) RenderList(rows []roster.Row) {
	r.Rows = rows
}

func (r *Renderer) SetEmpty(empty bool) {
	r.Empty = empty
}

func (r *Renderer) SetLoading(loading bool) {
	r.Loading = loading
	r.LoadingCalls = append(r.LoadingCalls, loading)
}

func (r *Renderer) RenderForm(form roster.Form) {
	r.Form = &form
}

func (r *Renderer) CloseForm() {
	r.Form = nil
	r.FormCloses++
}

// Hides counts how many times the spinner was hidden.
func (r *Renderer) Hides() int {
	count := 0
	for _, loading := range r.LoadingCalls {
		if !loading {
			count++
		}
	}
	return count
}

// Confirmer answers every prompt with Answer and remembers the prompts.
type Confirmer struct {
	Answer  bool
	Prompts []string
}

func (c *Confirmer) Confirm(prompt string) bool {
	c.Prompts = append(c.Prompts, prompt)
	return c.Answer
}
