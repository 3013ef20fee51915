package termview

import "github.com/olivier-w/wavescope/internal/frame"

// Presenter keeps the text of the latest frame for a terminal view. The
// buffer is only re-encoded when the frame reports a change.
type Presenter struct {
	r     *Renderer
	text  string
	last  frame.Frame
	valid bool
}

func NewPresenter(r *Renderer) *Presenter {
	return &Presenter{r: r}
}

// Present implements frame.Presenter.
func (p *Presenter) Present(f frame.Frame) error {
	if f.Changed || !p.valid {
		p.text = p.r.Render(f.Buffer)
		p.valid = true
	}
	p.last = f
	return nil
}

// Text returns the encoded waveform of the most recent frame.
func (p *Presenter) Text() string { return p.text }

// Frame returns the most recent frame.
func (p *Presenter) Frame() frame.Frame { return p.last }
