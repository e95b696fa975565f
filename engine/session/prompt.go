package session

import "strings"

// MaxPromptLength bounds what a player can type into a prompt
const MaxPromptLength = 16

// Prompt is a one-line text input with a question, fed keystroke by keystroke
type Prompt struct {
	Title    string
	Question string
	buf      []rune
}

// NewPrompt creates an empty prompt
func NewPrompt(title, question string) *Prompt {
	return &Prompt{Title: title, Question: question}
}

// Type appends printable runes, ignoring control characters and overflow
func (p *Prompt) Type(rs ...rune) {
	for _, r := range rs {
		if r < ' ' || r == 0x7f {
			continue
		}
		if len(p.buf) >= MaxPromptLength {
			return
		}
		p.buf = append(p.buf, r)
	}
}

// Backspace removes the last rune
func (p *Prompt) Backspace() {
	if len(p.buf) > 0 {
		p.buf = p.buf[:len(p.buf)-1]
	}
}

// Text returns what has been typed so far
func (p *Prompt) Text() string { return string(p.buf) }

// Submit returns the typed line and clears the prompt
func (p *Prompt) Submit() string {
	line := strings.TrimSpace(string(p.buf))
	p.buf = p.buf[:0]
	return line
}
