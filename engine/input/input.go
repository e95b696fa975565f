package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState tracks mouse and keyboard state per frame
type InputState struct {
	// Mouse
	MouseX, MouseY  int
	LeftJustPressed bool

	// Text typed this frame, for prompts
	Chars     []rune
	Enter     bool
	Backspace bool
	Escape    bool
}

func NewInputState() *InputState {
	return &InputState{}
}

// Update should be called every frame
func (s *InputState) Update() {
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	s.Chars = ebiten.AppendInputChars(s.Chars[:0])
	s.Enter = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
	s.Backspace = inpututil.IsKeyJustPressed(ebiten.KeyBackspace) ||
		(ebiten.IsKeyPressed(ebiten.KeyBackspace) && repeating(inpututil.KeyPressDuration(ebiten.KeyBackspace)))
	s.Escape = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// IsKeyJustPressed returns true if key was just pressed this frame
func (s *InputState) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// repeating mimics key auto-repeat for a held key
func repeating(frames int) bool {
	const delay, interval = 30, 4
	return frames >= delay && (frames-delay)%interval == 0
}
