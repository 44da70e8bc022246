package desktop

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// namedKeys maps the terminal key names used in the game document to
// Ebitengine keys. Single letters and digits are resolved separately.
var namedKeys = map[string]ebiten.Key{
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"enter":     ebiten.KeyEnter,
	"esc":       ebiten.KeyEscape,
	"tab":       ebiten.KeyTab,
	"backspace": ebiten.KeyBackspace,
	" ":         ebiten.KeySpace,
	"space":     ebiten.KeySpace,
	",":         ebiten.KeyComma,
	".":         ebiten.KeyPeriod,
	"/":         ebiten.KeySlash,
	";":         ebiten.KeySemicolon,
	"[":         ebiten.KeyBracketLeft,
	"]":         ebiten.KeyBracketRight,
	"-":         ebiten.KeyMinus,
	"=":         ebiten.KeyEqual,
}

// keyByName resolves a configured key name.
func keyByName(name string) (ebiten.Key, bool) {
	if k, ok := namedKeys[strings.ToLower(name)]; ok {
		return k, true
	}

	var k ebiten.Key
	switch {
	case len(name) == 1 && name[0] >= '0' && name[0] <= '9':
		if err := k.UnmarshalText([]byte("Digit" + name)); err == nil {
			return k, true
		}
	case len(name) == 1:
		if err := k.UnmarshalText([]byte(strings.ToUpper(name))); err == nil {
			return k, true
		}
	}
	return 0, false
}

// KeySource reports keys pressed since the previous update.
type KeySource interface {
	JustPressed(k ebiten.Key) bool
}

// ebitenKeys reads the real keyboard.
type ebitenKeys struct{}

func (ebitenKeys) JustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}
