package shell

// Key names a key the shell reacts to.
type Key string

// KeyEscape is the Escape key.
const KeyEscape Key = "Escape"

// KeyEvent is a key transition delivered since the previous frame.
type KeyEvent struct {
	Key     Key
	Pressed bool
}

// EscapeReleased reports whether events contain a release of Escape. A
// press on its own does not count.
func EscapeReleased(events []KeyEvent) bool {
	for _, e := range events {
		if e.Key == KeyEscape && !e.Pressed {
			return true
		}
	}
	return false
}
