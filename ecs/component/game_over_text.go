package component

// GameOverText is the end-of-run message. Hosts decide how to present it.
type GameOverText struct {
	Title  string
	Prompt string
}

var GameOverTextComponent = NewComponent[GameOverText]()
