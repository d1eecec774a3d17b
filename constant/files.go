package constant

// Paths and Files
const (
	LogDir         = "logs"
	LogFileName    = "vi-volley.log"
	MaxLogSize     = 10 * 1024 * 1024
	DefaultConfig  = "vi-volley.toml"
	SpriteFileExt  = ".txt"
	SpritePlayer   = "player"
	SpriteOpponent = "opponent"
	SpriteBall     = "ball"
)
