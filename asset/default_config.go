package asset

// DefaultConfig is the stock TOML configuration; config.Default decodes it
const DefaultConfig = `
# === vi-volley configuration ===
# Distances are court units, speeds are court units per tick (y grows downward)

[court]
width = 800.0
height = 500.0

[physics]
gravity = 0.5
jump_force = -12.0
player_speed = 5.0
ai_speed = 4.0
ball_speed_x = 5.0
ball_speed_y = -8.0
ai_jump_factor = 0.9

[loop]
tick_ms = 16
key_hold_ms = 150
seed = 0

[audio]
enabled = true
volume = 0.6
muted = false
bounce_cooldown = 10

[keys]
left = ["a", "A", "ArrowLeft"]
right = ["d", "D", "ArrowRight"]
jump = ["w", "W", "ArrowUp", "Space"]

[assets]
sprite_dir = "assets"

[log]
debug = false
`
