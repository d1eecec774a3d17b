package constant

// Render Layout
const (
	// HUDRows is the number of terminal rows reserved above the court
	HUDRows = 2

	// ScoreFlashFrames is how many frames the scoreboard flashes after a point
	ScoreFlashFrames = 30

	// MinCourtCols and MinCourtRows are the smallest terminal area the court is drawn into
	MinCourtCols = 40
	MinCourtRows = 12
)
