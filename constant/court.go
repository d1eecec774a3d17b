package constant

// Court Geometry, in court units (y grows downward, floor line at CourtHeight)
const (
	CourtWidth  = 800.0
	CourtHeight = 500.0

	BodyWidth  = 80.0
	BodyHeight = 80.0

	// BodySpawnInset is the distance from the outer wall to the spawn edge of each body
	BodySpawnInset = 150.0
	// BodySpawnLift places the spawn top edge this far above the floor line
	BodySpawnLift = 100.0

	BallRadius = 20.0
	BallSpawnY = 50.0

	NetWidth  = 4.0
	NetHeight = 100.0
)
