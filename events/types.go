package events

// EventType represents the type of game event
type EventType int

const (
	// EventMatchStarted signals the match entered Live from a start command
	// Payload: *MatchPayload
	EventMatchStarted EventType = iota + 1

	// EventMatchRestarted signals scores were zeroed and a new match began
	// Payload: *MatchPayload
	EventMatchRestarted

	// EventMatchPaused signals Live -> Stopped
	// Payload: *MatchPayload
	EventMatchPaused

	// EventRoundReset signals entities returned to spawn with a fresh serve
	// Trigger: match start, point scored | Payload: *ServePayload
	EventRoundReset

	// EventPointScored signals the ball crossed the floor plane
	// Consumer: ScoreSinks, StatsHandler, audio | Payload: *PointPayload
	EventPointScored

	// EventBallStrike signals a body kicked the ball
	// Payload: *StrikePayload
	EventBallStrike

	// EventWallBounce signals a side wall reflection | Payload: nil
	EventWallBounce

	// EventCeilingBounce signals a ceiling reflection | Payload: nil
	EventCeilingBounce

	// EventNetBounce signals a net reflection | Payload: nil
	EventNetBounce

	// EventBallGrounded signals floor contact before scoring resolves it
	// Consumer: ScoreSystem | Payload: *GroundPayload
	EventBallGrounded

	// EventJump signals a body left the floor
	// Payload: *JumpPayload
	EventJump

	// EventLanded signals a body returned to the floor
	// Payload: *JumpPayload
	EventLanded
)

func init() {
	RegisterType("MatchStarted", EventMatchStarted, &MatchPayload{})
	RegisterType("MatchRestarted", EventMatchRestarted, &MatchPayload{})
	RegisterType("MatchPaused", EventMatchPaused, &MatchPayload{})
	RegisterType("RoundReset", EventRoundReset, &ServePayload{})
	RegisterType("PointScored", EventPointScored, &PointPayload{})
	RegisterType("BallStrike", EventBallStrike, &StrikePayload{})
	RegisterType("WallBounce", EventWallBounce, nil)
	RegisterType("CeilingBounce", EventCeilingBounce, nil)
	RegisterType("NetBounce", EventNetBounce, nil)
	RegisterType("BallGrounded", EventBallGrounded, &GroundPayload{})
	RegisterType("Jump", EventJump, &JumpPayload{})
	RegisterType("Landed", EventLanded, &JumpPayload{})
}

func (t EventType) String() string {
	if name := GetEventName(t); name != "" {
		return name
	}
	return "Unknown"
}

// GameEvent is a single simulation occurrence stamped with its tick
type GameEvent struct {
	Type    EventType
	Tick    uint64
	Payload any
}
