package constants

// Career recommendation bounds requested from the model and enforced on its reply.
const (
	CareerCount           = 3
	MinMatchPercentage    = 75
	MaxMatchPercentage    = 95
	MinRequiredSkills     = 4
	MaxRequiredSkills     = 6
	MinSkillGaps          = 2
	MaxSkillGaps          = 3
	RecommendedCourseSize = 2
)

// Chat assistant
const (
	AssistantName = "NEXUS"
	ChatWordLimit = 150
)

// Response source, reported in the X-Career-Source header.
const (
	SourceModel    = "model"
	SourceFallback = "fallback"
	SourceHeader   = "X-Career-Source"
)

// Session
const (
	SessionHeader    = "X-Session-ID"
	SessionKeyPrefix = "chat_session:"
	SessionContext   = "sessionId"
)
