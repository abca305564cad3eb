package utils

// ContextKey is the type used for request-scoped context values.
type ContextKey string

// Request-scoped context keys set by handlers and read by flows
const (
	RequestIDKey  ContextKey = "request_id"
	UserAgentKey  ContextKey = "user_agent"
	IPAddressKey  ContextKey = "ip_address"
	EndpointKey   ContextKey = "endpoint"
	TimeoutKey    ContextKey = "timeout"
	CancelFuncKey ContextKey = "cancel_func"
)

// Rating constants
const (
	// HighLiabilityLimit is the liability ceiling that selects the high liability tier.
	// Any other requested limit falls into the low tier.
	HighLiabilityLimit = 2_000_000

	// LowLiabilityLimit is the conventional low liability ceiling.
	LowLiabilityLimit = 1_000_000

	// AccidentWindowYears is the trailing window for counting accidents at quote time.
	AccidentWindowYears = 5

	// PolicyTermYears is the coverage term applied when issuing a policy.
	PolicyTermYears = 1

	// YoungDriverAgeCutoff selects the young driver tier for ages strictly below it.
	YoungDriverAgeCutoff = 25
)

// HTTP constants
const (
	// CORSMaxAge is how long browsers may cache CORS preflight responses, in seconds.
	CORSMaxAge = 86400
)

// Cache keys
const (
	// RiskFactorsCacheKey is the redis key holding the latest risk factor snapshot.
	RiskFactorsCacheKey = "risk_factors:latest"
)
