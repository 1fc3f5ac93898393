package apifootball

import "time"

const providerName = "apifootball"

const (
	defaultBaseURL     = "https://football-api-7.p.rapidapi.com/api/v3"
	defaultAPIHost     = "football-api-7.p.rapidapi.com"
	defaultHTTPTimeout = 10 * time.Second
	maxBodyBytes       = 8 << 20
	maxErrorBodyBytes  = 512
)

const (
	headerAPIKey    = "x-rapidapi-key"
	headerAPIHost   = "x-rapidapi-host"
	headerRemaining = "x-ratelimit-requests-remaining"
)

// Upstream endpoints, relative to the base URL.
const (
	EndpointFixtures   = "fixtures"
	EndpointStatistics = "fixtures/statistics"
	EndpointHeadToHead = "fixtures/headtohead"
	EndpointTeams      = "teams"
	EndpointSquads     = "players/squad"
)

// Result sizes requested from the upstream.
const (
	UpcomingCount   = 20
	HeadToHeadCount = 10
)
