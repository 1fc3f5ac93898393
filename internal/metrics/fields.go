package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrEndpoint = "endpoint"
	AttrOutcome  = "outcome"
)

// CacheOutcome classifies a single cache lookup.
type CacheOutcome string

const (
	CacheHit     CacheOutcome = "hit"
	CacheMiss    CacheOutcome = "miss"
	CacheStale   CacheOutcome = "stale"
	CacheCorrupt CacheOutcome = "corrupt"
)
