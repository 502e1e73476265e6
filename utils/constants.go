package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// SubscriberCountPrefix is the prefix for cached per-client subscriber counts.
const SubscriberCountPrefix = "subcount:"

// SubscriberCountTTL bounds staleness of the cached subscriber count.
const SubscriberCountTTL = 5 * time.Minute
