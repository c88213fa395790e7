package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// SchemaPayloadKey returns the cache key for the rendered questionnaire
// schema payload.
func (r *CacheKeyStruct) SchemaPayloadKey() string {
	return "questionnaire:schema:payload"
}

// StatsKey returns the cache key for the aggregate statistics snapshot.
func (r *CacheKeyStruct) StatsKey() string {
	return "assessments:stats"
}

// AdminSessionKey returns the cache key for an admin's active session.
func (r *CacheKeyStruct) AdminSessionKey(adminID int) string {
	return fmt.Sprintf("admin:%d:session", adminID)
}

// SubmissionsChannel returns the Redis PubSub channel name for the live
// submission feed.
func (r *CacheKeyStruct) SubmissionsChannel() string {
	return "assessments:submissions"
}

var CacheKey = NewCacheKeyStruct()
