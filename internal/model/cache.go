package model

import "time"

// PostListCache keeps per-user post lists for a limited time.
type PostListCache interface {
	Get(key string) ([]PostView, bool)
	Set(key string, value []PostView, ttl time.Duration)
	Delete(key string) bool
	// DeleteMatching removes every key containing substr and returns the count.
	DeleteMatching(substr string) int
}
