package contract

import "time"

// IConfigProvider exposes application configuration to usecases.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetAdminPasswordHash() string
	GetAdminTokenExpiry() time.Duration
	GetVocabularyCacheTTL() time.Duration
}
