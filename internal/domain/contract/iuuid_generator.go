package contract

// IUUIDGenerator abstracts document id generation.
type IUUIDGenerator interface {
	NewUUID() string
}
