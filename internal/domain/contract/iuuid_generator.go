package contract

// IUUIDGenerator issues entity identifiers.
type IUUIDGenerator interface {
	NewUUID() string
}
