package storage

import "errors"

// Well-known keys in the client-persisted store.
const (
	KeyWishlist       = "wishlist"
	KeyLoggedInUser   = "loggedInUser"
	KeyCurrentBidCrop = "currentBidCrop"
	KeyChatCropID     = "chatCropId"
)

// ErrNotFound is returned when a key has no usable value. Callers
// treat it the same as a corrupt value: fall back to the zero state.
var ErrNotFound = errors.New("storage: key not found")

// KeyValue is the interface any client-side persistence backend must
// satisfy. Values are JSON-serialisable snapshots written whole.
type KeyValue interface {
	Get(key string, out any) error
	Put(key string, val any) error
	Delete(key string) error
}
