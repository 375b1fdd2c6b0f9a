package services

import (
	"sync"

	"cropconnect-client/models"
	"cropconnect-client/storage"
	"cropconnect-client/utils"
)

// Wishlist is the user-local saved-for-later set of crop records. It
// never touches the network: whole crop records are kept so the saved
// view renders without a fetch, persisted verbatim as one snapshot
// under the wishlist key. Membership is by crop id. Unbounded, no
// eviction.
type Wishlist struct {
	mu     sync.Mutex
	store  storage.KeyValue
	logger *utils.Logger
	items  []models.Crop
}

// NewWishlist loads the persisted snapshot. A corrupt or absent
// snapshot degrades to an empty set without surfacing an error.
func NewWishlist(store storage.KeyValue, logger *utils.Logger) *Wishlist {
	w := &Wishlist{store: store, logger: logger}
	var items []models.Crop
	if err := store.Get(storage.KeyWishlist, &items); err != nil {
		logger.Debug("[wishlist] no usable snapshot, starting empty: %v", err)
		items = nil
	}
	w.items = items
	return w
}

// Toggle flips membership for the crop: the first record with the same
// id is removed, otherwise the record is appended. The snapshot is
// persisted after every flip. Returns whether the crop is now present.
func (w *Wishlist) Toggle(c models.Crop) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, item := range w.items {
		if item.ID == c.ID {
			w.items = append(w.items[:i], w.items[i+1:]...)
			w.persistLocked()
			return false
		}
	}
	w.items = append(w.items, c)
	w.persistLocked()
	return true
}

// Contains reports whether a crop with the given id is saved.
func (w *Wishlist) Contains(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, item := range w.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Count returns the current size of the set.
func (w *Wishlist) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.items)
}

// Items returns a copy of the saved crops in insertion order.
func (w *Wishlist) Items() []models.Crop {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]models.Crop, len(w.items))
	copy(out, w.items)
	return out
}

func (w *Wishlist) persistLocked() {
	if err := w.store.Put(storage.KeyWishlist, w.items); err != nil {
		// Persistence problems stay out of the user's way.
		w.logger.Warn("[wishlist] persist failed: %v", err)
	}
}
