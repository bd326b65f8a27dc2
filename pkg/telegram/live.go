package telegram

import "sync"

// liveEntry is one chat with a pinned live status message.
type liveEntry struct {
	Device    string
	MessageID int
}

// liveStatusStore tracks, per chat, which device status message should
// be refreshed by the live updater. A chat has at most one live entry;
// selecting a new device replaces the previous one.
type liveStatusStore struct {
	mu      sync.Mutex
	entries map[int64]liveEntry
}

func newLiveStatusStore() *liveStatusStore {
	return &liveStatusStore{
		entries: make(map[int64]liveEntry),
	}
}

func (s *liveStatusStore) Set(chatID int64, device string, messageID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[chatID] = liveEntry{Device: device, MessageID: messageID}
}

func (s *liveStatusStore) Snapshot() map[int64]liveEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int64]liveEntry, len(s.entries))
	for chatID, entry := range s.entries {
		out[chatID] = entry
	}
	return out
}

func (s *liveStatusStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
