package bot

import (
	"image"
	"sync"

	"github.com/samber/lo"
)

func NewHistory(max int) *History {
	if max < 1 {
		max = 1
	}
	return &History{max: max, chats: make(map[int64][]*HistoryLog)}
}

// History keeps the last few images of every chat so edits can be chained and undone.
type History struct {
	sync.Mutex
	max   int
	chats map[int64][]*HistoryLog
}

type HistoryLog struct {
	img     image.Image
	effects []string
}

func (h *History) Push(chat int64, img image.Image, effects []string) {
	h.Lock()
	defer h.Unlock()

	items := append(h.chats[chat], &HistoryLog{img: img, effects: effects})
	if len(items) > h.max {
		items = items[1:]
	}
	h.chats[chat] = items
}

func (h *History) Curr(chat int64) *HistoryLog {
	h.Lock()
	defer h.Unlock()

	log, _ := lo.Last(h.chats[chat])
	return log
}

// Undo drops the current image and returns the one before it.
func (h *History) Undo(chat int64) *HistoryLog {
	h.Lock()
	defer h.Unlock()

	items := h.chats[chat]
	prev, err := lo.Nth(items, -2)
	if err != nil {
		return nil
	}

	h.chats[chat] = items[:len(items)-1]
	return prev
}

func (h *History) Len(chat int64) int {
	h.Lock()
	defer h.Unlock()

	return len(h.chats[chat])
}
