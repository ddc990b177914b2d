package trick

// DefaultBufferCapacity is used when a non-positive capacity is requested.
const DefaultBufferCapacity = 8

// Buffer is a bounded FIFO of directions entered while airborne.
// When full, pushing evicts the oldest entry.
type Buffer struct {
	dirs     []Direction
	capacity int
}

// NewBuffer returns an empty buffer holding at most capacity directions.
func NewBuffer(capacity int) Buffer {
	if capacity <= 0 {
		capacity = DefaultBufferCapacity
	}
	return Buffer{
		dirs:     make([]Direction, 0, capacity),
		capacity: capacity,
	}
}

// Push appends d, dropping from the front beyond capacity.
func (b *Buffer) Push(d Direction) {
	if b.capacity <= 0 {
		*b = NewBuffer(DefaultBufferCapacity)
	}
	if len(b.dirs) == b.capacity {
		copy(b.dirs, b.dirs[1:])
		b.dirs = b.dirs[:len(b.dirs)-1]
	}
	b.dirs = append(b.dirs, d)
}

// Clear empties the buffer without releasing its storage.
func (b *Buffer) Clear() {
	b.dirs = b.dirs[:0]
}

func (b *Buffer) Len() int { return len(b.dirs) }

func (b *Buffer) Cap() int { return b.capacity }

// Directions returns the buffered directions, oldest first. The slice is
// only valid until the next Push or Clear.
func (b *Buffer) Directions() []Direction {
	return b.dirs
}
