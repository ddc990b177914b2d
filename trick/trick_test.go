package trick

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input mgl64.Vec2
		want  Direction
		ok    bool
	}{
		{"inside deadzone", mgl64.Vec2{0.2, -0.3}, 0, false},
		{"left", mgl64.Vec2{-0.9, 0.1}, Left, true},
		{"right", mgl64.Vec2{0.6, 0.5}, Right, true},
		{"up", mgl64.Vec2{0.1, 0.8}, Up, true},
		{"down", mgl64.Vec2{-0.2, -1}, Down, true},
		{"tie favours x", mgl64.Vec2{-0.7, 0.7}, Left, true},
		{"one axis past deadzone", mgl64.Vec2{0, 0.5}, Up, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.input, 0.5)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection(" Up ")
	require.NoError(t, err)
	assert.Equal(t, Up, d)

	_, err = ParseDirection("sideways")
	assert.ErrorIs(t, err, ErrInvalidTrick)
}

func TestBufferNeverExceedsCapacity(t *testing.T) {
	b := NewBuffer(3)
	seq := []Direction{Left, Right, Up, Down, Left, Left, Up}
	for i, d := range seq {
		b.Push(d)
		assert.LessOrEqual(t, b.Len(), b.Cap(), "after push %d", i)
	}
	assert.Equal(t, []Direction{Left, Left, Up}, b.Directions())
}

func TestBufferDefaultsCapacity(t *testing.T) {
	b := NewBuffer(0)
	assert.Equal(t, DefaultBufferCapacity, b.Cap())

	var zero Buffer
	for i := 0; i < 20; i++ {
		zero.Push(Up)
	}
	assert.Equal(t, DefaultBufferCapacity, zero.Len())
}

func TestBufferClear(t *testing.T) {
	b := NewBuffer(4)
	b.Push(Left)
	b.Push(Down)
	b.Clear()
	assert.Zero(t, b.Len())
	assert.Equal(t, 4, b.Cap())
}

func TestBestSuffixMatchPrefersLongest(t *testing.T) {
	c, err := NewCatalog(
		Definition{Name: "kick", Directions: []Direction{Right}},
		Definition{Name: "flip", Directions: []Direction{Up, Right}},
	)
	require.NoError(t, err)

	got, ok := c.BestSuffixMatch([]Direction{Left, Up, Right})
	require.True(t, ok)
	assert.Equal(t, "flip", got.Name)
}

func TestBestSuffixMatchTieBreaksOnCatalogOrder(t *testing.T) {
	c, err := NewCatalog(
		Definition{Name: "first", Directions: []Direction{Down, Left}},
		Definition{Name: "second", Directions: []Direction{Down, Left}},
	)
	require.NoError(t, err)

	got, ok := c.BestSuffixMatch([]Direction{Up, Down, Left})
	require.True(t, ok)
	assert.Equal(t, "first", got.Name)
}

func TestBestSuffixMatchNoMatch(t *testing.T) {
	c, err := NewCatalog(
		Definition{Name: "180", Directions: []Direction{Left, Right}},
		Definition{Name: "long", Directions: []Direction{Up, Up, Up, Up}},
	)
	require.NoError(t, err)

	_, ok := c.BestSuffixMatch([]Direction{Right, Left})
	assert.False(t, ok)
	_, ok = c.BestSuffixMatch([]Direction{Up, Up})
	assert.False(t, ok, "pattern longer than buffer")
	_, ok = c.BestSuffixMatch(nil)
	assert.False(t, ok)

	var nilCatalog *Catalog
	_, ok = nilCatalog.BestSuffixMatch([]Direction{Left})
	assert.False(t, ok)
}

func TestSingleDirectionIgnoresCombos(t *testing.T) {
	c, err := NewCatalog(
		Definition{Name: "180", Directions: []Direction{Left, Right}},
		Definition{Name: "kickflip", Directions: []Direction{Left}},
	)
	require.NoError(t, err)

	got, ok := c.SingleDirection(Left)
	require.True(t, ok)
	assert.Equal(t, "kickflip", got.Name)

	_, ok = c.SingleDirection(Right)
	assert.False(t, ok)
}

func TestNewCatalogRejectsEmptySequence(t *testing.T) {
	_, err := NewCatalog(Definition{Name: "nothing"})
	assert.ErrorIs(t, err, ErrInvalidTrick)
}

func TestLoadCatalog(t *testing.T) {
	doc := `
tricks:
  - name: "180"
    directions: [Left, right]
    animation: spin
    duration: 0.6
`
	c, err := LoadCatalog(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	got := c.Tricks()[0]
	assert.Equal(t, "180", got.Name)
	assert.Equal(t, []Direction{Left, Right}, got.Directions)
	assert.Equal(t, "spin", got.Animation)
	assert.InDelta(t, 0.6, got.Duration, 1e-9)
}

func TestLoadCatalogRejectsUnknownDirection(t *testing.T) {
	_, err := LoadCatalog(strings.NewReader("tricks:\n  - name: x\n    directions: [diagonal]\n"))
	assert.ErrorIs(t, err, ErrInvalidTrick)
}

func TestDefaultCatalogLoads(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)
	assert.Greater(t, c.Len(), 0)

	got, ok := c.BestSuffixMatch([]Direction{Up, Left, Right})
	require.True(t, ok)
	assert.Equal(t, "180", got.Name)
}

func TestLoadCatalogFile(t *testing.T) {
	c, err := LoadCatalogFile("tricks.yaml")
	require.NoError(t, err)

	def, err := DefaultCatalog()
	require.NoError(t, err)
	assert.Equal(t, def.Tricks(), c.Tricks())

	_, err = LoadCatalogFile("missing.yaml")
	assert.Error(t, err)
}
