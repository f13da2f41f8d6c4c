package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameRoundTrip(t *testing.T) {
	for _, id := range All() {
		t.Run(id.Name(), func(t *testing.T) {
			got, ok := ByName(id.Name())
			require.True(t, ok)
			assert.Equal(t, id, got)
			assert.Equal(t, ColorsFor(id), ColorsFor(got))
		})
	}
}

func TestAllDisplayOrder(t *testing.T) {
	assert.Equal(t, []ID{GruvboxDark, CatppuccinMocha, Monokai, Nord, TokyoNight}, All())
	assert.Equal(t, []string{"GruvboxDark", "CatppuccinMocha", "Monokai", "Nord", "TokyoNight"}, Names())

	ids := All()
	ids[0] = Custom
	assert.Equal(t, GruvboxDark, All()[0], "All must return a copy")
}

func TestByNameUnknown(t *testing.T) {
	for _, name := range []string{"", "nord", "NORD", "Solarized", "Custom", " Nord"} {
		id, ok := ByName(name)
		assert.False(t, ok, "name %q", name)
		assert.Equal(t, Custom, id)
	}
}

func TestColorsForBuiltIns(t *testing.T) {
	for _, id := range All() {
		b := ColorsFor(id)
		assert.Equal(t, id.Name(), b.ActivePreset)
		assert.True(t, b.Foreground.Valid(), "%s foreground", id)
		assert.True(t, b.Background.Valid(), "%s background", id)
		assert.Nil(t, b.BackgroundOpacity)
		for i, c := range b.Palette {
			assert.True(t, c.Valid(), "%s color%d = %q", id, i, c)
		}
	}
}

func TestColorsForCustom(t *testing.T) {
	b := ColorsFor(Custom)
	assert.True(t, b.IsEmpty())
	assert.False(t, Custom.BuiltIn())
	assert.Equal(t, "Custom", Custom.Name())
}

func TestNordColors(t *testing.T) {
	b := ColorsFor(Nord)
	assert.Equal(t, "rgba(46, 52, 64, 1.0)", string(b.Background))
	assert.Equal(t, "rgba(216, 222, 233, 1.0)", string(b.Foreground))
	assert.Equal(t, "rgba(236, 239, 244, 1.0)", string(b.Palette[15]))
}

func TestResolve(t *testing.T) {
	id, ok := Resolve(ColorsFor(Monokai))
	require.True(t, ok)
	assert.Equal(t, Monokai, id)

	_, ok = Resolve(ColorsFor(Custom))
	assert.False(t, ok)
}
