package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflowhq/leadflow/pkg/config"
)

func testLibrary() *Library {
	return NewLibrary(&config.FunnelsConfig{
		Assets: map[string]*config.AssetConfig{
			"welcome": {Kind: "audio", Path: "/audios/welcome.opus"},
			"result":  {Kind: "image", Path: "/images/result.jpg"},
			"checkout": {
				Kind:     "text",
				Template: "Here is your checkout link, {name}: {link}",
				Link:     "monthly",
			},
			"plain": {Kind: "text", Template: "No placeholders here."},
		},
		Aliases: map[string]string{"boasvindas": "welcome"},
		Links:   map[string]string{"monthly": "https://pay.example.com/monthly"},
	})
}

func TestLibraryResolve(t *testing.T) {
	lib := testLibrary()

	t.Run("audio asset returns its path", func(t *testing.T) {
		res, err := lib.Resolve("welcome", Vars{})
		require.NoError(t, err)
		assert.Equal(t, KindAudio, res.Kind)
		assert.Equal(t, "/audios/welcome.opus", res.Path)
	})

	t.Run("image asset returns its path", func(t *testing.T) {
		res, err := lib.Resolve("result", Vars{})
		require.NoError(t, err)
		assert.Equal(t, KindImage, res.Kind)
		assert.Equal(t, "/images/result.jpg", res.Path)
	})

	t.Run("alias resolves to canonical asset", func(t *testing.T) {
		res, err := lib.Resolve("boasvindas", Vars{})
		require.NoError(t, err)
		assert.Equal(t, "welcome", res.ID)
		assert.Equal(t, "/audios/welcome.opus", res.Path)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := lib.Resolve("nope", Vars{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestLibraryTemplateRendering(t *testing.T) {
	lib := testLibrary()

	t.Run("name and link bound", func(t *testing.T) {
		res, err := lib.Resolve("checkout", Vars{Name: "Maria"})
		require.NoError(t, err)
		assert.Equal(t, "Here is your checkout link, Maria: https://pay.example.com/monthly", res.Text)
	})

	t.Run("missing name degrades gracefully", func(t *testing.T) {
		res, err := lib.Resolve("checkout", Vars{})
		require.NoError(t, err)
		assert.Equal(t, "Here is your checkout link: https://pay.example.com/monthly", res.Text)
	})

	t.Run("template without placeholders unchanged", func(t *testing.T) {
		res, err := lib.Resolve("plain", Vars{Name: "Maria"})
		require.NoError(t, err)
		assert.Equal(t, "No placeholders here.", res.Text)
	})
}
