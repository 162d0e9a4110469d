package localfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadJSON(t *testing.T) {
	t.Run("object document", func(t *testing.T) {
		path := writeFixture(t, "base.json", `{"url":"b1","name":"Echo Base","garrison":{"personnel":{"troops":600}}}`)

		doc, err := ReadJSON(path)
		require.NoError(t, err)

		obj, ok := doc.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Echo Base", obj["name"])

		garrison := obj["garrison"].(map[string]any)
		personnel := garrison["personnel"].(map[string]any)
		assert.Equal(t, 600.0, personnel["troops"])
	})

	t.Run("array document", func(t *testing.T) {
		path := writeFixture(t, "planets.json", `[{"name":"Hoth"},{"name":"Dagobah"}]`)

		doc, err := ReadJSON(path)
		require.NoError(t, err)

		list, ok := doc.([]any)
		require.True(t, ok)
		assert.Len(t, list, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadJSON(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("malformed body", func(t *testing.T) {
		path := writeFixture(t, "bad.json", `{broken`)

		_, err := ReadJSON(path)

		var decErr *DecodeError
		require.ErrorAs(t, err, &decErr)
		assert.Equal(t, path, decErr.Path)
	})
}

func TestReadCSV(t *testing.T) {
	t.Run("header mapped rows", func(t *testing.T) {
		path := writeFixture(t, "craft.csv",
			"url,name,MGLT,armament\n"+
				"s1,X-wing,100,\"laser cannons, proton torpedoes\"\n"+
				"s2,GR-75 medium transport,20,twin laser cannons\n")

		rows, err := ReadCSV(path, ',')
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, "X-wing", rows[0]["name"])
		assert.Equal(t, "100", rows[0]["MGLT"])
		assert.Equal(t, "laser cannons, proton torpedoes", rows[0]["armament"])
		assert.Equal(t, "s2", rows[1]["url"])
	})

	t.Run("alternate delimiter", func(t *testing.T) {
		path := writeFixture(t, "craft.csv", "url;name\ns1;X-wing\n")

		rows, err := ReadCSV(path, ';')
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "X-wing", rows[0]["name"])
	})

	t.Run("header only", func(t *testing.T) {
		path := writeFixture(t, "empty.csv", "url,name\n")

		rows, err := ReadCSV(path, ',')
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFixture(t, "empty.csv", "")

		_, err := ReadCSV(path, ',')

		var decErr *DecodeError
		require.ErrorAs(t, err, &decErr)
	})

	t.Run("ragged rows", func(t *testing.T) {
		path := writeFixture(t, "ragged.csv", "url,name\ns1,X-wing,extra\n")

		_, err := ReadCSV(path, ',')

		var decErr *DecodeError
		require.ErrorAs(t, err, &decErr)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadCSV(filepath.Join(t.TempDir(), "absent.csv"), ',')
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}
