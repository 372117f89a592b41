package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	utils "github.com/minaorangina/crazycircus/internal"
	"github.com/minaorangina/crazycircus/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse(t *testing.T) {
	t.Run("animals then orders", func(t *testing.T) {
		cfg, err := Parse(strings.NewReader("LION OURS ELEPHANT\nKI LO SO NI MA\n"))

		utils.AssertNoError(t, err)
		utils.AssertDeepEqual(t, cfg.Animals, []string{"LION", "OURS", "ELEPHANT"})
		utils.AssertDeepEqual(t, cfg.Orders, []string{"KI", "LO", "SO", "NI", "MA"})
		utils.AssertDeepEqual(t, cfg.Tokens(), utils.Tokens("LION", "OURS", "ELEPHANT"))
	})

	t.Run("extra whitespace and a missing last newline", func(t *testing.T) {
		cfg, err := Parse(strings.NewReader("  LION\tOURS  \r\nKI  SO NI"))

		utils.AssertNoError(t, err)
		utils.AssertDeepEqual(t, cfg.Animals, []string{"LION", "OURS"})
		utils.AssertDeepEqual(t, cfg.Orders, []string{"KI", "SO", "NI"})
	})

	t.Run("anything past ten is ignored", func(t *testing.T) {
		cfg, err := Parse(strings.NewReader("a b c d e f g h i j k l\nKI KI KI KI KI KI KI KI KI KI LO\nignored\n"))

		utils.AssertNoError(t, err)
		utils.AssertEqual(t, len(cfg.Animals), 10)
		utils.AssertEqual(t, cfg.Animals[9], "j")
		utils.AssertEqual(t, len(cfg.Orders), 10)
	})

	t.Run("no orders line", func(t *testing.T) {
		cfg, err := Parse(strings.NewReader("LION OURS\n"))

		utils.AssertNoError(t, err)
		assert.Empty(t, cfg.Orders)
		assert.True(t, errors.Is(cfg.Validate(), ErrInvalidConfig))
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := Parse(strings.NewReader(""))
		assert.True(t, errors.Is(err, ErrEmptyConfig))
	})
}

func TestLoad(t *testing.T) {
	t.Run("crazy.cfg", func(t *testing.T) {
		path := writeFile(t, "crazy.cfg", "LION OURS ELEPHANT\nKI LO SO\n")

		cfg, err := Load(path)

		utils.AssertNoError(t, err)
		utils.AssertNoError(t, cfg.Validate())
		set, err := cfg.OrderSet()
		utils.AssertNoError(t, err)
		utils.AssertDeepEqual(t, set.Codes(), []order.Code{order.KI, order.LO, order.SO})
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "circus.yaml", "animals: [LION, OURS, ELEPHANT]\norders:\n  - NI\n  - MA\n  - SO\n")

		cfg, err := Load(path)

		utils.AssertNoError(t, err)
		utils.AssertDeepEqual(t, cfg.Animals, []string{"LION", "OURS", "ELEPHANT"})
		utils.AssertDeepEqual(t, cfg.Orders, []string{"NI", "MA", "SO"})
	})

	t.Run("broken yaml", func(t *testing.T) {
		path := writeFile(t, "circus.yml", "animals: [LION\n")

		_, err := Load(path)
		utils.AssertErrored(t, err)
		assert.Contains(t, err.Error(), "circus.yml")
	})

	t.Run("empty yaml", func(t *testing.T) {
		path := writeFile(t, "circus.yml", "")

		_, err := Load(path)
		assert.True(t, errors.Is(err, ErrEmptyConfig))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.cfg"))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestValidate(t *testing.T) {
	animals := []string{"LION", "OURS", "ELEPHANT"}
	orders := []string{"KI", "LO", "SO"}

	valid := []Config{
		{Animals: animals, Orders: orders},
		{Animals: []string{"A", "B"}, Orders: []string{"KI", "LO", "SO", "NI", "MA"}},
		{Animals: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}, Orders: []string{"KI", "KI", "LO", "SO"}},
	}
	for _, cfg := range valid {
		cfg := cfg
		utils.AssertNoError(t, cfg.Validate())
	}

	invalid := []struct {
		name string
		cfg  Config
		want string
	}{
		{"one animal", Config{Animals: []string{"LION"}, Orders: orders}, "need 2 to 10 animals, got 1"},
		{"eleven animals", Config{Animals: strings.Fields("a b c d e f g h i j k"), Orders: orders}, "got 11"},
		{"duplicate animal", Config{Animals: []string{"LION", "LION"}, Orders: orders}, "animal LION appears twice"},
		{"empty animal", Config{Animals: []string{"LION", " "}, Orders: orders}, "empty animal name"},
		{"two orders", Config{Animals: animals, Orders: []string{"KI", "LO"}}, "at least 3 different orders, got 2"},
		{"duplicates do not count", Config{Animals: animals, Orders: []string{"KI", "KI", "LO"}}, "got 2"},
		{"unknown order", Config{Animals: animals, Orders: []string{"KI", "LO", "XX"}}, "order XX does not exist"},
		{"too many orders", Config{Animals: animals, Orders: strings.Fields("KI KI KI KI KI KI KI KI LO SO NI")}, "at most 10 orders"},
	}

	for _, c := range invalid {
		t.Run(c.name, func(t *testing.T) {
			err := c.cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
			assert.Contains(t, err.Error(), c.want)
		})
	}

	t.Run("unknown orders are also malformed sequences", func(t *testing.T) {
		cfg := Config{Animals: animals, Orders: []string{"KI", "LO", "ki"}}
		assert.True(t, errors.Is(cfg.Validate(), order.ErrMalformed))
	})
}
