package manifest

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	luckytemplate "github.com/mdwagner/lucky-template"
)

func TestRegister_CustomGenerator(t *testing.T) {
	t.Parallel()

	Register("shout", func(args map[string]string) (luckytemplate.Source, error) {
		text := strings.ToUpper(args["text"])
		return luckytemplate.SourceFunc(func(w io.Writer) error {
			_, err := io.WriteString(w, text)
			return err
		}), nil
	})

	src, err := newGeneratorSource("shout", map[string]string{"text": "hello"})
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, src.WriteContent(&sb))
	assert.Equal(t, "HELLO", sb.String())
}

func TestNewGeneratorSource_Unregistered(t *testing.T) {
	t.Parallel()

	_, err := newGeneratorSource("no-such-generator", nil)
	assert.ErrorContains(t, err, "no generator")
}

// TestRegister_Replaces tests that re-registering a name swaps the factory.
func TestRegister_Replaces(t *testing.T) {
	t.Parallel()

	name := "replace-me"
	Register(name, func(map[string]string) (luckytemplate.Source, error) {
		return luckytemplate.String("first"), nil
	})
	Register(name, func(map[string]string) (luckytemplate.Source, error) {
		return luckytemplate.String("second"), nil
	})

	src, err := newGeneratorSource(name, nil)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, src.WriteContent(&sb))
	assert.Equal(t, "second", sb.String())
}
