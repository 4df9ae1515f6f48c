package mail

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRegistry_RenderPasswordReset(t *testing.T) {
	registry, err := NewTemplateRegistry()
	require.NoError(t, err)

	subject, body, err := registry.Render(TplPasswordReset, TemplateData{
		"ResetURL": "http://127.0.0.1:8000/reset_password/abc.def.ghi",
	})
	require.NoError(t, err)

	assert.Equal(t, "Slaptažodžio atnaujinimo užklausa", subject)
	assert.Contains(t, body, "http://127.0.0.1:8000/reset_password/abc.def.ghi")
	assert.Contains(t, body, "nieko nedarykite")
}

func TestTemplateRegistry_UnknownTemplate(t *testing.T) {
	registry, err := NewTemplateRegistry()
	require.NoError(t, err)

	_, _, err = registry.Render("no_such_template", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTemplateNotFound))
}
