package profile

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"xatsw/internal/prompt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePrompter feeds answers through the validator like a real session.
type fakePrompter struct {
	answers    []string
	err        error
	suggestion string
	rejected   []string
	calls      int
}

func (f *fakePrompter) Line(_ string, suggestion string, validate prompt.ValidateFunc) (string, error) {
	f.calls++
	f.suggestion = suggestion
	if f.err != nil {
		return "", f.err
	}
	for _, a := range f.answers {
		if validate != nil {
			if err := validate(a); err != nil {
				f.rejected = append(f.rejected, a)
				continue
			}
		}
		return a, nil
	}
	return "", prompt.ErrAborted
}

func (f *fakePrompter) Confirm(string) (bool, error) { return false, nil }

func TestValidateExplicit(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"save1", false},
		{"my save.sol", false},
		{"", true},
		{".", true},
		{"..", true},
		{"../escape", true},
		{"a/b", true},
		{string(filepath.Separator) + "abs", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExplicit(tt.name)
			if tt.wantErr {
				var invalid *InvalidNameError
				assert.ErrorAs(t, err, &invalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewValidator(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "taken"), []byte{1}, 0644))
	validate := NewValidator(dir)

	assert.NoError(t, validate("fresh"))
	assert.ErrorContains(t, validate("taken"), "already exists")
	assert.ErrorContains(t, validate("a"+string(filepath.Separator)+"b"), "path separator")
}

func TestNamer_ExplicitNameSkipsPrompt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "save1"), []byte{1}, 0644))

	p := &fakePrompter{}
	n := NewNamer(p)

	// Existing names are fine when given explicitly.
	got, err := n.Resolve("save1", dir)
	require.NoError(t, err)
	assert.Equal(t, "save1", got)
	assert.Equal(t, 0, p.calls)

	_, err = n.Resolve("../save1", dir)
	assert.Error(t, err)
	assert.Equal(t, 0, p.calls)
}

func TestNamer_PromptValidation(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "taken"), []byte{1}, 0644))

	p := &fakePrompter{answers: []string{"sub/dir", "taken", "fresh"}}
	n := NewNamer(p)

	got, err := n.Resolve("", dir)
	require.NoError(t, err)
	assert.Equal(t, "fresh", got)
	assert.Equal(t, []string{"sub/dir", "taken"}, p.rejected)
}

func TestNamer_InjectedValidator(t *testing.T) {
	p := &fakePrompter{answers: []string{"short", "long-enough"}}
	n := NewNamer(p)
	n.NewValidator = func(string) prompt.ValidateFunc {
		return func(s string) error {
			if len(s) < 6 {
				return errors.New("too short")
			}
			return nil
		}
	}

	got, err := n.Resolve("", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "long-enough", got)
	assert.Equal(t, []string{"short"}, p.rejected)
}

func TestNamer_PromptFailureAborts(t *testing.T) {
	p := &fakePrompter{err: prompt.ErrAborted}
	_, err := NewNamer(p).Resolve("", t.TempDir())
	assert.ErrorIs(t, err, prompt.ErrAborted)
}

func TestNamer_NoPrompter(t *testing.T) {
	_, err := NewNamer(nil).Resolve("", t.TempDir())
	assert.Error(t, err)
}

func TestNamer_PassesSuggestion(t *testing.T) {
	p := &fakePrompter{answers: []string{"x"}}
	n := NewNamer(p)
	n.Suggestion = "save-1"

	_, err := n.Resolve("", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "save-1", p.suggestion)
}

func TestRenderSuggestion(t *testing.T) {
	got, err := RenderSuggestion("", SuggestionData{})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = RenderSuggestion(DefaultSuggestionTemplate, SuggestionData{})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^save-\d{8}-\d{6}$`), got)

	got, err = RenderSuggestion(`{{ .Storage | upper }}-{{ "x" | repeat 2 }}`, SuggestionData{Storage: "main"})
	require.NoError(t, err)
	assert.Equal(t, "MAIN-xx", got)

	_, err = RenderSuggestion("{{ .Nope", SuggestionData{})
	assert.Error(t, err)
}
