package project

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	id      string
	saved   string
	loadErr error
	saveErr error
}

func (f *fakeStore) ProjectID() (string, error) { return f.id, f.loadErr }
func (f *fakeStore) SetProjectID(id string) error {
	f.saved = id
	return f.saveErr
}

type fakePrompter struct {
	answer string
	err    error
	asked  bool
}

func (f *fakePrompter) AskProjectID(ctx context.Context) (string, error) {
	f.asked = true
	return f.answer, f.err
}

func TestResolveConfigured(t *testing.T) {
	store := &fakeStore{id: "my-project"}
	prompt := &fakePrompter{}

	id, err := NewResolver(store, prompt).Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "my-project", id)
	assert.False(t, prompt.asked, "configured id must not trigger the setup flow")
}

func TestResolvePromptsWhenUnset(t *testing.T) {
	store := &fakeStore{}
	prompt := &fakePrompter{answer: "entered-project"}

	id, err := NewResolver(store, prompt).Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "entered-project", id)
	assert.Equal(t, "entered-project", store.saved, "entered id must be persisted")
}

func TestResolveTrimsPromptAnswer(t *testing.T) {
	store := &fakeStore{}
	prompt := &fakePrompter{answer: "  padded-project \n"}

	id, err := NewResolver(store, prompt).Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "padded-project", id)
}

func TestResolveMissingAfterSetupFlow(t *testing.T) {
	store := &fakeStore{}
	prompt := &fakePrompter{answer: ""}

	_, err := NewResolver(store, prompt).Resolve(context.Background())
	require.Error(t, err)

	var missing *MissingProjectError
	assert.True(t, errors.As(err, &missing))
	assert.Empty(t, store.saved, "nothing should be persisted without an answer")
}

func TestResolveStoreError(t *testing.T) {
	store := &fakeStore{loadErr: errors.New("disk gone")}

	_, err := NewResolver(store, &fakePrompter{}).Resolve(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, &MissingProjectError{})
}
