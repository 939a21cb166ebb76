package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.revet.dev/revet/cmd/revet/commands"
	"go.revet.dev/revet/internal/build"
	"go.revet.dev/revet/internal/core/domain"
)

type mockApp struct {
	listFunc   func(ctx context.Context, prefix string) []string
	showFunc   func(ctx context.Context, name string) (*domain.ProjectState, error)
	groupsFunc func(ctx context.Context) []string
	watchFunc  func(ctx context.Context) error
}

func (m *mockApp) ListProjects(ctx context.Context, prefix string) []string {
	if m.listFunc != nil {
		return m.listFunc(ctx, prefix)
	}
	return nil
}

func (m *mockApp) ShowProject(ctx context.Context, name string) (*domain.ProjectState, error) {
	if m.showFunc != nil {
		return m.showFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockApp) RelevantGroups(ctx context.Context) []string {
	if m.groupsFunc != nil {
		return m.groupsFunc(ctx)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx)
	}
	return nil
}

func execute(t *testing.T, app commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(app)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_ProjectsList(t *testing.T) {
	t.Run("prints every project", func(t *testing.T) {
		mock := &mockApp{
			listFunc: func(_ context.Context, prefix string) []string {
				assert.Empty(t, prefix)
				return []string{"infra/ci", "tools"}
			},
		}

		out, err := execute(t, mock, "projects", "list")
		require.NoError(t, err)
		assert.Equal(t, "infra/ci\ntools\n", out)
	})

	t.Run("passes the prefix flag", func(t *testing.T) {
		var capturedPrefix string
		mock := &mockApp{
			listFunc: func(_ context.Context, prefix string) []string {
				capturedPrefix = prefix
				return nil
			},
		}

		_, err := execute(t, mock, "projects", "list", "--prefix", "infra/")
		require.NoError(t, err)
		assert.Equal(t, "infra/", capturedPrefix)
	})
}

func TestCommands_ProjectsShow(t *testing.T) {
	t.Run("prints the project state", func(t *testing.T) {
		mock := &mockApp{
			showFunc: func(_ context.Context, name string) (*domain.ProjectState, error) {
				assert.Equal(t, "demo", name)
				return domain.NewProjectState(&domain.ProjectConfig{
					Name:     "demo",
					Parent:   "root",
					Revision: 42,
					Groups: []domain.GroupRef{
						{UUID: "c2f1a9b0-6d2e-4b3a-9c8d-1e2f3a4b5c6d", Name: "admins"},
					},
				}), nil
			},
		}

		out, err := execute(t, mock, "projects", "show", "demo")
		require.NoError(t, err)
		assert.Contains(t, out, "name:     demo")
		assert.Contains(t, out, "parent:   root")
		assert.Contains(t, out, "revision: 42")
		assert.Contains(t, out, "admins")
	})

	t.Run("returns the lookup error", func(t *testing.T) {
		mock := &mockApp{
			showFunc: func(_ context.Context, _ string) (*domain.ProjectState, error) {
				return nil, errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "projects", "show", "demo")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("requires a project argument", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "projects", "show")
		require.Error(t, err)
	})
}

func TestCommands_ProjectsGroups(t *testing.T) {
	mock := &mockApp{
		groupsFunc: func(_ context.Context) []string {
			return []string{"uuid-a", "uuid-b"}
		},
	}

	out, err := execute(t, mock, "projects", "groups")
	require.NoError(t, err)
	assert.Equal(t, "uuid-a\nuuid-b\n", out)
}

func TestCommands_Watch(t *testing.T) {
	called := false
	mock := &mockApp{
		watchFunc: func(_ context.Context) error {
			called = true
			return nil
		},
	}

	_, err := execute(t, mock, "watch")
	require.NoError(t, err)
	assert.True(t, called)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}
