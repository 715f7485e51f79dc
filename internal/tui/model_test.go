//nolint:testpackage // Test needs access to unexported fields
package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// fakeTape replays a fixed list of updates.
type fakeTape struct {
	updates []*progrock.StatusUpdate
	closed  bool
}

func (f *fakeTape) Read() (*progrock.StatusUpdate, error) {
	if len(f.updates) == 0 {
		return nil, io.EOF
	}
	u := f.updates[0]
	f.updates = f.updates[1:]
	return u, nil
}

func (f *fakeTape) Close() error {
	f.closed = true
	return nil
}

func ptr(s string) *string { return &s }

func TestModel_TapeUpdate_AddsAndCompletesVertices(t *testing.T) {
	m := NewModel(&fakeTape{})

	_, cmd := m.Update(MsgTapeUpdate{Update: &progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{{Id: "1", Name: "demo@default/lib"}},
	}})
	assert.NotNil(t, cmd)
	require.Len(t, m.vertices, 1)
	assert.Equal(t, statusRunning, m.vertices[0].Status)

	m.Update(MsgTapeUpdate{Update: &progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{{Id: "1", Name: "demo@default/lib", Completed: timestamppb.Now()}},
	}})
	require.Len(t, m.vertices, 1)
	assert.Equal(t, statusCompleted, m.vertices[0].Status)
}

func TestModel_TapeUpdate_CachedAndFailed(t *testing.T) {
	m := NewModel(&fakeTape{})

	m.Update(MsgTapeUpdate{Update: &progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{
			{Id: "1", Name: "lib", Cached: true, Completed: timestamppb.Now()},
			{Id: "2", Name: "app", Completed: timestamppb.Now(), Error: ptr("exit status 1")},
		},
	}})

	require.Len(t, m.vertices, 2)
	assert.Equal(t, statusCached, m.vertices[0].Status)
	assert.Equal(t, statusFailed, m.vertices[1].Status)
	assert.Equal(t, "exit status 1", m.vertices[1].Error)
}

func TestModel_TapeEnded_Quits(t *testing.T) {
	m := NewModel(&fakeTape{})

	_, cmd := m.Update(MsgTapeEnded{})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_View_ShowsTailOfFailedOutput(t *testing.T) {
	m := NewModel(&fakeTape{})
	var out strings.Builder
	for i := range 15 {
		out.WriteString("line " + string(rune('a'+i)) + "\n")
	}

	m.Update(MsgTapeUpdate{Update: &progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{
			{Id: "1", Name: "lib", Completed: timestamppb.Now()},
			{Id: "2", Name: "app", Completed: timestamppb.Now(), Error: ptr("exit status 2")},
		},
		Logs: []*progrock.VertexLog{
			{Vertex: "1", Data: []byte("quiet\n")},
			{Vertex: "2", Data: []byte(out.String())},
		},
	}})

	view := m.View()

	assert.Contains(t, view, "✓")
	assert.Contains(t, view, "✗")
	assert.Contains(t, view, "lib")
	assert.NotContains(t, view, "quiet")
	assert.NotContains(t, view, "line e\n")
	assert.Contains(t, view, "line f")
	assert.Contains(t, view, "line o")
	assert.Contains(t, view, "exit status 2")
}

func TestModel_View_KeepsMostRecentWhenShort(t *testing.T) {
	m := NewModel(&fakeTape{})
	m.height = 2
	m.vertices = []VertexState{
		{ID: "1", Name: "first", Status: statusCompleted},
		{ID: "2", Name: "second", Status: statusCompleted},
		{ID: "3", Name: "third", Status: statusRunning},
	}

	view := m.View()

	assert.NotContains(t, view, "first")
	assert.Contains(t, view, "second")
	assert.Contains(t, view, "third")
}

func TestWaitForTape(t *testing.T) {
	update := &progrock.StatusUpdate{}
	tape := &fakeTape{updates: []*progrock.StatusUpdate{update}}

	assert.Equal(t, MsgTapeUpdate{Update: update}, WaitForTape(tape)())
	assert.Equal(t, MsgTapeEnded{}, WaitForTape(tape)())
}
