package progrock_test

import (
	"context"
	"io"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vito "github.com/vito/progrock"
	"go.trai.ch/cairn/internal/adapters/telemetry/progrock"
)

func TestStream_DeliversRecordedVertices(t *testing.T) {
	stream := progrock.NewStream()
	recorder := progrock.NewRecorder(stream)

	_, v := recorder.Record(context.Background(), "demo@default/app")
	_, err := v.Stdout().Write([]byte("cc -c main.c\n"))
	require.NoError(t, err)
	v.Complete(nil)
	require.NoError(t, recorder.Close())

	names := map[string]bool{}
	var logs []byte
	for {
		update, err := stream.Read()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		for _, vertex := range update.Vertexes {
			names[vertex.Name] = true
		}
		for _, l := range update.Logs {
			logs = append(logs, l.Data...)
		}
	}

	assert.True(t, names["demo@default/app"])
	assert.Equal(t, "cc -c main.c\n", string(logs))
}

func TestStream_ReadBlocksUntilWrite(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		stream := progrock.NewStream()
		got := make(chan *vito.StatusUpdate, 1)

		go func() {
			update, _ := stream.Read()
			got <- update
		}()

		synctest.Wait()
		assert.Empty(t, got)

		want := &vito.StatusUpdate{}
		require.NoError(t, stream.WriteStatus(want))
		assert.Same(t, want, <-got)
	})
}

func TestStream_DropsWritesAfterClose(t *testing.T) {
	stream := progrock.NewStream()
	queued := &vito.StatusUpdate{}
	require.NoError(t, stream.WriteStatus(queued))
	require.NoError(t, stream.Close())
	require.NoError(t, stream.WriteStatus(&vito.StatusUpdate{}))

	update, err := stream.Read()
	require.NoError(t, err)
	assert.Same(t, queued, update)

	_, err = stream.Read()
	assert.ErrorIs(t, err, io.EOF)
}
