package uid

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	value string
	err   error
}

func (g stubGenerator) Generate(context.Context) (string, error) { return g.value, g.err }

func TestNew_TableDriven(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		assertion func(UIDGenerator, error)
	}{
		{
			name: "uuidv7 by default",
			opts: Options{},
			assertion: func(gen UIDGenerator, err error) {
				require.NoError(t, err)
				id, err := NewUUID(context.Background(), gen)
				require.NoError(t, err)
				assert.Equal(t, uuid.Version(7), id.Version())
			},
		},
		{
			name: "snowflake ids are unique",
			opts: Options{Strategy: "SNOWFLAKE", NodeID: 3},
			assertion: func(gen UIDGenerator, err error) {
				require.NoError(t, err)
				seen := map[string]struct{}{}
				for i := 0; i < 100; i++ {
					id, err := gen.Generate(context.Background())
					require.NoError(t, err)
					seen[id] = struct{}{}
				}
				assert.Len(t, seen, 100)
			},
		},
		{
			name: "snowflake node out of range",
			opts: Options{Strategy: StrategySnowflake, NodeID: 5000},
			assertion: func(_ UIDGenerator, err error) {
				assert.ErrorContains(t, err, "failed to create snowflake node")
			},
		},
		{
			name: "unknown strategy",
			opts: Options{Strategy: "ulid"},
			assertion: func(_ UIDGenerator, err error) {
				assert.EqualError(t, err, `uid: unknown strategy "ulid"`)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gen, err := New(tc.opts)
			tc.assertion(gen, err)
		})
	}
}

func TestNewUUID_Errors(t *testing.T) {
	boom := errors.New("boom")

	_, err := NewUUID(context.Background(), stubGenerator{err: boom})
	assert.ErrorIs(t, err, boom)

	_, err = NewUUID(context.Background(), stubGenerator{value: "123"})
	assert.ErrorContains(t, err, "did not return a uuid")
}

func TestSnowflake_CanceledContext(t *testing.T) {
	gen, err := NewSnowflake(1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = gen.Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
