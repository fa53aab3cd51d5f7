package uid

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

var _ UIDGenerator = (*uuidv7Generator)(nil)

type uuidv7Generator struct{}

func NewUUIDv7() (UIDGenerator, error) {
	return &uuidv7Generator{}, nil
}

func (g *uuidv7Generator) Generate(ctx context.Context) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("uid: failed to generate uuid v7: %w", err)
	}
	return id.String(), nil
}

// NewUUID draws an id from gen and parses it. gen must produce UUIDs.
func NewUUID(ctx context.Context, gen UIDGenerator) (uuid.UUID, error) {
	raw, err := gen.Generate(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("uid: generator did not return a uuid: %w", err)
	}
	return id, nil
}
