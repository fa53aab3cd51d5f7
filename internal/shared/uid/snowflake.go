package uid

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

var _ UIDGenerator = (*snowflakeGenerator)(nil)

// snowflakeGenerator yields base-36 ids. Two gateway replicas signing with
// the same consumer key need distinct node ids or their nonces may collide.
type snowflakeGenerator struct {
	node *snowflake.Node
}

func NewSnowflake(nodeID int64) (UIDGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("uid: failed to create snowflake node %d: %w", nodeID, err)
	}
	return &snowflakeGenerator{node: node}, nil
}

// Generate is safe for concurrent use; the node serializes internally.
func (g *snowflakeGenerator) Generate(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return g.node.Generate().Base36(), nil
}
