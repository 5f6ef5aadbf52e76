package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID 生成全局唯一ID，用于埋点事件
func GenID() int64 {
	return node.Generate().Int64()
}
