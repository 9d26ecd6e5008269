package entities

import (
	"github.com/google/uuid"
)

// newID 为尚未指定主键的记录生成 UUID 主键。
func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}
