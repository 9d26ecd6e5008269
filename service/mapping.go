package service

import (
	"github.com/Xushengqwer/report_service/models/entities"
	"github.com/Xushengqwer/report_service/models/vo"
)

func mapPostsWithRelations(posts []*entities.Post) []*vo.PostWithRelationsVO {
	out := make([]*vo.PostWithRelationsVO, 0, len(posts))
	for _, p := range posts {
		if p == nil {
			continue
		}
		out = append(out, vo.MapPostWithRelationsToVO(p))
	}
	return out
}
