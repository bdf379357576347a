package vo

import (
	"time"

	"github.com/Xushengqwer/realestate_service/models/entities"
)

// CommentVO 定义了评论的响应数据结构
type CommentVO struct {
	ID         uint64    `json:"id"`          // 评论ID
	UserID     uint64    `json:"user"`        // 评论人用户ID
	PropertyID uint64    `json:"property"`    // 所属房源ID
	Content    string    `json:"content"`     // 评论内容
	CreatedAt  time.Time `json:"created_at"`  // 创建时间
	UserName   string    `json:"user_name"`   // 评论人展示名（Name 为空时回退 Username）
}

// NewCommentVOFromEntity 将评论实体转换为 VO。
func NewCommentVOFromEntity(entity *entities.Comment) *CommentVO {
	if entity == nil {
		return nil
	}
	commentVO := &CommentVO{
		ID:         entity.ID,
		UserID:     entity.UserID,
		PropertyID: entity.PropertyID,
		Content:    entity.Content,
		CreatedAt:  entity.CreatedAt,
	}
	if entity.User != nil {
		commentVO.UserName = entity.User.DisplayName()
	}
	return commentVO
}

// MapCommentsToVOs 将评论实体列表转换为 VO 列表。
func MapCommentsToVOs(comments []*entities.Comment) []*CommentVO {
	if len(comments) == 0 {
		return []*CommentVO{}
	}
	vos := make([]*CommentVO, 0, len(comments))
	for _, comment := range comments {
		if comment == nil {
			continue
		}
		vos = append(vos, NewCommentVOFromEntity(comment))
	}
	return vos
}
