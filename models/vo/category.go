package vo

import "github.com/Xushengqwer/realestate_service/models/entities"

// CategoryVO 分类的响应数据结构
type CategoryVO struct {
	ID   uint64 `json:"id"`   // 分类ID
	Name string `json:"name"` // 分类名称
	Icon string `json:"icon"` // 图标（不透明文本）
}

// NewCategoryVOFromEntity 将分类实体转换为 VO，入参为 nil 时返回 nil。
func NewCategoryVOFromEntity(entity *entities.Category) *CategoryVO {
	if entity == nil {
		return nil
	}
	return &CategoryVO{
		ID:   entity.ID,
		Name: entity.Name,
		Icon: entity.Icon,
	}
}

// MapCategoriesToVOs 将分类实体列表转换为 VO 列表。
func MapCategoriesToVOs(categories []*entities.Category) []*CategoryVO {
	vos := make([]*CategoryVO, 0, len(categories))
	for _, c := range categories {
		if c == nil {
			continue
		}
		vos = append(vos, NewCategoryVOFromEntity(c))
	}
	return vos
}
