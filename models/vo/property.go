package vo

import (
	"time"

	"github.com/Xushengqwer/go-common/models/enums"

	"github.com/Xushengqwer/realestate_service/models/entities"
)

// PropertyVO 定义了房源的响应数据结构
// - ImagePath 已解析为绝对 URL（无图为空串）
// - IsFavorite 相对于请求方身份计算，匿名恒为 false
// - AddedByUserID/AddedByUserName 在房源无属主时分别为 null/空串
type PropertyVO struct {
	ID              uint64                   `json:"id"`                // 房源ID
	Name            string                   `json:"name"`              // 房源名称
	ImagePath       string                   `json:"image_path"`        // 图片绝对 URL，无图为空串
	Type            string                   `json:"type"`              // 房源类型
	Location        string                   `json:"location"`          // 位置
	Price           float64                  `json:"price"`             // 价格
	TransactionType entities.TransactionType `json:"transaction_type"`  // 交易类型 sale/rent
	IsFeatured      bool                     `json:"is_featured"`       // 精选标记
	Status          enums.Status             `json:"status"`            // 审核状态，0=待审核, 1=已审核, 2=拒绝
	Category        *CategoryVO              `json:"category"`          // 所属分类的完整表示
	IsFavorite      bool                     `json:"is_favorite"`       // 请求方是否已收藏
	AddedByUserID   *uint64                  `json:"added_by_user_id"`  // 提交人ID，无属主为 null
	AddedByUserName string                   `json:"added_by_user_name"` // 提交人展示名，无属主为空串
	CreatedAt       time.Time                `json:"created_at"`        // 创建时间
	UpdatedAt       time.Time                `json:"updated_at"`        // 更新时间
}

// NewPropertyVOFromEntity 将房源实体转换为 VO。
// - mediaBaseURL 用于把相对图片路径解析为绝对 URL
// - isFavorite 由调用方针对请求身份预先算好（列表场景批量查询收藏关系）
func NewPropertyVOFromEntity(entity *entities.Property, mediaBaseURL string, isFavorite bool) *PropertyVO {
	if entity == nil {
		return nil
	}
	propertyVO := &PropertyVO{
		ID:              entity.ID,
		Name:            entity.Name,
		ImagePath:       ResolveMediaURL(entity.ImagePath, mediaBaseURL),
		Type:            entity.Type,
		Location:        entity.Location,
		Price:           entity.Price,
		TransactionType: entity.TransactionType,
		IsFeatured:      entity.IsFeatured,
		Status:          entity.Status,
		Category:        NewCategoryVOFromEntity(entity.Category),
		IsFavorite:      isFavorite,
		CreatedAt:       entity.CreatedAt,
		UpdatedAt:       entity.UpdatedAt,
	}
	if entity.AddedBy != nil {
		id := entity.AddedBy.ID
		propertyVO.AddedByUserID = &id
		propertyVO.AddedByUserName = entity.AddedBy.DisplayName()
	} else if entity.AddedByID != nil {
		// 属主已被删除或未预加载，至少透出ID
		id := *entity.AddedByID
		propertyVO.AddedByUserID = &id
	}
	return propertyVO
}

// MapPropertiesToVOs 将房源实体列表转换为 VO 列表。
// - favoriteSet 是请求身份已收藏的房源ID集合，匿名请求传 nil
func MapPropertiesToVOs(properties []*entities.Property, mediaBaseURL string, favoriteSet map[uint64]struct{}) []*PropertyVO {
	if len(properties) == 0 {
		return []*PropertyVO{} // 返回空切片而不是nil，便于前端处理
	}
	vos := make([]*PropertyVO, 0, len(properties))
	for _, property := range properties {
		if property == nil {
			continue
		}
		_, isFavorite := favoriteSet[property.ID]
		vos = append(vos, NewPropertyVOFromEntity(property, mediaBaseURL, isFavorite))
	}
	return vos
}

// ListPropertiesPageVO 定义管理员按条件分页查询房源的响应结构体
type ListPropertiesPageVO struct {
	Properties []*PropertyVO `json:"properties"` // 房源列表
	Total      int64         `json:"total"`      // 符合条件的总记录数
}
