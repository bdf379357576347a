package vo

import (
	"testing"

	"github.com/Xushengqwer/realestate_service/models/entities"
)

func TestResolveMediaURL(t *testing.T) {
	base := "http://media.test/files"

	cases := []struct {
		name string
		path string
		want string
	}{
		{"空路径输出空串", "", ""},
		{"http 绝对地址透传", "http://cdn.test/a.jpg", "http://cdn.test/a.jpg"},
		{"https 绝对地址透传", "https://cdn.test/a.jpg", "https://cdn.test/a.jpg"},
		{"相对路径拼接", "properties/a.jpg", "http://media.test/files/properties/a.jpg"},
		{"前导斜杠归一化", "/properties/a.jpg", "http://media.test/files/properties/a.jpg"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveMediaURL(tc.path, base); got != tc.want {
				t.Errorf("ResolveMediaURL(%q) = %q, want %q", tc.path, got, tc.want)
			}
		})
	}

	// baseURL 带尾斜杠不应产生双斜杠
	if got := ResolveMediaURL("a.jpg", "http://media.test/files/"); got != "http://media.test/files/a.jpg" {
		t.Errorf("尾斜杠 baseURL 拼接结果不符: %q", got)
	}
}

func TestNewPropertyVOFromEntity(t *testing.T) {
	if NewPropertyVOFromEntity(nil, "", false) != nil {
		t.Fatal("nil 实体应转换为 nil")
	}

	t.Run("有属主且已预加载", func(t *testing.T) {
		owner := &entities.User{Username: "owner@test.local", Name: "业主甲"}
		owner.ID = 7
		ownerID := owner.ID
		property := &entities.Property{
			Name:      "江景公寓",
			ImagePath: "properties/river.jpg",
			AddedByID: &ownerID,
			AddedBy:   owner,
		}
		property.ID = 1

		propertyVO := NewPropertyVOFromEntity(property, "http://media.test", true)
		if propertyVO.AddedByUserID == nil || *propertyVO.AddedByUserID != 7 {
			t.Errorf("提交人ID不符: %v", propertyVO.AddedByUserID)
		}
		if propertyVO.AddedByUserName != "业主甲" {
			t.Errorf("提交人展示名不符: %q", propertyVO.AddedByUserName)
		}
		if !propertyVO.IsFavorite {
			t.Error("收藏标记应透传")
		}
		if propertyVO.ImagePath != "http://media.test/properties/river.jpg" {
			t.Errorf("图片路径应解析为绝对 URL: %q", propertyVO.ImagePath)
		}
	})

	t.Run("属主未预加载时至少透出ID", func(t *testing.T) {
		ownerID := uint64(7)
		property := &entities.Property{Name: "江景公寓", AddedByID: &ownerID}
		propertyVO := NewPropertyVOFromEntity(property, "", false)
		if propertyVO.AddedByUserID == nil || *propertyVO.AddedByUserID != 7 {
			t.Errorf("提交人ID应透出: %v", propertyVO.AddedByUserID)
		}
		if propertyVO.AddedByUserName != "" {
			t.Errorf("未预加载时展示名应为空串: %q", propertyVO.AddedByUserName)
		}
	})

	t.Run("无属主", func(t *testing.T) {
		propertyVO := NewPropertyVOFromEntity(&entities.Property{Name: "无主房源"}, "", false)
		if propertyVO.AddedByUserID != nil {
			t.Errorf("无属主时ID应为 null: %v", propertyVO.AddedByUserID)
		}
	})
}

func TestMapPropertiesToVOs(t *testing.T) {
	if got := MapPropertiesToVOs(nil, "", nil); got == nil || len(got) != 0 {
		t.Errorf("空列表应返回空切片而不是 nil: %v", got)
	}

	first := &entities.Property{Name: "房源一"}
	first.ID = 1
	second := &entities.Property{Name: "房源二"}
	second.ID = 2

	vos := MapPropertiesToVOs([]*entities.Property{first, nil, second}, "", map[uint64]struct{}{2: {}})
	if len(vos) != 2 {
		t.Fatalf("nil 元素应被跳过，got %d", len(vos))
	}
	if vos[0].IsFavorite {
		t.Error("未收藏的房源标记应为 false")
	}
	if !vos[1].IsFavorite {
		t.Error("已收藏的房源标记应为 true")
	}
}

func TestNewCommentVOFromEntityDisplayName(t *testing.T) {
	named := &entities.User{Username: "zhangsan@test.local", Name: "张三"}
	named.ID = 7
	unnamed := &entities.User{Username: "lisi@test.local"}
	unnamed.ID = 8

	withName := &entities.Comment{UserID: 7, PropertyID: 1, Content: "不错", User: named}
	fallback := &entities.Comment{UserID: 8, PropertyID: 1, Content: "还行", User: unnamed}
	orphan := &entities.Comment{UserID: 9, PropertyID: 1, Content: "路过"}

	if got := NewCommentVOFromEntity(withName).UserName; got != "张三" {
		t.Errorf("展示名应优先用 Name: %q", got)
	}
	if got := NewCommentVOFromEntity(fallback).UserName; got != "lisi@test.local" {
		t.Errorf("Name 为空时应回退 Username: %q", got)
	}
	if got := NewCommentVOFromEntity(orphan).UserName; got != "" {
		t.Errorf("用户未预加载时展示名应为空串: %q", got)
	}
}
