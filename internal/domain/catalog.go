package domain

import "strings"

// Placeholder hex codes written by older clients when the real colour was
// unknown. They are only trusted when they agree with the colour name.
const (
	HexBlack = "#000000"
	HexOther = "#CCCCCC"
)

// colorHexes is the single source of truth for backfilling ColorHex.
var colorHexes = map[string]string{
	"黑色":  "#000000",
	"白色":  "#FFFFFF",
	"灰色":  "#808080",
	"红色":  "#FF0000",
	"蓝色":  "#0000FF",
	"浅蓝色": "#ADD8E6",
	"绿色":  "#008000",
	"黄色":  "#FFFF00",
	"粉色":  "#FFC0CB",
	"紫色":  "#800080",
	"浅紫色": "#DDA0DD",
	"棕色":  "#A52A2A",
	"米色":  "#F5F5DC",
	"卡其色": "#C3B091",
	"驼色":  "#D2B48C",
	"军绿色": "#4B5320",
	"藏青色": "#1E3A5F",
	"其他":  "#CCCCCC",
}

// ColorHex returns the hex code for a colour name. Unknown or empty names
// resolve to HexBlack, so the result is never empty.
func ColorHex(name string) string {
	if hex, ok := colorHexes[strings.TrimSpace(name)]; ok {
		return hex
	}
	return HexBlack
}

// IsTrustedHex reports whether hex is a real colour for an item named color:
// non-empty, and not a placeholder that disagrees with the name. A
// placeholder on an item without a colour name is never trusted.
func IsTrustedHex(hex, color string) bool {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return false
	}
	if strings.EqualFold(hex, HexBlack) || strings.EqualFold(hex, HexOther) {
		color = strings.TrimSpace(color)
		return color != "" && strings.EqualFold(hex, ColorHex(color))
	}
	return true
}

// DefaultMainCategory is assumed when an item has no main category.
const DefaultMainCategory = "上衣"

// defaultSubCategories covers the current taxonomy and the main-category
// names used by earlier clients.
var defaultSubCategories = map[string]string{
	"上衣":  "T恤",
	"下装":  "长裤",
	"连衣裙": "长袖连衣裙",
	"内衣裤": "内衣",
	"运动服": "运动上衣",
	"套装":  "休闲套装",
	"鞋类":  "运动鞋",
	"包包类": "背包",
	"帽子类": "棒球帽",

	"外套": "大衣",
	"鞋":  "运动鞋",
	"包":  "双肩包",
}

// FallbackSubCategory is used for main categories without a mapping.
const FallbackSubCategory = "其他"

// DefaultSubCategory returns the subcategory assumed for mainCategory when
// none was recorded. It never returns an empty string.
func DefaultSubCategory(mainCategory string) string {
	if sub, ok := defaultSubCategories[strings.TrimSpace(orDefault(mainCategory, DefaultMainCategory))]; ok {
		return sub
	}
	return FallbackSubCategory
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
