// Package catalog defines the closed sets of platforms and content
// categories the engine knows about, together with their display names and
// presentation ordering.
//
// Platforms and categories are typed strings whose values are the external
// display names. All reference tables elsewhere in the engine are keyed on
// these types, so an unvalidated string cannot reach a table lookup without
// first passing through ParsePlatform or ParseCategory.
package catalog

import (
	"fmt"
	"sort"
)

// Platform identifies one of the supported social platforms.
type Platform string

// Supported platforms. Douyin is the reference platform: base price curves
// are calibrated against it and its coefficient is fixed at 1.0.
const (
	PlatformDouyin      Platform = "抖音"
	PlatformXiaohongshu Platform = "小红书"
	PlatformBilibili    Platform = "B站"
	PlatformKuaishou    Platform = "快手"
)

// Category identifies one of the 32 supported content categories.
type Category string

// Supported content categories.
const (
	CategoryAgriculture   Category = "三农"
	CategoryACG           Category = "二次元"
	CategoryHealth        Category = "健康"
	CategoryHobbies       Category = "兴趣爱好"
	CategoryOther         Category = "其他"
	CategoryMedical       Category = "医疗健康"
	CategoryEntertainment Category = "娱乐"
	CategoryHomeDecor     Category = "家居家装"
	CategoryComedy        Category = "幽默搞笑"
	CategoryFilmVariety   Category = "影视综艺"
	CategoryEmotions      Category = "情感心理"
	CategoryTalent        Category = "才艺技能"
	CategoryEducation     Category = "教育培训"
	CategoryCulture       Category = "文化"
	CategoryTravel        Category = "旅游"
	CategoryNews          Category = "时事资讯"
	CategoryFashion       Category = "时尚"
	CategoryParenting     Category = "母婴育儿"
	CategoryAutomotive    Category = "汽车"
	CategoryGaming        Category = "游戏"
	CategoryLifestyle     Category = "生活"
	CategoryScience       Category = "科学科普"
	CategoryTech          Category = "科技"
	CategoryMakeup        Category = "美妆"
	CategoryPersonalCare  Category = "美容个护"
	CategoryFood          Category = "美食"
	CategoryCareer        Category = "职场"
	CategoryPets          Category = "萌宠"
	CategoryFinance       Category = "财经"
	CategoryFitness       Category = "运动健身"
	CategoryMusic         Category = "音乐"
	CategoryLooks         Category = "颜值"
)

// ReferencePlatform is the platform all base curves are calibrated against.
const ReferencePlatform = PlatformDouyin

// CelebrityCategory is the only category with a celebrity price bonus.
const CelebrityCategory = CategoryFilmVariety

// platformOrder fixes the presentation order of platforms.
var platformOrder = []Platform{
	PlatformDouyin,
	PlatformXiaohongshu,
	PlatformBilibili,
	PlatformKuaishou,
}

// definitionOrder lists every category in internal definition order. The
// first entry doubles as the category whose curve breakpoints are exposed
// for chart annotation.
var definitionOrder = []Category{
	CategoryAgriculture, CategoryACG, CategoryHealth, CategoryHobbies,
	CategoryOther, CategoryMedical, CategoryEntertainment, CategoryHomeDecor,
	CategoryComedy, CategoryFilmVariety, CategoryEmotions, CategoryTalent,
	CategoryEducation, CategoryCulture, CategoryTravel, CategoryNews,
	CategoryFashion, CategoryParenting, CategoryAutomotive, CategoryGaming,
	CategoryLifestyle, CategoryScience, CategoryTech, CategoryMakeup,
	CategoryPersonalCare, CategoryFood, CategoryCareer, CategoryPets,
	CategoryFinance, CategoryFitness, CategoryMusic, CategoryLooks,
}

// pinyinKeys maps each category name to its phonetic transcription. The
// presentation order of categories sorts on these keys byte-wise; the keys
// are carried over from the original pricing reference data verbatim,
// including the irregular casing on 科学科普.
var pinyinKeys = map[Category]string{
	CategoryAgriculture:   "sannong",
	CategoryACG:           "erciyan",
	CategoryHealth:        "jiankang",
	CategoryHobbies:       "xingquaihao",
	CategoryOther:         "qita",
	CategoryMedical:       "yiliaojiankang",
	CategoryEntertainment: "yule",
	CategoryHomeDecor:     "jiajujiazhuang",
	CategoryComedy:        "youmogaoxiao",
	CategoryFilmVariety:   "yingshizongyi",
	CategoryEmotions:      "qingganxinli",
	CategoryTalent:        "caiyijineng",
	CategoryEducation:     "jiaoyupeixun",
	CategoryCulture:       "wenhua",
	CategoryTravel:        "lvyou",
	CategoryNews:          "shishizixun",
	CategoryFashion:       "shishang",
	CategoryParenting:     "muyingyuer",
	CategoryAutomotive:    "qiche",
	CategoryGaming:        "youxi",
	CategoryLifestyle:     "shenghuo",
	CategoryScience:       "kexueKepu",
	CategoryTech:          "keji",
	CategoryMakeup:        "meizhuang",
	CategoryPersonalCare:  "meironggenghu",
	CategoryFood:          "meishi",
	CategoryCareer:        "zhichang",
	CategoryPets:          "mengchong",
	CategoryFinance:       "caijing",
	CategoryFitness:       "yundongjianshen",
	CategoryMusic:         "yinyue",
	CategoryLooks:         "yanzhi",
}

// Platforms returns the supported platforms in presentation order.
func Platforms() []Platform {
	out := make([]Platform, len(platformOrder))
	copy(out, platformOrder)
	return out
}

// Categories returns all categories sorted by their pinyin keys. The sort is
// a plain byte-wise comparison of the transcriptions, which keeps the output
// ordering stable across releases.
func Categories() []Category {
	out := make([]Category, len(definitionOrder))
	copy(out, definitionOrder)
	sort.Slice(out, func(i, j int) bool {
		return pinyinKeys[out[i]] < pinyinKeys[out[j]]
	})
	return out
}

// CategoriesInDefinitionOrder returns the categories in internal definition
// order, first category first.
func CategoriesInDefinitionOrder() []Category {
	out := make([]Category, len(definitionOrder))
	copy(out, definitionOrder)
	return out
}

// ValidPlatform reports whether p is one of the supported platforms.
func ValidPlatform(p Platform) bool {
	for _, known := range platformOrder {
		if p == known {
			return true
		}
	}
	return false
}

// ValidCategory reports whether c is one of the supported categories.
func ValidCategory(c Category) bool {
	_, ok := pinyinKeys[c]
	return ok
}

// ParsePlatform maps an external display string onto a Platform.
func ParsePlatform(name string) (Platform, error) {
	p := Platform(name)
	if !ValidPlatform(p) {
		return "", fmt.Errorf("%w: %s", ErrUnknownPlatform, name)
	}
	return p, nil
}

// ParseCategory maps an external display string onto a Category.
func ParseCategory(name string) (Category, error) {
	c := Category(name)
	if !ValidCategory(c) {
		return "", fmt.Errorf("%w: %s", ErrUnknownCategory, name)
	}
	return c, nil
}
