package service

import (
	"errors"
	"fmt"
	"math"

	"budget/models"
)

// Strategy 预算分配策略
type Strategy string

const (
	StrategyEqual        Strategy = "equal"
	StrategyProportional Strategy = "proportional"
	StrategyRecommended  Strategy = "recommended"
	StrategyCustom       Strategy = "custom"
)

var (
	// ErrNoCategories 没有可分配的一级类别
	ErrNoCategories = errors.New("没有可分配的一级类别")
	// ErrUnknownStrategy 不支持的分配策略
	ErrUnknownStrategy = errors.New("不支持的分配策略")
)

// ParseStrategy 解析分配策略
func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(s); st {
	case StrategyEqual, StrategyProportional, StrategyRecommended, StrategyCustom:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// RecommendedTargets 推荐策略下各预设类别的固定占比
var RecommendedTargets = map[string]float64{
	models.SlugEssentials: 50,
	models.SlugSavings:    20,
	models.SlugLifestyle:  15,
	models.SlugFun:        10,
	models.SlugDebts:      5,
}

// AllocationCategory 参与分配的一级类别
type AllocationCategory struct {
	ID         uint
	Percentage float64
	Slug       string
}

// Allocation 类别 ID 到新百分比的映射
type Allocation map[uint]float64

// Allocate 按策略计算每个一级类别的新百分比
// currentTotal 为当前已分配的总百分比（包含子类别）
// custom 仅在 StrategyCustom 下使用
// 结果只是建议值，不会修改入参
func Allocate(categories []AllocationCategory, currentTotal float64, strategy Strategy, custom map[uint]float64) (Allocation, error) {
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}

	switch strategy {
	case StrategyEqual:
		return allocateEqual(categories, available(currentTotal)), nil
	case StrategyProportional:
		return allocateProportional(categories, currentTotal), nil
	case StrategyRecommended:
		return allocateRecommended(categories), nil
	case StrategyCustom:
		if err := ValidateCustom(custom); err != nil {
			return nil, err
		}
		return allocateCustom(categories, custom), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(strategy))
}

// maxCustomPercentage 自定义占比的绝对值上限，超出视为无效输入
const maxCustomPercentage = 1e6

// ValidateCustomValue 拒绝 NaN、Inf 和超大值
// 不检查 [0,100]，越界值仍可预览，写入时再拒绝
func ValidateCustomValue(id uint, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > maxCustomPercentage {
		return fmt.Errorf("%w: 类别 %d 的自定义占比无效", ErrValidation, id)
	}
	return nil
}

// ValidateCustom 校验全部自定义占比
func ValidateCustom(custom map[uint]float64) error {
	for id, v := range custom {
		if err := ValidateCustomValue(id, v); err != nil {
			return err
		}
	}
	return nil
}

// available 剩余可分配百分比，超出 100 时视为 0
func available(currentTotal float64) float64 {
	return max(0, 100-currentTotal)
}

func allocateEqual(categories []AllocationCategory, avail float64) Allocation {
	share := avail / float64(len(categories))
	out := make(Allocation, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Percentage + share
	}
	return out
}

func allocateProportional(categories []AllocationCategory, currentTotal float64) Allocation {
	avail := available(currentTotal)
	if currentTotal <= 0 {
		return allocateEqual(categories, avail)
	}
	out := make(Allocation, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Percentage + avail*(c.Percentage/currentTotal)
	}
	return out
}

// allocateRecommended 预设类别取固定占比，其余类别平分剩余部分（单次计算）
func allocateRecommended(categories []AllocationCategory) Allocation {
	out := make(Allocation, len(categories))
	assigned := 0.0
	var others []AllocationCategory
	for _, c := range categories {
		if target, ok := RecommendedTargets[c.Slug]; ok {
			out[c.ID] = target
			assigned += target
			continue
		}
		others = append(others, c)
	}
	if len(others) == 0 {
		return out
	}
	share := max(0, 100-assigned) / float64(len(others))
	for _, c := range others {
		out[c.ID] = share
	}
	return out
}

// allocateCustom 使用调用方给出的值，未给出的保持原值
// 不做范围校验，越界值由写入时的校验拒绝
func allocateCustom(categories []AllocationCategory, custom map[uint]float64) Allocation {
	out := make(Allocation, len(categories))
	for _, c := range categories {
		if v, ok := custom[c.ID]; ok {
			out[c.ID] = v
			continue
		}
		out[c.ID] = c.Percentage
	}
	return out
}
