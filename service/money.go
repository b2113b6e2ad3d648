package service

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// round2 保留两位小数，非有限值原样返回
func round2(v float64) float64 {
	if !finite(v) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// amountOf 按百分比计算金额，保留两位小数
func amountOf(base, percentage float64) float64 {
	if !finite(base) || !finite(percentage) {
		return base * percentage / 100
	}
	f, _ := decimal.NewFromFloat(base).
		Mul(decimal.NewFromFloat(percentage)).
		Div(hundred).
		Round(2).
		Float64()
	return f
}
