package main

import "budget/cli"

// @title 预算分配 API
// @version 1.0
// @description 预算类别管理、按策略分配收入占比、储蓄目标与债务跟踪
// @host localhost:8080
// @BasePath /

func main() {
	cli.Execute()
}
