package cli

import (
	"context"
	"fmt"
	"os"

	"budget/cache"
	"budget/config"
	"budget/database"
	"budget/service"

	"github.com/spf13/cobra"
)

// Version 程序版本
const Version = "v1.0.0"

// RootOptions 全局参数
type RootOptions struct {
	ConfigFile  string
	ShowVersion bool
}

// NewRootCommand 创建根命令
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "预算分配服务",
		Long:  "预算类别管理与收入分配：提供 HTTP API，也可在命令行直接预览或执行分配。",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.ShowVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "预算分配服务 %s\n", Version)
				return nil
			}
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigFile, "config", "c", "", "外部配置文件路径（可选）")
	cmd.Flags().BoolVarP(&opts.ShowVersion, "version", "v", false, "显示版本信息")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewAllocateCommand(opts))

	return cmd
}

// Execute 执行根命令
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// app 命令运行所需的依赖
type app struct {
	cfg   *config.Config
	cache cache.Cache
	svc   *service.BudgetService
}

// bootstrap 加载配置、连接数据库并组装服务
func bootstrap(ctx context.Context, configFile string) (*app, error) {
	// 内置配置 + 可选的外部配置覆盖
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}
	if err := database.Init(cfg); err != nil {
		return nil, fmt.Errorf("数据库初始化失败: %w", err)
	}

	c := cache.New(ctx, cfg)
	svc := service.NewBudgetService(
		database.NewCategoryStore(database.DB),
		database.NewLedgerStore(database.DB),
		c,
		cfg,
	)
	return &app{cfg: cfg, cache: c, svc: svc}, nil
}
