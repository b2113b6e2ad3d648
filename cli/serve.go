package cli

import (
	"log"
	"strings"

	"budget/config"
	"budget/router"

	"github.com/spf13/cobra"
)

// NewServeCommand 创建 serve 命令
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "启动 HTTP 服务",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, rootOpts, port)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "监听端口，如: 8080 或 :8080")
	return cmd
}

func runServe(cmd *cobra.Command, opts *RootOptions, port string) error {
	a, err := bootstrap(cmd.Context(), opts.ConfigFile)
	if err != nil {
		return err
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		a.cfg.Server.Port = normalizePort(port)
		log.Printf("命令行指定端口: %s", a.cfg.Server.Port)
	}
	config.PrintConfig()

	r := router.SetupRouter(a.cfg, a.svc, a.cache)

	log.Printf("==========================================")
	log.Printf("  预算分配服务已启动")
	log.Printf("==========================================")
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", a.cfg.Server.Port)
	log.Printf("  API接口:  http://localhost%s/api/v1/", a.cfg.Server.Port)
	log.Printf("==========================================")

	return r.Run(a.cfg.Server.Port)
}

// normalizePort 自动添加冒号前缀
func normalizePort(port string) string {
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}
