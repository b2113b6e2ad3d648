package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"budget/service"

	"github.com/spf13/cobra"
)

type allocateOptions struct {
	strategy string
	custom   []string
	apply    bool
}

// NewAllocateCommand 创建 allocate 命令
func NewAllocateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &allocateOptions{}

	cmd := &cobra.Command{
		Use:   "allocate",
		Short: "预览或执行预算分配",
		Long: `按策略计算一级类别的新占比并打印对比表。

默认只预览，加 --apply 才写入数据库。custom 策略通过 --custom id=百分比 指定，
可重复传入，未指定的类别保持原值。`,
		Example: `  budget allocate --strategy equal
  budget allocate --strategy custom --custom 3=25 --custom 4=10 --apply`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAllocate(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", string(service.StrategyEqual), "分配策略 (equal|proportional|recommended|custom)")
	cmd.Flags().StringArrayVar(&opts.custom, "custom", nil, "自定义占比，格式 id=百分比")
	cmd.Flags().BoolVar(&opts.apply, "apply", false, "写入分配结果")
	return cmd
}

func runAllocate(cmd *cobra.Command, rootOpts *RootOptions, opts *allocateOptions) error {
	req, err := opts.request()
	if err != nil {
		return err
	}

	a, err := bootstrap(cmd.Context(), rootOpts.ConfigFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !opts.apply {
		preview, err := a.svc.PreviewAllocation(cmd.Context(), req)
		if err != nil {
			return err
		}
		printPreview(out, preview)
		fmt.Fprintln(out, "\n仅预览，加 --apply 写入")
		return nil
	}

	result, err := a.svc.ApplyAllocation(cmd.Context(), req)
	var applyErr *service.ApplyError
	if err != nil && !errors.As(err, &applyErr) {
		return err
	}
	printPreview(out, result.Preview)
	fmt.Fprintf(out, "\n已写入 %d 个类别\n", len(result.Applied))
	return err
}

func (o *allocateOptions) request() (service.AllocationRequest, error) {
	st, err := service.ParseStrategy(o.strategy)
	if err != nil {
		return service.AllocationRequest{}, err
	}
	if st != service.StrategyCustom && len(o.custom) > 0 {
		return service.AllocationRequest{}, fmt.Errorf("--custom 只能与 custom 策略一起使用")
	}
	custom, err := parseCustom(o.custom)
	if err != nil {
		return service.AllocationRequest{}, err
	}
	return service.AllocationRequest{Strategy: st, Custom: custom}, nil
}

// parseCustom 解析 id=百分比 形式的参数
func parseCustom(values []string) (map[uint]float64, error) {
	if len(values) == 0 {
		return nil, nil
	}
	out := make(map[uint]float64, len(values))
	for _, v := range values {
		idStr, pctStr, ok := strings.Cut(v, "=")
		if !ok {
			return nil, fmt.Errorf("无效的自定义占比 %q，格式应为 id=百分比", v)
		}
		id, err := strconv.ParseUint(strings.TrimSpace(idStr), 10, 32)
		if err != nil || id == 0 {
			return nil, fmt.Errorf("无效的类别ID %q", idStr)
		}
		pct, err := strconv.ParseFloat(strings.TrimSpace(pctStr), 64)
		if err != nil {
			return nil, fmt.Errorf("无效的百分比 %q", pctStr)
		}
		if err := service.ValidateCustomValue(uint(id), pct); err != nil {
			return nil, err
		}
		out[uint(id)] = pct
	}
	return out, nil
}

func printPreview(w io.Writer, p *service.AllocationPreview) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "策略: %s\t每日收入: %.2f\n\n", p.Strategy, p.DailyIncome)
	fmt.Fprintln(tw, "ID\t类别\t当前(%)\t分配后(%)\t变化\t每日金额")
	for _, ch := range p.Changes {
		fmt.Fprintf(tw, "%d\t%s\t%.2f\t%.2f\t%+.2f\t%.2f\n",
			ch.CategoryID, ch.Name, ch.Before, ch.After, ch.Delta, ch.DailyAfter)
	}
	fmt.Fprintf(tw, "\t合计\t%.2f\t%.2f\t\t\n", p.CurrentTotal, p.ProposedTotal)
	tw.Flush()

	if p.OverBudget {
		fmt.Fprintf(w, "\n警告: 分配后合计 %.2f%% 超过 100%%\n", p.ProposedTotal)
	}
}
