package service

import (
	"fmt"
	"html"
	"slices"
	"strings"

	"budget/config"

	"gopkg.in/gomail.v2"
)

// EmailService 邮件服务
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// NotifyAllocationFailure 发送预算分配部分失败通知
func (s *EmailService) NotifyAllocationFailure(result *ApplyResult) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用，请配置 BUDGET_EMAIL_ENABLED=true")
	}
	if s.cfg.NotifyTo == "" {
		return fmt.Errorf("未配置通知收件人")
	}

	subject := "【预算助手】预算分配未全部完成"
	return s.sendEmail(s.cfg.NotifyTo, subject, s.generateAllocationFailureBody(result))
}

// generateAllocationFailureBody 生成分配失败通知内容
func (s *EmailService) generateAllocationFailureBody(result *ApplyResult) string {
	names := map[uint]string{}
	strategy := ""
	if result.Preview != nil {
		strategy = string(result.Preview.Strategy)
		for _, ch := range result.Preview.Changes {
			names[ch.CategoryID] = ch.Name
		}
	}

	ids := make([]uint, 0, len(result.Failed))
	for id := range result.Failed {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var rows strings.Builder
	for _, id := range ids {
		fmt.Fprintf(&rows, "<tr><td>%d</td><td>%s</td><td>%s</td></tr>\n",
			id, html.EscapeString(names[id]), html.EscapeString(result.Failed[id]))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: 'Microsoft YaHei', Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; }
        .header { background: linear-gradient(135deg, #7c3aed, #db2777); color: white; padding: 24px; text-align: center; }
        .content { padding: 30px; color: #333; line-height: 1.8; }
        table { width: 100%%; border-collapse: collapse; }
        td, th { border-bottom: 1px solid #eee; padding: 8px; text-align: left; }
        .footer { background: #f8f9fa; padding: 16px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h2>💰 预算助手</h2></div>
        <div class="content">
            <p>按「%s」策略分配预算时，成功更新 <strong>%d</strong> 个类别，以下 <strong>%d</strong> 个类别更新失败：</p>
            <table>
                <tr><th>ID</th><th>类别</th><th>原因</th></tr>
%s            </table>
            <p>已成功的更新不会回滚，请检查后重新分配。</p>
        </div>
        <div class="footer"><p>此邮件由系统自动发送，请勿回复</p></div>
    </div>
</body>
</html>
`, html.EscapeString(strategy), len(result.Applied), len(ids), rows.String())
}

// sendEmail 发送邮件
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	return nil
}
