package service

import (
	"fmt"
	"strings"

	"financas/config"

	"gopkg.in/gomail.v2"
)

// EmailService envio de relatórios por e-mail
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService cria o serviço de e-mail
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendPeriodReport envia o resumo financeiro de um período.
func (s *EmailService) SendPeriodReport(to, periodLabel string, m Metrics, byCategory []CategoryTotal) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("serviço de e-mail desabilitado, configure email.enabled: true")
	}
	if to == "" {
		return fmt.Errorf("destinatário não configurado (email.to)")
	}

	subject := fmt.Sprintf("[Relatório de Finanças] Resumo de %s", periodLabel)
	body := s.generateReportBody(periodLabel, m, byCategory)

	return s.sendEmail(to, subject, body)
}

// generateReportBody gera o corpo HTML do relatório
func (s *EmailService) generateReportBody(periodLabel string, m Metrics, byCategory []CategoryTotal) string {
	var rows strings.Builder
	for _, c := range byCategory {
		rows.WriteString(fmt.Sprintf(
			`<tr><td style="padding:8px;border-bottom:1px solid #eee;">%s</td>`+
				`<td style="padding:8px;border-bottom:1px solid #eee;text-align:right;">R$ %.2f</td></tr>`,
			c.Category, c.Total))
	}
	if rows.Len() == 0 {
		rows.WriteString(`<tr><td colspan="2" style="padding:8px;color:#666;">Nenhuma despesa de consumo no período.</td></tr>`)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #059669, #047857); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 30px; }
        .metric { display: inline-block; width: 45%%; margin: 8px 0; }
        .metric .label { color: #666; font-size: 13px; }
        .metric .value { font-size: 20px; font-weight: bold; color: #111; }
        table { width: 100%%; border-collapse: collapse; margin-top: 20px; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>💰 Relatório de Finanças</h1>
            <p>%s</p>
        </div>
        <div class="content">
            <div class="metric"><div class="label">Receitas</div><div class="value">R$ %.2f</div></div>
            <div class="metric"><div class="label">Despesas</div><div class="value">R$ %.2f</div></div>
            <div class="metric"><div class="label">Investido</div><div class="value">R$ %.2f</div></div>
            <div class="metric"><div class="label">Saldo Conta</div><div class="value">R$ %.2f</div></div>
            <h3>Despesas por Categoria</h3>
            <table>%s</table>
        </div>
        <div class="footer">
            <p>E-mail enviado automaticamente, não responda</p>
        </div>
    </div>
</body>
</html>
`, periodLabel, m.Income, m.Expense, m.InvestmentsNet, m.Balance, rows.String())
}

// sendEmail envia o e-mail
func (s *EmailService) sendEmail(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(s.cfg.Username, s.cfg.From))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("falha ao enviar e-mail: %w", err)
	}

	return nil
}
