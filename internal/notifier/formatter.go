package notifier

import (
	"fmt"
	"strings"
	"time"

	"MarketAdvisor/internal/model"
)

// FormatScanDigest formats the result of a universe scan into a Telegram message.
func FormatScanDigest(class model.AssetClass, direction model.Direction, picks []model.Pick, fallback bool) string {
	var b strings.Builder

	label := "Stocks"
	if class == model.AssetFund {
		label = "Funds"
	}
	verb := "Buy"
	if direction == model.DirectionSell {
		verb = "Sell"
	}

	b.WriteString(fmt.Sprintf("📊 <b>Top %s to %s</b> | %s\n", label, verb, time.Now().Format("2006-01-02")))
	if fallback {
		b.WriteString("⚠️ Live data unavailable, showing curated picks\n")
	}
	b.WriteString("\n")

	for i, p := range picks {
		b.WriteString(fmt.Sprintf("%d. <b>%s</b> — %s\n", i+1, p.Symbol, p.Name))
		b.WriteString(fmt.Sprintf("   Price: %.2f → Target: %.2f (%+.1f%%)\n", p.CurrentPrice, p.TargetPrice, p.PriceChange))
		b.WriteString(fmt.Sprintf("   Score: %+.1f | Confidence: %.0f%%\n", p.Score, p.Confidence*100))
		if p.Reasoning != "" {
			b.WriteString(fmt.Sprintf("   %s\n", p.Reasoning))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FormatRecommendation formats a single-symbol analysis into a Telegram message.
func FormatRecommendation(rec *model.Recommendation) string {
	var b strings.Builder

	emoji := "⏸"
	switch rec.Action {
	case model.ActionBuy:
		emoji = "🟢"
	case model.ActionSell:
		emoji = "🔴"
	}

	b.WriteString(fmt.Sprintf("%s <b>%s</b> — %s | %s\n\n", emoji, rec.Symbol, rec.Action, time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Price: %.2f → Target: %.2f\n", rec.CurrentPrice, rec.TargetPrice))
	b.WriteString(fmt.Sprintf("Score: %+.1f | Confidence: %.0f%% | Horizon: %s\n", rec.Score, rec.Confidence*100, rec.TimeHorizon))

	if len(rec.Reasoning) > 0 {
		b.WriteString("\n📈 <b>Reasoning:</b>\n")
		for _, r := range rec.Reasoning {
			b.WriteString(fmt.Sprintf("  • %s\n", r))
		}
	}
	if len(rec.RiskFactors) > 0 {
		b.WriteString("\n⚠️ <b>Risks:</b>\n")
		for _, r := range rec.RiskFactors {
			b.WriteString(fmt.Sprintf("  • %s\n", r))
		}
	}

	return b.String()
}
