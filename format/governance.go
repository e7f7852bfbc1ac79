package format

import (
	"fmt"
	"strings"

	"github.com/cantonwatch/cantonbot/explorer"
)

// Governance formats the latest governance proposals into a chat
// message, rendering at most limit records
func Governance(res *explorer.Result, limit int) string {
	if res.Failed() {
		return "❌ Error getting governance: " + res.Err
	}

	var sb strings.Builder

	sb.WriteString("🏛️ <b>Latest Governance Proposals</b>\n\n")

	list, found := pickList(res.Value, "vote_requests", "governance", "data")
	if !found || len(list) == 0 {
		return sb.String() + "No governance data available"
	}

	for i, raw := range truncateList(list, limit) {
		proposal, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		if round, ok := firstString(proposal, "round", "round_id", "round_number"); ok {
			fmt.Fprintf(&sb, "<b>%s</b>\n", round)
		} else {
			fmt.Fprintf(&sb, "<b>Proposal %d</b>\n", i+1)
		}

		if id, ok := firstString(proposal, "id"); ok {
			fmt.Fprintf(&sb, "   🆔 <b>ID:</b> <code>%s</code>\n", Elide(id, 60))
		}

		if template, ok := firstString(proposal, "template_id"); ok {
			fmt.Fprintf(&sb, "   📄 <b>Template:</b> <code>%s</code>\n", Elide(template, 60))
		}

		if dso, ok := firstString(proposal, "dso"); ok {
			fmt.Fprintf(&sb, "   🏢 <b>DSO:</b> <code>%s</code>\n", Elide(dso, 50))
		}

		if requester, ok := firstString(proposal, "requester"); ok {
			fmt.Fprintf(&sb, "   👤 <b>Requester:</b> %s\n", requester)
		}

		if voteBefore, ok := firstString(proposal, "vote_before"); ok {
			fmt.Fprintf(&sb, "   ⏰ <b>Vote Before:</b> %s\n", voteBefore)
		}

		if reasonURL, ok := firstString(proposal, "reason_url"); ok && reasonURL != "" {
			fmt.Fprintf(&sb, "   🔗 <b>Reason URL:</b> %s\n", Elide(reasonURL, 80))
		}

		sb.WriteByte('\n')
	}

	return sb.String()
}

// GovernanceDetails formats a single governance proposal, showing only
// the essential fields
func GovernanceDetails(res *explorer.Result) string {
	if res.Failed() {
		return "❌ Error: " + res.Err
	}

	details, ok := res.Object()
	if !ok {
		return "❌ Error: Invalid response from API"
	}

	header := "🏛️ <b>Governance Details</b>\n\n"

	var sb strings.Builder

	sb.WriteString(header)

	if id, ok := firstString(details, "id"); ok && id != "" {
		fmt.Fprintf(&sb, "🆔 <b>ID:</b> <code>%s</code>\n", Elide(id, 60))
	}

	if template, ok := firstString(details, "template_id"); ok && template != "" {
		fmt.Fprintf(&sb, "📄 <b>Template:</b> <code>%s</code>\n", Elide(template, 60))
	}

	if dso, ok := firstString(details, "dso"); ok && dso != "" {
		fmt.Fprintf(&sb, "🏢 <b>DSO:</b> <code>%s</code>\n", Elide(dso, 50))
	}

	if requester, ok := firstString(details, "requester"); ok && requester != "" {
		fmt.Fprintf(&sb, "👤 <b>Requester:</b> <code>%s</code>\n", Elide(requester, 50))
	}

	if voteBefore, ok := firstString(details, "vote_before"); ok && voteBefore != "" {
		fmt.Fprintf(&sb, "⏰ <b>Vote Before:</b> %s\n", voteBefore)
	}

	if reasonURL, ok := firstString(details, "reason_url"); ok && reasonURL != "" {
		fmt.Fprintf(&sb, "🔗 <b>Reason URL:</b> %s\n", Elide(reasonURL, 80))
	}

	if status, ok := firstString(details, "status"); ok && status != "" {
		fmt.Fprintf(&sb, "%s <b>Status:</b> %s\n", governanceStatusGlyph(status), status)
	}

	if sb.Len() == len(header) {
		sb.WriteString("No additional information available")
	}

	return sb.String()
}

// governanceStatusGlyph maps a proposal status word to its glyph
func governanceStatusGlyph(status string) string {
	switch strings.ToLower(status) {
	case "approved", "passed", "active":
		return "✅"
	case "pending", "voting":
		return "⏳"
	default:
		return "❌"
	}
}
