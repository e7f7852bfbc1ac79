package bot

import "fmt"

// welcomeMessage is the post-verification greeting with the command
// overview
func (b *Bot) welcomeMessage() string {
	return fmt.Sprintf(`🤖 <b>Welcome to CantonWatch</b>

<b>Available Commands:</b>
📊 /stats - Network statistics
💰 /price - Current CC/USDT price
🔐 /validators - Validators list
🔄 /rounds - Rounds list
🏛️ /governance - Governance list
ℹ️ /help - Command help

<b>For detailed information:</b>
/governance_id &lt;id&gt; - Governance details
/party &lt;id&gt; - Party information
/party_tx &lt;id&gt; - Party transactions
/party_transfers &lt;id&gt; - Party transfers

<b>📢 Official Resources:</b>
📢 Channel - %s
🐦 X - <a href="%s">%s</a>`,
		b.config.RequiredChannel,
		b.config.XLink,
		b.config.XLink,
	)
}

// gateMessage asks an unverified user to join the official resources
// before using the bot
func (b *Bot) gateMessage() string {
	return fmt.Sprintf(`🔐 <b>Welcome to CantonWatch!</b>

To use the bot, you need to subscribe to our official resources:

📢 <b>Telegram Channel:</b> %s
🐦 <b>X (Twitter):</b> <a href="%s">%s</a>

After subscribing, click the "✅ Check subscription" button below.`,
		b.config.RequiredChannel,
		b.config.XLink,
		b.config.XLink,
	)
}

// helpMessage lists the commands and their parameters
func (b *Bot) helpMessage() string {
	return fmt.Sprintf(`📖 <b>Command Help</b>

<b>Main Commands:</b>
📊 /stats - Get Canton Network statistics
💰 /price - Get current CC/USDT price
🔐 /validators - View validators
🔄 /rounds - View rounds
🏛️ /governance - View governance

<b>Commands with Parameters:</b>
/governance_id &lt;id&gt; - Governance details by ID
/party &lt;id&gt; - Party information by ID
/party_tx &lt;id&gt; [limit] - Party transactions (default limit=%d)
/party_transfers &lt;id&gt; [limit] - Party transfers (default limit=%d)

<b>📢 Official Resources:</b>
📢 Channel - %s
🐦 X - %s`,
		b.config.PartyListLimit,
		b.config.PartyListLimit,
		b.config.RequiredChannel,
		b.config.XLink,
	)
}
