package publisher

// SettlementEvent is published after commission balance moves into a
// wallet. Mode is "manual" or "auto".
type SettlementEvent struct {
	UserID        string  `json:"user_id"`
	PartnerID     string  `json:"partner_id"`
	Amount        float64 `json:"amount"`
	Mode          string  `json:"mode"`
	WalletBalance float64 `json:"wallet_balance"`
}

const (
	SettlementModeManual = "manual"
	SettlementModeAuto   = "auto"
)
