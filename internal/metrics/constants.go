package metrics

// Metric names
const (
	MetricNamePlaysTotal       = "casino_plays_total"
	MetricNameWinsTotal        = "casino_wins_total"
	MetricNameInvalidBetsTotal = "casino_invalid_bets_total"
	MetricNameWageredTotal     = "casino_wagered_total"
	MetricNamePaidOutTotal     = "casino_paid_out_total"
)

// Help text
const (
	HelpTextPlaysTotal       = "Total plays resolved, by game"
	HelpTextWinsTotal        = "Total winning plays, by game"
	HelpTextInvalidBetsTotal = "Total bets rejected by validation, by game"
	HelpTextWageredTotal     = "Total amount wagered, by game"
	HelpTextPaidOutTotal     = "Total amount paid out, by game"
)

// Labels
const (
	LabelGame = "game"
)
