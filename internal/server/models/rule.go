package models

import "time"

// Approval rule types, mirroring the admin console's rule builder.
const (
	RuleTypeSequential  = "sequential"
	RuleTypeConditional = "conditional"
	RuleTypePercentage  = "percentage"
)

// RuleConfig is the structured document stored in approval_rules.rule_config.
// It is persisted and listed but never evaluated here; an approval engine is
// a separate concern.
type RuleConfig struct {
	Approvers       []string `json:"approvers"`
	AmountThreshold *float64 `json:"amount_threshold,omitempty"`
	Percentage      *int     `json:"percentage,omitempty"`
}

type ApprovalRule struct {
	ID        int64
	CompanyID string
	RuleName  string
	RuleType  string
	Config    RuleConfig
	IsActive  bool
	CreatedAt time.Time
}
