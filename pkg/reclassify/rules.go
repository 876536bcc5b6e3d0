package reclassify

import "strings"

// Result is the refined taxonomy for one proposal.
type Result struct {
	TypeV2         string
	TopicV2Display string
}

// defaultResult applies when no rule matches. TypeV2 and
// TopicV2Display are therefore never empty.
var defaultResult = Result{TypeV2: "Governance", TopicV2Display: "Signaling"}

// rules is the prioritized cascade. Order is load-bearing: the first
// match wins and later rules never see the proposal, so a title with
// both "airdrop" and "upgrade" lands in Spam & Malicious.
var rules = []func(titleLower, rawType string) (Result, bool){
	matchSpam,
	matchProtocol,
	matchTreasury,
	matchEcosystem,
	matchGovernance,
	matchUnknownType,
}

// Classify maps (title, type) to the refined taxonomy. Title keywords
// match case-insensitively by substring; type keywords match the raw
// type field by substring, tolerating both the spaced and camel-case
// spellings seen in enhancement exports. Pure and deterministic.
func Classify(title, rawType string) Result {
	titleLower := strings.ToLower(title)
	for _, rule := range rules {
		if res, ok := rule(titleLower, rawType); ok {
			return res
		}
	}
	return defaultResult
}

func containsAny(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func matchSpam(title, _ string) (Result, bool) {
	if containsAny(title, "airdrop", "claim now", "new version") {
		return Result{TypeV2: "Governance", TopicV2Display: "Spam & Malicious"}, true
	}
	return Result{}, false
}

func matchProtocol(title, rawType string) (Result, bool) {
	switch {
	case containsAny(title, "upgrade") || containsAny(rawType, "SoftwareUpgrade", "Software Upgrade"):
		return Result{TypeV2: "Protocol", TopicV2Display: "Core Upgrade"}, true
	case containsAny(title, "parameter", "param change") || containsAny(rawType, "ParameterChange", "Parameter Change"):
		return Result{TypeV2: "Protocol", TopicV2Display: "Parameter Change"}, true
	case containsAny(title, "security", "audit"):
		return Result{TypeV2: "Protocol", TopicV2Display: "Security"}, true
	}
	return Result{}, false
}

// matchTreasury keys off the community-pool-spend type, then picks a
// funding sub-topic from the title with dApp & Tooling as catch-all.
func matchTreasury(title, rawType string) (Result, bool) {
	if !containsAny(rawType, "CommunityPoolSpend", "Community Pool Spend") {
		return Result{}, false
	}
	switch {
	case containsAny(title, "core dev", "development fund", "developer"):
		return Result{TypeV2: "Treasury", TopicV2Display: "Core Development Funding"}, true
	case containsAny(title, "liquidity", "incentive"):
		return Result{TypeV2: "Treasury", TopicV2Display: "Liquidity & Incentives Funding"}, true
	case containsAny(title, "marketing", "community", "growth"):
		return Result{TypeV2: "Treasury", TopicV2Display: "Marketing & Community Funding"}, true
	}
	return Result{TypeV2: "Treasury", TopicV2Display: "dApp & Tooling Funding"}, true
}

func matchEcosystem(title, _ string) (Result, bool) {
	switch {
	case containsAny(title, "ibc", "interchain"):
		return Result{TypeV2: "Ecosystem", TopicV2Display: "IBC & Interoperability"}, true
	case containsAny(title, "wasm", "smart contract", "contract"):
		return Result{TypeV2: "Ecosystem", TopicV2Display: "Smart Contracts"}, true
	case containsAny(title, "token"):
		return Result{TypeV2: "Ecosystem", TopicV2Display: "Token Economics"}, true
	case containsAny(title, "partnership", "collaboration"):
		return Result{TypeV2: "Ecosystem", TopicV2Display: "Partnerships"}, true
	}
	return Result{}, false
}

func matchGovernance(title, rawType string) (Result, bool) {
	if !strings.Contains(rawType, "Text") && !containsAny(title, "signal", "policy", "process") {
		return Result{}, false
	}
	if containsAny(title, "policy", "process", "procedure") {
		return Result{TypeV2: "Governance", TopicV2Display: "Process & Policy"}, true
	}
	return Result{TypeV2: "Governance", TopicV2Display: "Signaling"}, true
}

// matchUnknownType is the fallback for rows whose source type is
// explicitly unknown, unclassified or miscellaneous. Any other type,
// the empty string included, falls through to the default.
func matchUnknownType(title, rawType string) (Result, bool) {
	if !containsAny(strings.ToLower(rawType), "unknown", "unclassified", "misc") {
		return Result{}, false
	}
	if strings.Contains(title, "fund") {
		return Result{TypeV2: "Treasury", TopicV2Display: "dApp & Tooling Funding"}, true
	}
	return Result{TypeV2: "Governance", TopicV2Display: "Signaling"}, true
}

// Slug converts a display topic to its snake_case key, e.g.
// "Spam & Malicious" -> "spam_malicious".
func Slug(display string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(display) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimRight(b.String(), "_")
}
