package govdata

// Tally maps a normalized vote-option key (e.g. "yes_count") to the
// number of votes cast with that option. Derived, never sourced.
type Tally map[string]int

// Proposal is one governance vote item. The first pipeline pass fills
// the base fields; the reclassify pass adds the *_v2 taxonomy.
type Proposal struct {
	ProposalID       string `json:"proposal_id"`        // Source row id, unchanged
	ChainID          string `json:"chain_id"`           // Derived from the export file name
	Title            string `json:"title"`              // Proposal title as exported
	Type             string `json:"type"`               // high_level_category from the enhancement CSV, "Unknown" on miss
	Topic            string `json:"topic"`              // topic_subject from the enhancement CSV, "Unknown" on miss
	Status           string `json:"status"`             // Proposal status as exported
	SubmitTime       string `json:"submit_time"`        // Submission timestamp as exported
	FinalTallyResult Tally  `json:"final_tally_result"` // Aggregated option counts

	// Second-pass taxonomy. Always non-empty after reclassification,
	// defaulting to Governance / Signaling.
	TypeV2         string `json:"type_v2,omitempty"`
	TopicV2        string `json:"topic_v2,omitempty"`         // snake_case slug of TopicV2Display
	TopicV2Display string `json:"topic_v2_display,omitempty"` // Human-readable sub-topic
	TopicV2Unique  string `json:"topic_v2_unique,omitempty"`  // TypeV2 + ":" + TopicV2Display
}
