package pipeline

import (
	"fmt"

	"github.com/govlens-network/govlens/pkg/csvio"
	"github.com/govlens-network/govlens/pkg/govdata"
)

// LoadCategories builds the title -> category index from the
// enhancement CSV. Duplicate titles: last row wins. A missing or
// unreadable file is fatal for the whole run; the caller must abort.
func LoadCategories(path string) (govdata.CategoryIndex, error) {
	idx := make(govdata.CategoryIndex)
	err := csvio.Each(path, func(rec csvio.Record) error {
		title := rec["title"]
		if title == "" {
			return nil
		}
		idx[title] = govdata.Category{
			HighLevelCategory: rec["high_level_category"],
			TopicSubject:      rec["topic_subject"],
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	return idx, nil
}
