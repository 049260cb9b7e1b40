package sponsorship

import "time"

// MergeLine is one paid unit to fold into the ledger. Episode is nil for movies.
type MergeLine struct {
	Content       ContentRef
	Episode       *EpisodeRef
	WantsPriority bool
}

type ContentGroup struct {
	Content ContentRef
	Lines   []MergeLine
}

// GroupByContent keeps groups in order of first appearance.
func GroupByContent(lines []MergeLine) []ContentGroup {
	var groups []ContentGroup
	index := make(map[int64]int)
	for _, l := range lines {
		i, ok := index[l.Content.ID]
		if !ok {
			i = len(groups)
			index[l.Content.ID] = i
			groups = append(groups, ContentGroup{Content: l.Content})
		}
		groups[i].Lines = append(groups[i].Lines, l)
	}
	return groups
}

// Merge folds the paid lines of one order into the entry. Flags only ever go
// from false to true and existing sponsor names are kept, so merging the same
// lines again leaves the entry unchanged. It reports whether anything changed.
func (e *LedgerEntry) Merge(lines []MergeLine, sponsorName string, now time.Time) (bool, error) {
	for _, l := range lines {
		if l.Content.ID != e.content.ID {
			return false, ErrContentMismatch
		}
	}

	var changed bool
	if e.content.MediaType == MediaTypeMovie {
		changed = e.mergeMovie(lines, sponsorName)
	} else {
		changed = e.mergeEpisodes(lines, sponsorName)
	}

	if e.content.Title == "" && len(lines) > 0 && lines[0].Content.Title != "" {
		e.content.Title = lines[0].Content.Title
		e.content.PosterRef = lines[0].Content.PosterRef
		changed = true
	}
	if e.priority == "" {
		e.priority = PriorityNormal
		changed = true
	}
	if changed {
		e.updatedAt = now
	}
	return changed, nil
}

func (e *LedgerEntry) mergeMovie(lines []MergeLine, sponsorName string) bool {
	if len(lines) == 0 {
		return false
	}
	changed := false
	if !e.isPaid {
		e.isPaid = true
		changed = true
	}
	for _, l := range lines {
		if l.WantsPriority && !e.isPriority {
			e.isPriority = true
			changed = true
		}
	}
	if e.sponsorName == "" && sponsorName != "" {
		e.sponsorName = sponsorName
		changed = true
	}
	if e.isPriority && e.priority != PriorityHigh {
		e.priority = PriorityHigh
		changed = true
	}
	return changed
}

func (e *LedgerEntry) mergeEpisodes(lines []MergeLine, sponsorName string) bool {
	changed := false
	for _, l := range lines {
		if l.Episode == nil {
			continue
		}
		key := l.Episode.Key()
		if i := e.indexOf(key); i >= 0 {
			rec := &e.episodes[i]
			if !rec.IsPaid {
				rec.IsPaid = true
				changed = true
			}
			if l.WantsPriority && !rec.IsPriority {
				rec.IsPriority = true
				changed = true
			}
			continue
		}
		e.episodes = append(e.episodes, EpisodeRecord{
			Season:      key.Season,
			Episode:     key.Episode,
			IsPaid:      true,
			IsPriority:  l.WantsPriority,
			SponsorName: sponsorName,
		})
		changed = true
	}
	e.sortEpisodes()

	anyPriority := false
	for _, rec := range e.episodes {
		if rec.IsPriority {
			anyPriority = true
			break
		}
	}
	if len(e.episodes) > 0 && !e.isPaid {
		e.isPaid = true
		changed = true
	}
	if anyPriority && !e.isPriority {
		e.isPriority = true
		changed = true
	}
	if anyPriority && e.priority != PriorityHigh {
		e.priority = PriorityHigh
		changed = true
	}
	return changed
}
