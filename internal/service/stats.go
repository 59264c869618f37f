package service

import (
	"wortschatz/internal/vocab"

	"go.uber.org/zap"
)

// Stats holds learning counts against the current vocabulary
type Stats struct {
	Total     int
	Learned   int
	Remaining int
}

// CategoryStats holds counts for a single category
type CategoryStats struct {
	Category vocab.Category
	Stats
}

// StatsService computes learning statistics for the presentation layer
type StatsService struct {
	progress *ProgressService
	words    []vocab.Entry
	logger   *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(progress *ProgressService, words []vocab.Entry, logger *zap.Logger) *StatsService {
	return &StatsService{
		progress: progress,
		words:    words,
		logger:   logger,
	}
}

// Overview returns the user's counts over the whole vocabulary.
func (s *StatsService) Overview(userID int64) (Stats, error) {
	learned, err := s.progress.LearnedCount(userID, s.words)
	if err != nil {
		s.logger.Error("Failed to compute overview stats",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return Stats{}, err
	}

	total := len(s.words)
	return Stats{
		Total:     total,
		Learned:   learned,
		Remaining: total - learned,
	}, nil
}

// PerCategory returns the user's counts per category, in category order.
func (s *StatsService) PerCategory(userID int64) ([]CategoryStats, error) {
	byCat := make(map[vocab.Category][]vocab.Entry)
	for _, e := range s.words {
		byCat[e.Category] = append(byCat[e.Category], e)
	}

	out := make([]CategoryStats, 0, len(vocab.Categories))
	for _, c := range vocab.Categories {
		entries := byCat[c]
		learned, err := s.progress.LearnedCount(userID, entries)
		if err != nil {
			return nil, err
		}
		out = append(out, CategoryStats{
			Category: c,
			Stats: Stats{
				Total:     len(entries),
				Learned:   learned,
				Remaining: len(entries) - learned,
			},
		})
	}
	return out, nil
}
