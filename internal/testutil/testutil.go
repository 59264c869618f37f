package testutil

import (
	"wortschatz/internal/vocab"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestEntry creates a vocabulary entry without alternates
func NewTestEntry(german, vietnamese string, category vocab.Category) vocab.Entry {
	return vocab.Entry{
		German:     german,
		Vietnamese: vietnamese,
		Category:   category,
	}
}

// TestVocabulary returns a small fixed word list spanning two categories
func TestVocabulary() []vocab.Entry {
	return []vocab.Entry{
		{German: "gehen", GermanAlts: []string{"laufen", "verlassen"}, Vietnamese: "đi", Category: vocab.CoreVerbs},
		NewTestEntry("essen", "ăn", vocab.CoreVerbs),
		NewTestEntry("trinken", "uống", vocab.CoreVerbs),
		{German: "das Wasser", Vietnamese: "nước", Category: vocab.Food},
		{German: "der Reis", Vietnamese: "cơm", VietnameseAlts: []string{"gạo"}, Category: vocab.Food},
	}
}
