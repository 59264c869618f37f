package service

import (
	"fmt"
	"testing"

	"wortschatz/internal/testutil"
	"wortschatz/internal/vocab"

	"github.com/stretchr/testify/assert"
)

func TestProgressService_MarkLearnedIsIdempotent(t *testing.T) {
	userID := int64(123)

	mockRepo := new(testutil.MockProgressRepository)
	mockRepo.On("GetLearnedIDs", userID).Return([]string(nil), nil).Once()
	// Both calls write through the same single-element list
	mockRepo.On("SaveLearnedIDs", userID, []string{"gehen|đi"}).Return(nil).Twice()

	service := NewProgressService(mockRepo, testutil.NewTestLogger())

	assert.NoError(t, service.MarkLearned(userID, "gehen|đi"))
	assert.NoError(t, service.MarkLearned(userID, "gehen|đi"))

	learned, err := service.IsLearned(userID, "gehen|đi")
	assert.NoError(t, err)
	assert.True(t, learned)

	mockRepo.AssertExpectations(t)
}

func TestProgressService_MarkUnlearned(t *testing.T) {
	userID := int64(123)

	mockRepo := new(testutil.MockProgressRepository)
	mockRepo.On("GetLearnedIDs", userID).Return([]string{"essen|ăn"}, nil).Once()
	mockRepo.On("SaveLearnedIDs", userID, []string{}).Return(nil).Twice()

	service := NewProgressService(mockRepo, testutil.NewTestLogger())

	assert.NoError(t, service.MarkUnlearned(userID, "essen|ăn"))

	learned, err := service.IsLearned(userID, "essen|ăn")
	assert.NoError(t, err)
	assert.False(t, learned)

	// Removing an absent id is a no-op but still persists
	assert.NoError(t, service.MarkUnlearned(userID, "essen|ăn"))

	mockRepo.AssertExpectations(t)
}

func TestProgressService_ToggleLearnedRoundTrip(t *testing.T) {
	userID := int64(123)
	id := "trinken|uống"

	mockRepo := new(testutil.MockProgressRepository)
	mockRepo.On("GetLearnedIDs", userID).Return([]string(nil), nil).Once()
	mockRepo.On("SaveLearnedIDs", userID, []string{id}).Return(nil).Once()
	mockRepo.On("SaveLearnedIDs", userID, []string{}).Return(nil).Once()

	service := NewProgressService(mockRepo, testutil.NewTestLogger())

	nowLearned, err := service.ToggleLearned(userID, id)
	assert.NoError(t, err)
	assert.True(t, nowLearned)

	nowLearned, err = service.ToggleLearned(userID, id)
	assert.NoError(t, err)
	assert.False(t, nowLearned)

	// Two toggles return the set to its original membership
	learned, err := service.IsLearned(userID, id)
	assert.NoError(t, err)
	assert.False(t, learned)

	mockRepo.AssertExpectations(t)
}

func TestProgressService_ResetAll(t *testing.T) {
	userID := int64(123)

	mockRepo := new(testutil.MockProgressRepository)
	mockRepo.On("GetLearnedIDs", userID).Return([]string{"a|b", "c|d"}, nil).Once()
	mockRepo.On("SaveLearnedIDs", userID, []string{}).Return(nil).Once()

	service := NewProgressService(mockRepo, testutil.NewTestLogger())

	assert.NoError(t, service.ResetAll(userID))

	learned, err := service.IsLearned(userID, "a|b")
	assert.NoError(t, err)
	assert.False(t, learned)

	mockRepo.AssertExpectations(t)
}

func TestProgressService_PersistsSortedIDs(t *testing.T) {
	userID := int64(123)

	mockRepo := new(testutil.MockProgressRepository)
	mockRepo.On("GetLearnedIDs", userID).Return([]string{"zwei|hai"}, nil).Once()
	mockRepo.On("SaveLearnedIDs", userID, []string{"eins|một", "zwei|hai"}).Return(nil).Once()

	service := NewProgressService(mockRepo, testutil.NewTestLogger())

	assert.NoError(t, service.MarkLearned(userID, "eins|một"))

	mockRepo.AssertExpectations(t)
}

func TestProgressService_LoadsOncePerUser(t *testing.T) {
	userID := int64(123)

	mockRepo := new(testutil.MockProgressRepository)
	mockRepo.On("GetLearnedIDs", userID).Return([]string{"a|b"}, nil).Once()

	service := NewProgressService(mockRepo, testutil.NewTestLogger())

	for i := 0; i < 3; i++ {
		learned, err := service.IsLearned(userID, "a|b")
		assert.NoError(t, err)
		assert.True(t, learned)
	}

	mockRepo.AssertExpectations(t)
}

func TestProgressService_LoadError(t *testing.T) {
	userID := int64(123)

	mockRepo := new(testutil.MockProgressRepository)
	mockRepo.On("GetLearnedIDs", userID).Return(nil, fmt.Errorf("db error"))

	service := NewProgressService(mockRepo, testutil.NewTestLogger())

	_, err := service.IsLearned(userID, "a|b")
	assert.Error(t, err)

	err = service.MarkLearned(userID, "a|b")
	assert.Error(t, err)
}

func TestProgressService_SaveErrorKeepsMemoryState(t *testing.T) {
	userID := int64(123)
	id := "gehen|đi"

	mockRepo := new(testutil.MockProgressRepository)
	mockRepo.On("GetLearnedIDs", userID).Return([]string(nil), nil).Once()
	mockRepo.On("SaveLearnedIDs", userID, []string{id}).Return(fmt.Errorf("db error")).Once()

	service := NewProgressService(mockRepo, testutil.NewTestLogger())

	err := service.MarkLearned(userID, id)
	assert.Error(t, err)

	// In-memory state is updated before the write, so the word counts as
	// learned for the rest of the run
	learned, err := service.IsLearned(userID, id)
	assert.NoError(t, err)
	assert.True(t, learned)

	mockRepo.AssertExpectations(t)
}

func TestProgressService_UnlearnedWords(t *testing.T) {
	userID := int64(123)
	words := testutil.TestVocabulary()

	tests := []struct {
		name           string
		learnedIDs     []string
		expectedGerman []string
	}{
		{
			name:           "nothing learned",
			learnedIDs:     nil,
			expectedGerman: []string{"gehen", "essen", "trinken", "das Wasser", "der Reis"},
		},
		{
			name:           "some learned, order preserved",
			learnedIDs:     []string{"essen|ăn", "der Reis|cơm"},
			expectedGerman: []string{"gehen", "trinken", "das Wasser"},
		},
		{
			name:           "all learned",
			learnedIDs:     []string{"gehen|đi", "essen|ăn", "trinken|uống", "das Wasser|nước", "der Reis|cơm"},
			expectedGerman: []string{},
		},
		{
			name:           "stale ids are ignored",
			learnedIDs:     []string{"removed|từ cũ"},
			expectedGerman: []string{"gehen", "essen", "trinken", "das Wasser", "der Reis"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockProgressRepository)
			mockRepo.On("GetLearnedIDs", userID).Return(tt.learnedIDs, nil).Once()

			service := NewProgressService(mockRepo, testutil.NewTestLogger())

			unlearned, err := service.UnlearnedWords(userID, words)
			assert.NoError(t, err)

			got := make([]string, 0, len(unlearned))
			for _, e := range unlearned {
				got = append(got, e.German)
			}
			assert.Equal(t, tt.expectedGerman, got)
		})
	}
}

func TestProgressService_LearnedCount(t *testing.T) {
	userID := int64(123)
	words := testutil.TestVocabulary()

	tests := []struct {
		name       string
		learnedIDs []string
		expected   int
	}{
		{
			name:       "none learned",
			learnedIDs: nil,
			expected:   0,
		},
		{
			name:       "two learned",
			learnedIDs: []string{"gehen|đi", "das Wasser|nước"},
			expected:   2,
		},
		{
			name:       "stale ids contribute nothing",
			learnedIDs: []string{"gehen|đi", "removed|từ cũ"},
			expected:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockProgressRepository)
			mockRepo.On("GetLearnedIDs", userID).Return(tt.learnedIDs, nil).Once()

			service := NewProgressService(mockRepo, testutil.NewTestLogger())

			count, err := service.LearnedCount(userID, words)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, count)
		})
	}
}

func TestProgressService_UsersAreIndependent(t *testing.T) {
	mockRepo := new(testutil.MockProgressRepository)
	mockRepo.On("GetLearnedIDs", int64(1)).Return([]string(nil), nil).Once()
	mockRepo.On("GetLearnedIDs", int64(2)).Return([]string(nil), nil).Once()
	mockRepo.On("SaveLearnedIDs", int64(1), []string{"gehen|đi"}).Return(nil).Once()

	service := NewProgressService(mockRepo, testutil.NewTestLogger())

	assert.NoError(t, service.MarkLearned(1, "gehen|đi"))

	learned, err := service.IsLearned(2, "gehen|đi")
	assert.NoError(t, err)
	assert.False(t, learned)

	mockRepo.AssertExpectations(t)
}

func TestProgressService_UnlearnedWordsAgainstFullVocabulary(t *testing.T) {
	userID := int64(123)
	words := vocab.All()

	mockRepo := new(testutil.MockProgressRepository)
	mockRepo.On("GetLearnedIDs", userID).Return([]string{words[0].ID()}, nil).Once()

	service := NewProgressService(mockRepo, testutil.NewTestLogger())

	unlearned, err := service.UnlearnedWords(userID, words)
	assert.NoError(t, err)
	assert.Len(t, unlearned, len(words)-1)
}
