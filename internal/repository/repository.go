package repository

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) error
}

// ProgressRepository persists a user's learned-word ids as one whole list:
// loaded whole at first access, overwritten whole after every mutation.
type ProgressRepository interface {
	GetLearnedIDs(userID int64) ([]string, error)
	SaveLearnedIDs(userID int64, ids []string) error
}
