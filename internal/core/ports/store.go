package ports

import "github.com/illBeRoy/advent-2022/internal/core/domain"

// AnswerStore defines the interface for caching computed answers.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type AnswerStore interface {
	// Get retrieves the cached answer for a given key.
	// Returns nil, nil if not found.
	Get(key string) (*domain.Answer, error)

	// Put stores the answer.
	Put(answer domain.Answer) error
}
