package ports

// Hasher defines the interface for computing input digests.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashInput computes a stable hex digest of the given input text.
	HashInput(input string) string
}
