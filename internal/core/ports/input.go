package ports

// InputSource defines the interface for reading puzzle inputs.
//
//go:generate go run go.uber.org/mock/mockgen -source=input.go -destination=mocks/mock_input.go -package=mocks
type InputSource interface {
	// InputFor reads the input file for the given day from dir, following the
	// day<N>.txt naming convention.
	InputFor(dir string, day int) (string, error)
}
