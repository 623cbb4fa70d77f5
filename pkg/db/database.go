package db

// Database is the aggregate root of all entity stores.
type Database interface {
	Users() UserInterface
	Documents() DocumentInterface
	Bitexts() BitextInterface
	Systems() SystemInterface
	Evaluations() EvaluationInterface
	Annotations() AnnotationInterface
	AnnotationSystems() AnnotationSystemInterface
	Markings() MarkingInterface
	Close() error
}
