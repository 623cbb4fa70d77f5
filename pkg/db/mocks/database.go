package mocks

import (
	kdb "github.com/yaraku/he-tool/pkg/db"
)

// Database bundles all entity mocks behind the kdb.Database interface.
//
// Zero value is ready to use; set Impl funcs on the members you expect
// to be reached.
type Database struct {
	User             UserInterface
	Document         DocumentInterface
	Bitext           BitextInterface
	System           SystemInterface
	Evaluation       EvaluationInterface
	Annotation       AnnotationInterface
	AnnotationSystem AnnotationSystemInterface
	Marking          MarkingInterface
}

func NewDatabase() *Database {
	return &Database{}
}

var _ kdb.Database = &Database{}

func (d *Database) Users() kdb.UserInterface {
	return &d.User
}

func (d *Database) Documents() kdb.DocumentInterface {
	return &d.Document
}

func (d *Database) Bitexts() kdb.BitextInterface {
	return &d.Bitext
}

func (d *Database) Systems() kdb.SystemInterface {
	return &d.System
}

func (d *Database) Evaluations() kdb.EvaluationInterface {
	return &d.Evaluation
}

func (d *Database) Annotations() kdb.AnnotationInterface {
	return &d.Annotation
}

func (d *Database) AnnotationSystems() kdb.AnnotationSystemInterface {
	return &d.AnnotationSystem
}

func (d *Database) Markings() kdb.MarkingInterface {
	return &d.Marking
}

func (d *Database) Close() error {
	return nil
}
