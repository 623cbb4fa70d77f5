package mocks

import (
	"context"
	"errors"

	kdb "github.com/yaraku/he-tool/pkg/db"
)

type MarkingInterface struct {
	Impl struct {
		FindByAnnotation func(ctx context.Context, annotationId int) ([]kdb.Marking, error)
		GetInScope       func(ctx context.Context, id int, annotationId int, systemId int) (kdb.Marking, error)
		Create           func(ctx context.Context, spec kdb.MarkingSpec) (kdb.Marking, error)
		Update           func(ctx context.Context, id int, spec kdb.MarkingSpec) (kdb.Marking, error)
		DeleteInScope    func(ctx context.Context, id int, annotationId int, systemId int) error
	}

	Calls struct {
		FindByAnnotation CallLog[int]

		GetInScope CallLog[struct {
			Id           int
			AnnotationId int
			SystemId     int
		}]
		Create CallLog[kdb.MarkingSpec]
		Update CallLog[struct {
			Id   int
			Spec kdb.MarkingSpec
		}]
		DeleteInScope CallLog[struct {
			Id           int
			AnnotationId int
			SystemId     int
		}]
	}
}

func NewMarkingInterface() *MarkingInterface {
	return &MarkingInterface{}
}

var _ kdb.MarkingInterface = &MarkingInterface{}

func (m *MarkingInterface) FindByAnnotation(ctx context.Context, annotationId int) ([]kdb.Marking, error) {
	m.Calls.FindByAnnotation = append(m.Calls.FindByAnnotation, annotationId)
	if m.Impl.FindByAnnotation != nil {
		return m.Impl.FindByAnnotation(ctx, annotationId)
	}
	panic(errors.New("it should not be called"))
}

func (m *MarkingInterface) GetInScope(ctx context.Context, id int, annotationId int, systemId int) (kdb.Marking, error) {
	m.Calls.GetInScope = append(m.Calls.GetInScope, struct {
		Id           int
		AnnotationId int
		SystemId     int
	}{Id: id, AnnotationId: annotationId, SystemId: systemId})
	if m.Impl.GetInScope != nil {
		return m.Impl.GetInScope(ctx, id, annotationId, systemId)
	}
	panic(errors.New("it should not be called"))
}

func (m *MarkingInterface) Create(ctx context.Context, spec kdb.MarkingSpec) (kdb.Marking, error) {
	m.Calls.Create = append(m.Calls.Create, spec)
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *MarkingInterface) Update(ctx context.Context, id int, spec kdb.MarkingSpec) (kdb.Marking, error) {
	m.Calls.Update = append(m.Calls.Update, struct {
		Id   int
		Spec kdb.MarkingSpec
	}{Id: id, Spec: spec})
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, id, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *MarkingInterface) DeleteInScope(ctx context.Context, id int, annotationId int, systemId int) error {
	m.Calls.DeleteInScope = append(m.Calls.DeleteInScope, struct {
		Id           int
		AnnotationId int
		SystemId     int
	}{Id: id, AnnotationId: annotationId, SystemId: systemId})
	if m.Impl.DeleteInScope != nil {
		return m.Impl.DeleteInScope(ctx, id, annotationId, systemId)
	}
	panic(errors.New("it should not be called"))
}
